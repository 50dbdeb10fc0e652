package utils

import (
	"fmt"
	"net/smtp"
	"strings"
)

const (
	senderName = "BusTraveller"

	bookingConfirmationSubject = "Bus Travel - Booking Confirmation"
	bookingConfirmationBody    = `Hello %s,

Your trip to %s has been confirmed!
We will contact you at %s shortly.

Safe Travels,
BusTraveller Team`
)

// BookingConfirmationEmail renders the fixed confirmation template.
func BookingConfirmationEmail(name, destination, phone string) (subject, body string) {
	return bookingConfirmationSubject, fmt.Sprintf(bookingConfirmationBody, name, destination, phone)
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends plain-text mail through an authenticated SMTP relay,
// e.g. Gmail with an app password. One instance is shared by the process.
type SMTPMailer struct {
	from     string
	password string
	host     string
	port     string

	send sendFunc
}

func NewSMTPMailer(from, password, host, port string) *SMTPMailer {
	return &SMTPMailer{
		from:     from,
		password: password,
		host:     host,
		port:     port,
		send:     smtp.SendMail,
	}
}

// Send delivers one message to the given recipients.
func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if m.from == "" || m.password == "" || m.host == "" || m.port == "" {
		return fmt.Errorf("email configuration not set")
	}
	if len(to) == 0 || strings.TrimSpace(strings.Join(to, "")) == "" {
		return fmt.Errorf("no recipient")
	}

	msg := buildMessage(fmt.Sprintf("%s <%s>", senderName, m.from), to, subject, body)
	auth := smtp.PlainAuth("", m.from, m.password, m.host)

	if err := m.send(m.host+":"+m.port, auth, m.from, to, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMessage(from string, to []string, subject, body string) []byte {
	headers := [][2]string{
		{"From", from},
		{"To", strings.Join(to, ",")},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/plain; charset=UTF-8"},
		{"X-Mailer", "BusTraveller-Mailer"},
	}

	var b strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&b, "%s: %s\r\n", h[0], h[1])
	}
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
