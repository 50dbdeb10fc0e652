package services

import (
	"fmt"
	"sync"

	"github.com/chachabrian/bustraveller-backend/internal/metrics"
	"github.com/chachabrian/bustraveller-backend/internal/models"
	"github.com/chachabrian/bustraveller-backend/pkg/utils"
)

// Mailer is the outbound mail transport.
type Mailer interface {
	Send(to []string, subject, body string) error
}

// BookingNotifier emails booking confirmations without holding up the
// request that created the booking. Failures are logged and counted, never
// retried.
type BookingNotifier struct {
	mailer Mailer

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewBookingNotifier(mailer Mailer) *BookingNotifier {
	return &BookingNotifier{mailer: mailer}
}

// SendConfirmation starts delivery in the background and returns at once.
// After Close it only logs that the mail was skipped.
func (n *BookingNotifier) SendConfirmation(booking models.Booking) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		metrics.IncNotification("skipped")
		utils.LogEvent("", "notify", "confirmation", fmt.Sprintf("booking=%s skipped, notifier closed", booking.ID))
		return
	}
	n.wg.Add(1)
	n.mu.Unlock()

	go func() {
		defer n.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				metrics.IncNotification("failed")
				utils.LogEvent("", "notify", "confirmation", fmt.Sprintf("booking=%s panic=%v", booking.ID, r))
			}
		}()

		if err := n.deliver(booking); err != nil {
			metrics.IncNotification("failed")
			utils.LogEvent("", "notify", "confirmation", fmt.Sprintf("booking=%s error=%v", booking.ID, err))
			return
		}

		metrics.IncNotification("sent")
		utils.LogEvent("", "notify", "confirmation", fmt.Sprintf("booking=%s sent", booking.ID))
	}()
}

// Wait blocks until every confirmation started so far has finished.
func (n *BookingNotifier) Wait() {
	n.wg.Wait()
}

// Close stops accepting new confirmations and waits for the pending ones.
func (n *BookingNotifier) Close() {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()

	n.wg.Wait()
}

func (n *BookingNotifier) deliver(booking models.Booking) error {
	subject, body := utils.BookingConfirmationEmail(booking.Name, booking.Destination, booking.Phone)
	if err := n.mailer.Send([]string{booking.Email}, subject, body); err != nil {
		return &NotificationError{To: booking.Email, Err: err}
	}
	return nil
}
