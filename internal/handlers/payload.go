package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/chachabrian/bustraveller-backend/internal/services"
)

var errInvalidPayload = errors.New("invalid booking payload")

// Stringish accepts a JSON string, number or bool and keeps it as text.
// Numeric form fields (phone especially) arrive unquoted.
type Stringish string

func (s *Stringish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*s = ""
	case b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stringish(str)
	default:
		*s = Stringish(b)
	}
	return nil
}

type bookingPayload struct {
	Name        Stringish `json:"name"`
	Email       Stringish `json:"email"`
	Phone       Stringish `json:"phone"`
	Destination Stringish `json:"destination"`
}

// decodeBookingPayload is lenient about shape: an empty, null or array body
// is an empty booking. Only syntactically broken JSON, or a bare scalar at
// the top level, is rejected.
func decodeBookingPayload(raw []byte) (services.NewBooking, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return services.NewBooking{}, nil
	}
	if !json.Valid(raw) {
		return services.NewBooking{}, errInvalidPayload
	}

	switch raw[0] {
	case '{':
		var p bookingPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return services.NewBooking{}, err
		}
		return services.NewBooking{
			Name:        string(p.Name),
			Email:       string(p.Email),
			Phone:       string(p.Phone),
			Destination: string(p.Destination),
		}, nil
	case '[', 'n':
		return services.NewBooking{}, nil
	default:
		return services.NewBooking{}, errInvalidPayload
	}
}
