package services

import (
	"errors"
	"fmt"
)

// PersistenceError is returned when the booking store is unreachable or
// rejects a read or write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("booking store %s failed", e.Op)
	}
	return fmt.Sprintf("booking store %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError is returned when a confirmation email could not be sent.
type NotificationError struct {
	To  string
	Err error
}

func (e *NotificationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("confirmation to %q failed", e.To)
	}
	return fmt.Sprintf("confirmation to %q failed: %v", e.To, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}

func IsNotification(err error) bool {
	var target *NotificationError
	return errors.As(err, &target)
}
