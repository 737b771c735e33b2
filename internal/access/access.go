// Package access centralizes the capability checks that the original
// screens performed ad hoc against the admin flag.
package access

import (
	"errors"

	"github.com/emazahmed/edu-hotel/internal/models"
)

// Actor is the identity performing an operation.
type Actor struct {
	ID    string
	Name  string
	Email string
	Admin bool
}

// ActorFor builds an actor from a registered user.
func ActorFor(u *models.User) Actor {
	return Actor{ID: u.ID, Name: u.Name, Email: u.Email, Admin: u.IsAdmin}
}

// CanViewAll reports whether the actor may read the full ledger.
func CanViewAll(a Actor) bool {
	return a.Admin
}

// CanConfirm reports whether the actor may confirm a pending booking.
func CanConfirm(a Actor) bool {
	return a.Admin
}

// CanCancel reports whether the actor may cancel the given booking.
// Admins may cancel anything still active; owners may cancel their own
// booking once it has been confirmed (self-service cancellation).
func CanCancel(a Actor, b *models.Booking) bool {
	if a.Admin {
		return true
	}
	return b.OwnedBy(a.ID) && b.Status == models.StatusConfirmed
}

// AccessDeniedError is returned when an actor lacks a capability.
type AccessDeniedError struct {
	Reason string
}

func (e *AccessDeniedError) Error() string {
	return e.Reason
}

// Denied builds an AccessDeniedError with the given reason.
func Denied(reason string) error {
	return &AccessDeniedError{Reason: reason}
}

// IsAccessDenied checks if err is an access denial, unwrapping as
// needed.
func IsAccessDenied(err error) bool {
	var denied *AccessDeniedError
	return errors.As(err, &denied)
}
