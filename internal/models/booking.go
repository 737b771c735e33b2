package models

import (
	"time"

	"github.com/emazahmed/edu-hotel/internal/pricing"
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// statusTransitions encodes the one-directional lifecycle:
// a booking enters as pending, an admin confirms or cancels it,
// and a confirmed booking may still be cancelled. Cancelled is terminal.
var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Booking represents one reservation request and its outcome.
// Hotel name, room type and owner name/email are denormalized at
// creation time and never re-derived from the catalog or user set.
type Booking struct {
	ID         string    `json:"id" yaml:"id"`
	UserID     string    `json:"user_id" yaml:"user_id"`
	HotelID    string    `json:"hotel_id" yaml:"hotel_id"`
	RoomID     string    `json:"room_id" yaml:"room_id"`
	HotelName  string    `json:"hotel_name" yaml:"hotel_name"`
	RoomType   string    `json:"room_type" yaml:"room_type"`
	CheckIn    time.Time `json:"check_in" yaml:"check_in"`
	CheckOut   time.Time `json:"check_out" yaml:"check_out"`
	Guests     int       `json:"guests" yaml:"guests"`
	TotalPrice float64   `json:"total_price" yaml:"total_price"`
	Status     Status    `json:"status" yaml:"status"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	UserName   string    `json:"user_name" yaml:"user_name"`
	UserEmail  string    `json:"user_email" yaml:"user_email"`
}

// Nights returns the whole-night length of the stay.
func (b *Booking) Nights() int {
	return pricing.Nights(b.CheckIn, b.CheckOut)
}

// IsActive reports whether the booking still occupies a room
// (anything not cancelled).
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// OwnedBy reports whether the booking belongs to the given user.
func (b *Booking) OwnedBy(userID string) bool {
	return b.UserID == userID
}
