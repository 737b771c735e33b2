// Package ledger owns the authoritative in-memory booking collection
// and enforces the status state machine and capability rules.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emazahmed/edu-hotel/internal/access"
	"github.com/emazahmed/edu-hotel/internal/events"
	"github.com/emazahmed/edu-hotel/internal/metrics"
	"github.com/emazahmed/edu-hotel/internal/models"
)

var (
	// ErrNotFound is returned when a booking id is unknown.
	ErrNotFound = errors.New("booking not found")

	// ErrInvalidStatus is returned for a status outside the enum.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned when the requested status change
	// is not permitted by the lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingOwner is returned when a create request has no owner.
	ErrMissingOwner = errors.New("booking request has no owning identity")
)

// CreateRequest carries everything the ledger needs to append a
// booking. Dates, ordering and guest count are validated by the
// checkout flow before the request reaches the ledger.
type CreateRequest struct {
	UserID     string
	UserName   string
	UserEmail  string
	HotelID    string
	RoomID     string
	HotelName  string
	RoomType   string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice float64
}

// Ledger is the authoritative booking collection. Records are appended,
// status-mutated in place, and never deleted; cancellation is a status,
// not a removal.
type Ledger struct {
	bookings []models.Booking
	byID     map[string]int
	bus      *events.Bus
	logger   zerolog.Logger
	mu       sync.Mutex
}

// New builds a ledger seeded with initial bookings.
func New(seed []models.Booking, bus *events.Bus, logger zerolog.Logger) *Ledger {
	l := &Ledger{
		byID:   make(map[string]int, len(seed)),
		bus:    bus,
		logger: logger.With().Str("component", "ledger").Logger(),
	}
	for _, b := range seed {
		if _, dup := l.byID[b.ID]; dup {
			l.logger.Warn().Str("booking_id", b.ID).Msg("duplicate seed booking skipped")
			continue
		}
		l.byID[b.ID] = len(l.bookings)
		l.bookings = append(l.bookings, b)
	}
	return l
}

// Add appends a new booking in state pending, assigning a fresh id and
// the current time as creation timestamp. Returns the created record.
func (l *Ledger) Add(req CreateRequest) (*models.Booking, error) {
	if req.UserID == "" {
		return nil, ErrMissingOwner
	}

	b := models.Booking{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		UserName:   req.UserName,
		UserEmail:  req.UserEmail,
		HotelID:    req.HotelID,
		RoomID:     req.RoomID,
		HotelName:  req.HotelName,
		RoomType:   req.RoomType,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
	}

	l.mu.Lock()
	l.byID[b.ID] = len(l.bookings)
	l.bookings = append(l.bookings, b)
	l.mu.Unlock()

	metrics.IncBookingCreated()
	l.logger.Info().
		Str("booking_id", b.ID).
		Str("user_id", b.UserID).
		Str("hotel_id", b.HotelID).
		Float64("total", b.TotalPrice).
		Msg("booking created")

	if l.bus != nil {
		l.bus.Publish(events.TypeBookingCreated, events.BookingCreated{
			BookingID: b.ID,
			UserID:    b.UserID,
			HotelID:   b.HotelID,
			Total:     b.TotalPrice,
		})
	}
	return &b, nil
}

// UpdateStatus moves a booking to newStatus on behalf of actor.
// The transition must be permitted by the lifecycle, and the actor must
// hold the matching capability: confirming takes an admin; cancelling
// takes an admin or, for a confirmed booking, its owner. Only the
// found record's status changes; everything else is untouched.
func (l *Ledger) UpdateStatus(actor access.Actor, bookingID string, newStatus models.Status) error {
	if !newStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.byID[bookingID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, bookingID)
	}
	b := &l.bookings[idx]

	if !models.CanTransition(b.Status, newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, newStatus)
	}

	switch newStatus {
	case models.StatusConfirmed:
		if !access.CanConfirm(actor) {
			return access.Denied("only an admin can confirm a booking")
		}
	case models.StatusCancelled:
		if !access.CanCancel(actor, b) {
			return access.Denied("not allowed to cancel this booking")
		}
	}

	from := b.Status
	b.Status = newStatus

	metrics.IncStatusTransition(string(newStatus))
	l.logger.Info().
		Str("booking_id", bookingID).
		Str("actor_id", actor.ID).
		Str("from", string(from)).
		Str("to", string(newStatus)).
		Msg("booking status changed")

	if l.bus != nil {
		l.bus.Publish(events.TypeBookingStatusChanged, events.BookingStatusChanged{
			BookingID: bookingID,
			ActorID:   actor.ID,
			From:      string(from),
			To:        string(newStatus),
		})
	}
	return nil
}

// Get returns a copy of one booking by id.
func (l *Ledger) Get(bookingID string) (models.Booking, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx, ok := l.byID[bookingID]
	if !ok {
		return models.Booking{}, false
	}
	return l.bookings[idx], true
}

// UserBookings returns the given user's bookings in ledger insertion
// order. Owners may always read their own records.
func (l *Ledger) UserBookings(userID string) []models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.Booking
	for _, b := range l.bookings {
		if b.OwnedBy(userID) {
			out = append(out, b)
		}
	}
	return out
}

// AllBookings returns every record in insertion order. It requires the
// admin capability; the ledger enforces this itself rather than
// trusting the caller.
func (l *Ledger) AllBookings(actor access.Actor) ([]models.Booking, error) {
	if !access.CanViewAll(actor) {
		return nil, access.Denied("only an admin can list all bookings")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out, nil
}

// FilterByStatus returns the subset of bookings in the given status,
// preserving relative order. The admin view uses it for its status
// tabs; an empty status means no filtering.
func FilterByStatus(bookings []models.Booking, status models.Status) []models.Booking {
	if status == "" {
		return bookings
	}
	var out []models.Booking
	for _, b := range bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// Len reports the number of records in the ledger.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings)
}
