// Package events provides a synchronous in-process pub/sub bus for
// booking and session lifecycle events.
package events

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event types published by the core services.
const (
	TypeBookingCreated       = "booking.created"
	TypeBookingStatusChanged = "booking.status_changed"
	TypeUserSignedUp         = "user.signed_up"
	TypePaymentProcessed     = "payment.processed"
)

// Event is a lightweight domain event.
type Event struct {
	Type    string
	At      time.Time
	Payload any
}

// BookingCreated is the payload for TypeBookingCreated.
type BookingCreated struct {
	BookingID string
	UserID    string
	HotelID   string
	Total     float64
}

// BookingStatusChanged is the payload for TypeBookingStatusChanged.
type BookingStatusChanged struct {
	BookingID string
	ActorID   string
	From      string
	To        string
}

// UserSignedUp is the payload for TypeUserSignedUp.
type UserSignedUp struct {
	UserID string
	Email  string
}

// PaymentProcessed is the payload for TypePaymentProcessed.
type PaymentProcessed struct {
	Reference string
	Amount    float64
}

// Handler reacts to an event. Returned errors are logged, not
// propagated; publishing never fails.
type Handler func(Event) error

// Bus dispatches events to subscribers synchronously, in subscription
// order. The caller owns the concurrency model.
type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
	logger      zerolog.Logger
}

// NewBus constructs an empty bus.
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{
		subscribers: make(map[string][]Handler),
		logger:      logger.With().Str("component", "events").Logger(),
	}
}

// Subscribe registers a handler for an event type.
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *Bus) Publish(eventType string, payload any) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subscribers[eventType]...)
	b.mu.RUnlock()

	ev := Event{Type: eventType, At: time.Now(), Payload: payload}
	for _, handler := range handlers {
		if err := handler(ev); err != nil {
			b.logger.Error().Err(err).Str("event_type", eventType).Msg("event handler failed")
		}
	}
}
