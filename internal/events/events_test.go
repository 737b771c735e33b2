package events

import (
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := NewBus(zerolog.New(io.Discard))

	var got []Event
	bus.Subscribe(TypeBookingCreated, func(ev Event) error {
		got = append(got, ev)
		return nil
	})

	bus.Publish(TypeBookingCreated, BookingCreated{BookingID: "b1", UserID: "u1", Total: 1197})
	bus.Publish(TypeUserSignedUp, UserSignedUp{UserID: "u2"}) // no subscriber, must not panic

	assert.Len(t, got, 1)
	assert.Equal(t, TypeBookingCreated, got[0].Type)
	assert.False(t, got[0].At.IsZero())

	payload, ok := got[0].Payload.(BookingCreated)
	assert.True(t, ok)
	assert.Equal(t, "b1", payload.BookingID)
}

func TestBus_HandlerOrderAndErrors(t *testing.T) {
	bus := NewBus(zerolog.New(io.Discard))

	var order []int
	bus.Subscribe(TypeBookingStatusChanged, func(Event) error {
		order = append(order, 1)
		return errors.New("boom")
	})
	bus.Subscribe(TypeBookingStatusChanged, func(Event) error {
		order = append(order, 2)
		return nil
	})

	// A failing handler must not stop later handlers.
	bus.Publish(TypeBookingStatusChanged, BookingStatusChanged{BookingID: "b1", From: "pending", To: "confirmed"})
	assert.Equal(t, []int{1, 2}, order)
}
