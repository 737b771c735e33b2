package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"pending to pending", StatusPending, StatusPending, false},
		{"unknown source", Status("changed"), StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, Status("completed").Valid())
	assert.False(t, Status("").Valid())
}

func TestBooking_Helpers(t *testing.T) {
	b := Booking{
		ID:       "b1",
		UserID:   "u1",
		CheckIn:  day(2026, time.September, 10),
		CheckOut: day(2026, time.September, 13),
		Status:   StatusPending,
	}

	assert.Equal(t, 3, b.Nights())
	assert.True(t, b.IsActive())
	assert.True(t, b.OwnedBy("u1"))
	assert.False(t, b.OwnedBy("u2"))

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
}

func TestPresentationFor(t *testing.T) {
	p := PresentationFor(StatusConfirmed)
	assert.Equal(t, "Confirmed", p.Label)
	assert.Equal(t, "#059669", p.Color)

	p = PresentationFor(StatusPending)
	assert.Equal(t, "clock", p.Icon)

	// Unknown status falls back to a neutral presentation.
	p = PresentationFor(Status("archived"))
	assert.Equal(t, "archived", p.Label)
	assert.Equal(t, "#6B7280", p.Color)
	assert.Empty(t, p.Icon)
}
