package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{"three nights", day(2026, time.January, 15), day(2026, time.January, 18), 3},
		{"one night", day(2026, time.January, 15), day(2026, time.January, 16), 1},
		{"same day", day(2026, time.January, 15), day(2026, time.January, 15), 0},
		{"partial day rounds up", day(2026, time.January, 15), time.Date(2026, time.January, 16, 12, 0, 0, 0, time.UTC), 2},
		// Reversed ranges still produce a positive count; ordering is
		// validated by the checkout flow, not here.
		{"reversed range", day(2026, time.January, 18), day(2026, time.January, 15), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 1197.0, Subtotal(399, 3))
	assert.Equal(t, 0.0, Subtotal(399, 0))
}

func TestTaxesAndFees(t *testing.T) {
	taxes, fees, total := TaxesAndFees(100)
	assert.Equal(t, 12.0, taxes)
	assert.Equal(t, 25.0, fees)
	assert.Equal(t, 137.0, total)

	// Taxes round to the nearest whole unit.
	taxes, _, _ = TaxesAndFees(299)
	assert.Equal(t, 36.0, taxes)
}

func TestQuoteFor(t *testing.T) {
	checkIn := day(2026, time.February, 20)
	checkOut := day(2026, time.February, 25)

	t.Run("taxes and fees policy", func(t *testing.T) {
		q, err := QuoteFor(PolicyTaxesAndFees, 299, checkIn, checkOut)
		assert.NoError(t, err)
		assert.Equal(t, 5, q.Nights)
		assert.Equal(t, 1495.0, q.Subtotal)
		assert.Equal(t, 179.0, q.Taxes)
		assert.Equal(t, 25.0, q.Fees)
		assert.Equal(t, 1699.0, q.Total)
	})

	t.Run("room only policy", func(t *testing.T) {
		q, err := QuoteFor(PolicyRoomOnly, 299, checkIn, checkOut)
		assert.NoError(t, err)
		assert.Equal(t, 1495.0, q.Subtotal)
		assert.Zero(t, q.Taxes)
		assert.Zero(t, q.Fees)
		assert.Equal(t, q.Subtotal, q.Total)
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := QuoteFor(Policy("dynamic"), 299, checkIn, checkOut)
		assert.Error(t, err)
	})
}

func TestDateConversion(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		assert.Equal(t, "2026-01-15", DisplayToISO("15/01/2026"))
		assert.Equal(t, "15/01/2026", ISOToDisplay("2026-01-15"))
	})

	t.Run("malformed input yields empty string", func(t *testing.T) {
		assert.Empty(t, DisplayToISO("2026-01-15"))
		assert.Empty(t, DisplayToISO("soon"))
		assert.Empty(t, DisplayToISO(""))
		assert.Empty(t, ISOToDisplay("15/01/2026"))
	})

	t.Run("parse errors surface", func(t *testing.T) {
		_, err := ParseISO("not-a-date")
		assert.Error(t, err)
		_, err = ParseDisplay("32/13/2026")
		assert.Error(t, err)
	})
}
