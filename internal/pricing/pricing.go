// Package pricing holds the pure price and date arithmetic used by the
// checkout flow. Nothing in here keeps state.
package pricing

import (
	"fmt"
	"math"
	"time"
)

// Policy selects how a booking total is derived from the room subtotal.
// The app historically shipped two flows with different formulas; both
// are kept as selectable policies rather than merged into one law.
type Policy string

const (
	// PolicyRoomOnly charges the room subtotal with no extras.
	PolicyRoomOnly Policy = "room_only"

	// PolicyTaxesAndFees adds 12% taxes plus a flat service fee.
	PolicyTaxesAndFees Policy = "taxes_and_fees"
)

// TaxRate and ServiceFee parameterize PolicyTaxesAndFees.
const (
	TaxRate    = 0.12
	ServiceFee = 25.0
)

// Valid reports whether p names a known policy.
func (p Policy) Valid() bool {
	return p == PolicyRoomOnly || p == PolicyTaxesAndFees
}

// Nights returns the whole-day difference between check-in and
// check-out, rounded up. It takes the absolute difference, so a
// reversed range still yields a positive count; rejecting reversed
// ranges is the checkout flow's job.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Subtotal is the room charge before taxes and fees.
func Subtotal(nightlyRate float64, nights int) float64 {
	return nightlyRate * float64(nights)
}

// Quote is a fully broken-down price for one stay.
type Quote struct {
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightly_rate"`
	Subtotal    float64 `json:"subtotal"`
	Taxes       float64 `json:"taxes"`
	Fees        float64 `json:"fees"`
	Total       float64 `json:"total"`
}

// TaxesAndFees applies the tax+fee policy to a subtotal.
func TaxesAndFees(subtotal float64) (taxes, fees, total float64) {
	taxes = math.Round(subtotal * TaxRate)
	fees = ServiceFee
	return taxes, fees, subtotal + taxes + fees
}

// QuoteFor prices a stay under the given policy.
func QuoteFor(policy Policy, nightlyRate float64, checkIn, checkOut time.Time) (Quote, error) {
	if !policy.Valid() {
		return Quote{}, fmt.Errorf("unknown pricing policy %q", policy)
	}

	nights := Nights(checkIn, checkOut)
	subtotal := Subtotal(nightlyRate, nights)

	q := Quote{
		Nights:      nights,
		NightlyRate: nightlyRate,
		Subtotal:    subtotal,
		Total:       subtotal,
	}
	if policy == PolicyTaxesAndFees {
		q.Taxes, q.Fees, q.Total = TaxesAndFees(subtotal)
	}
	return q, nil
}
