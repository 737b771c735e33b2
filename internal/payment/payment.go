// Package payment implements the mock checkout payment step: form
// validation plus a fixed artificial delay standing in for a payment
// round-trip. No real payment is processed anywhere.
package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emazahmed/edu-hotel/internal/metrics"
)

// Method selects the mock payment method.
type Method string

const (
	MethodCard   Method = "card"
	MethodPayPal Method = "paypal"
)

// Validation failures surfaced to the user. All are recoverable by
// correcting the form and resubmitting.
var (
	ErrMissingCardDetails  = errors.New("fill in all payment details")
	ErrInvalidCardNumber   = errors.New("enter a valid card number")
	ErrInvalidCVV          = errors.New("enter a valid CVV")
	ErrIncompleteBilling   = errors.New("fill in all billing address fields")
	ErrUnknownMethod       = errors.New("unknown payment method")
	ErrNonPositiveAmount   = errors.New("payment amount must be positive")
)

// Card holds the card form fields.
type Card struct {
	Number string
	Expiry string // MM/YY
	CVV    string
	Holder string
}

// BillingAddress is required for every payment method.
type BillingAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Request is one payment attempt.
type Request struct {
	Amount  float64
	Method  Method
	Card    Card
	Billing BillingAddress
}

// Receipt is the outcome of a processed mock payment.
type Receipt struct {
	Reference   string
	Amount      float64
	Method      Method
	ProcessedAt time.Time
}

// FormatCardNumber normalizes a card number into groups of four
// digits, dropping everything that is not a digit.
func FormatCardNumber(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 16 {
		d = d[:16]
	}
	var parts []string
	for i := 0; i < len(d); i += 4 {
		end := i + 4
		if end > len(d) {
			end = len(d)
		}
		parts = append(parts, d[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry normalizes an expiry into MM/YY.
func FormatExpiry(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 4 {
		d = d[:4]
	}
	if len(d) >= 2 {
		return d[:2] + "/" + d[2:]
	}
	return d
}

func cardDigits(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// Validate checks the request the way the original checkout form did.
func (r Request) Validate() error {
	if r.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	switch r.Method {
	case MethodCard:
		if r.Card.Number == "" || r.Card.Expiry == "" || r.Card.CVV == "" || r.Card.Holder == "" {
			return ErrMissingCardDetails
		}
		if len(cardDigits(r.Card.Number)) < 13 {
			return ErrInvalidCardNumber
		}
		if len(r.Card.CVV) < 3 {
			return ErrInvalidCVV
		}
	case MethodPayPal:
		// Nothing card-specific to check.
	default:
		return ErrUnknownMethod
	}

	b := r.Billing
	if b.Street == "" || b.City == "" || b.State == "" || b.ZipCode == "" {
		return ErrIncompleteBilling
	}
	return nil
}

// Processor runs mock payments with a fixed delay.
type Processor struct {
	delay  time.Duration
	logger zerolog.Logger
}

// NewProcessor builds a processor. A non-positive delay means no
// artificial wait (useful in tests).
func NewProcessor(delay time.Duration, logger zerolog.Logger) *Processor {
	return &Processor{
		delay:  delay,
		logger: logger.With().Str("component", "payment").Logger(),
	}
}

// Process validates the request, waits out the round-trip delay and
// returns a receipt. There is no retry: a payment either completes or
// reports failure once. The wait honors ctx cancellation.
func (p *Processor) Process(ctx context.Context, req Request) (*Receipt, error) {
	if err := req.Validate(); err != nil {
		metrics.IncPaymentProcessed("rejected")
		return nil, err
	}

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			metrics.IncPaymentProcessed("cancelled")
			return nil, ctx.Err()
		}
	}

	rcpt := &Receipt{
		Reference:   uuid.NewString(),
		Amount:      req.Amount,
		Method:      req.Method,
		ProcessedAt: time.Now(),
	}

	metrics.IncPaymentProcessed("success")
	p.logger.Info().
		Str("reference", rcpt.Reference).
		Float64("amount", rcpt.Amount).
		Str("method", string(rcpt.Method)).
		Msg("mock payment processed")
	return rcpt, nil
}
