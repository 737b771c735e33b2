// Package service wires the stores into user-facing flows. The
// checkout flow reproduces the booking screen: validate input, price
// the stay, run the mock payment, then append to the ledger.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emazahmed/edu-hotel/internal/catalog"
	"github.com/emazahmed/edu-hotel/internal/ledger"
	"github.com/emazahmed/edu-hotel/internal/models"
	"github.com/emazahmed/edu-hotel/internal/payment"
	"github.com/emazahmed/edu-hotel/internal/pricing"
	"github.com/emazahmed/edu-hotel/internal/session"
)

// Validation failures surfaced to the user as alerts. Every one of
// them is recoverable by correcting the form and resubmitting.
var (
	ErrNotAuthenticated = errors.New("log in to make a booking")
	ErrMissingFields    = errors.New("fill in all required fields")
	ErrDatesOutOfOrder  = errors.New("check-out date must be after check-in date")
	ErrCheckInPast      = errors.New("check-in date cannot be in the past")
	ErrInvalidGuests    = errors.New("guest count must be at least 1")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room is not available")
)

// Input is one booking attempt as collected from the user. Dates are
// in ISO storage form (YYYY-MM-DD).
type Input struct {
	RoomID   string
	CheckIn  string
	CheckOut string
	Guests   int
	Payment  payment.Request // Amount is filled in from the quote
}

// Checkout runs the booking flow end to end.
type Checkout struct {
	catalog   *catalog.Catalog
	sessions  *session.Store
	ledger    *ledger.Ledger
	processor *payment.Processor
	policy    pricing.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// NewCheckout builds the checkout flow with the given pricing policy.
func NewCheckout(
	cat *catalog.Catalog,
	sessions *session.Store,
	l *ledger.Ledger,
	processor *payment.Processor,
	policy pricing.Policy,
	logger zerolog.Logger,
) (*Checkout, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("unknown pricing policy %q", policy)
	}
	return &Checkout{
		catalog:   cat,
		sessions:  sessions,
		ledger:    l,
		processor: processor,
		policy:    policy,
		logger:    logger.With().Str("component", "checkout").Logger(),
		now:       time.Now,
	}, nil
}

type stay struct {
	room     models.Room
	hotel    models.Hotel
	checkIn  time.Time
	checkOut time.Time
}

func (c *Checkout) validateStay(roomID, checkIn, checkOut string, guests int) (*stay, error) {
	if roomID == "" || checkIn == "" || checkOut == "" {
		return nil, ErrMissingFields
	}

	in, err := pricing.ParseISO(checkIn)
	if err != nil {
		return nil, fmt.Errorf("%w: bad check-in date", ErrMissingFields)
	}
	out, err := pricing.ParseISO(checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: bad check-out date", ErrMissingFields)
	}

	if !out.After(in) {
		return nil, ErrDatesOutOfOrder
	}
	today := c.now().Truncate(24 * time.Hour)
	if in.Before(today) {
		return nil, ErrCheckInPast
	}
	if guests < 1 {
		return nil, ErrInvalidGuests
	}

	room, ok := c.catalog.Room(roomID)
	if !ok {
		return nil, ErrRoomNotFound
	}
	if !room.Available {
		return nil, ErrRoomUnavailable
	}
	hotel, ok := c.catalog.Hotel(room.HotelID)
	if !ok {
		return nil, ErrRoomNotFound
	}

	return &stay{room: room, hotel: hotel, checkIn: in, checkOut: out}, nil
}

// Quote prices a prospective stay for the order summary, without
// touching any state.
func (c *Checkout) Quote(roomID, checkIn, checkOut string, guests int) (pricing.Quote, error) {
	st, err := c.validateStay(roomID, checkIn, checkOut, guests)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.QuoteFor(c.policy, st.room.Price, st.checkIn, st.checkOut)
}

// Book validates the input, charges the mock payment and appends the
// booking to the ledger in state pending. The acting identity comes
// from the session store.
func (c *Checkout) Book(ctx context.Context, in Input) (*models.Booking, *payment.Receipt, error) {
	user, ok := c.sessions.Current()
	if !ok {
		return nil, nil, ErrNotAuthenticated
	}

	st, err := c.validateStay(in.RoomID, in.CheckIn, in.CheckOut, in.Guests)
	if err != nil {
		return nil, nil, err
	}

	quote, err := pricing.QuoteFor(c.policy, st.room.Price, st.checkIn, st.checkOut)
	if err != nil {
		return nil, nil, err
	}

	payReq := in.Payment
	payReq.Amount = quote.Total
	receipt, err := c.processor.Process(ctx, payReq)
	if err != nil {
		return nil, nil, err
	}

	booking, err := c.ledger.Add(ledger.CreateRequest{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		HotelID:    st.hotel.ID,
		RoomID:     st.room.ID,
		HotelName:  st.hotel.Name,
		RoomType:   st.room.Type,
		CheckIn:    st.checkIn,
		CheckOut:   st.checkOut,
		Guests:     in.Guests,
		TotalPrice: quote.Total,
	})
	if err != nil {
		return nil, nil, err
	}

	c.logger.Info().
		Str("booking_id", booking.ID).
		Str("payment_ref", receipt.Reference).
		Int("nights", quote.Nights).
		Float64("total", quote.Total).
		Msg("checkout complete")
	return booking, receipt, nil
}
