// Package audit exports the live booking ledger and reference data as
// an Excel report for admin review. The report is a point-in-time
// document, not state persistence; the app still resets on restart.
package audit

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/emazahmed/edu-hotel/internal/access"
	"github.com/emazahmed/edu-hotel/internal/models"
	"github.com/emazahmed/edu-hotel/internal/pricing"
)

// BookingSource yields the full ledger for an authorized actor.
type BookingSource interface {
	AllBookings(actor access.Actor) ([]models.Booking, error)
}

// UserSource yields the registered identities.
type UserSource interface {
	Users() []models.User
}

// HotelSource yields the hotel catalog.
type HotelSource interface {
	Hotels() []models.Hotel
}

// Service builds admin reports from the live stores.
type Service struct {
	bookings BookingSource
	users    UserSource
	hotels   HotelSource
	writer   func() ExcelWriter
	logger   zerolog.Logger
}

// NewService creates a report service. writerFactory produces a fresh
// workbook per export.
func NewService(bookings BookingSource, users UserSource, hotels HotelSource, writerFactory func() ExcelWriter, logger zerolog.Logger) *Service {
	if writerFactory == nil {
		writerFactory = NewExcelizeWriter
	}
	return &Service{
		bookings: bookings,
		users:    users,
		hotels:   hotels,
		writer:   writerFactory,
		logger:   logger.With().Str("component", "audit").Logger(),
	}
}

var bookingColumns = []string{
	"ID", "Status", "Guest", "Email", "Hotel", "Room",
	"Check-in", "Check-out", "Nights", "Guests", "Total", "Created",
}

// ExportReport writes a Bookings/Users/Hotels workbook to w on behalf
// of actor. The full-ledger read is capability-checked by the source,
// so non-admin actors get an access denial.
func (s *Service) ExportReport(actor access.Actor, w io.Writer) error {
	bookings, err := s.bookings.AllBookings(actor)
	if err != nil {
		return fmt.Errorf("reading ledger: %w", err)
	}

	wb := s.writer()

	if err := wb.AddSheet("Bookings"); err != nil {
		return err
	}
	if err := wb.WriteHeader(bookingColumns); err != nil {
		return err
	}
	for _, b := range bookings {
		row := []any{
			b.ID,
			models.PresentationFor(b.Status).Label,
			b.UserName,
			b.UserEmail,
			b.HotelName,
			b.RoomType,
			pricing.FormatISO(b.CheckIn),
			pricing.FormatISO(b.CheckOut),
			b.Nights(),
			b.Guests,
			b.TotalPrice,
			pricing.FormatISO(b.CreatedAt),
		}
		if err := wb.WriteRow(row); err != nil {
			return err
		}
	}

	if err := wb.AddSheet("Users"); err != nil {
		return err
	}
	if err := wb.WriteHeader([]string{"ID", "Name", "Email", "Phone", "Admin"}); err != nil {
		return err
	}
	for _, u := range s.users.Users() {
		if err := wb.WriteRow([]any{u.ID, u.Name, u.Email, u.Phone, u.IsAdmin}); err != nil {
			return err
		}
	}

	if err := wb.AddSheet("Hotels"); err != nil {
		return err
	}
	if err := wb.WriteHeader([]string{"ID", "Name", "Location", "Rating", "Price per night"}); err != nil {
		return err
	}
	for _, h := range s.hotels.Hotels() {
		if err := wb.WriteRow([]any{h.ID, h.Name, h.Location, h.Rating, h.PricePerNight}); err != nil {
			return err
		}
	}

	if err := wb.Save(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	s.logger.Info().Int("bookings", len(bookings)).Msg("report exported")
	return nil
}

// GenerateFilename creates a report filename like
// "bookings_report_2026-08.xlsx".
func GenerateFilename(t time.Time) string {
	return fmt.Sprintf("bookings_report_%s.xlsx", t.Format("2006-01"))
}
