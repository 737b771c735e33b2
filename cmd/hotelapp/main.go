package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/emazahmed/edu-hotel/internal/catalog"
	"github.com/emazahmed/edu-hotel/internal/config"
	"github.com/emazahmed/edu-hotel/internal/events"
	"github.com/emazahmed/edu-hotel/internal/ledger"
	"github.com/emazahmed/edu-hotel/internal/metrics"
	"github.com/emazahmed/edu-hotel/internal/models"
	"github.com/emazahmed/edu-hotel/internal/payment"
	"github.com/emazahmed/edu-hotel/internal/seed"
	"github.com/emazahmed/edu-hotel/internal/service"
	"github.com/emazahmed/edu-hotel/internal/session"
	"github.com/emazahmed/edu-hotel/shared/audit"
)

func main() {
	// Initialize logger
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("HOTEL_CONFIG_PATH"), "path to config YAML")
	exportPath := flag.String("export", "", "write an admin report workbook to this path and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	data, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load seed data")
	}

	cat, err := catalog.New(data.Hotels, data.Rooms)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad catalog seed")
	}

	bus := events.NewBus(logger)
	sessions := session.NewStore(data.Users, bus, session.Options{
		LoginInterval: cfg.LoginInterval(),
		LoginBurst:    cfg.LoginBurst(),
	}, logger)
	book := ledger.New(data.Bookings, bus, logger)
	processor := payment.NewProcessor(cfg.PaymentDelay(), logger)

	checkout, err := service.NewCheckout(cat, sessions, book, processor, cfg.PricingPolicy(), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build checkout flow")
	}

	reports := audit.NewService(book, sessions, cat, nil, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Monitoring.HealthCheckPort != 0 {
		go startHealthServer(ctx, cfg.Monitoring.HealthCheckPort, &logger)
	}
	if cfg.Monitoring.PrometheusEnabled {
		if cfg.Monitoring.PrometheusPort == 0 {
			cfg.Monitoring.PrometheusPort = 9090
		}
		metrics.Register()
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	if *exportPath != "" {
		if err := exportReport(sessions, reports, *exportPath); err != nil {
			logger.Fatal().Err(err).Msg("report export failed")
		}
		logger.Info().Str("path", *exportPath).Msg("report written")
		return
	}

	logger.Info().
		Int("hotels", len(cat.Hotels())).
		Int("bookings", book.Len()).
		Msg("edu-hotel demo started")

	if err := runDemo(ctx, &logger, cat, sessions, book, checkout); err != nil {
		logger.Fatal().Err(err).Msg("demo scenario failed")
	}
}

// exportReport logs in as the seeded admin and writes the workbook.
func exportReport(sessions *session.Store, reports *audit.Service, path string) error {
	ok, err := sessions.Login("admin@hotel.com", "")
	if err != nil || !ok {
		return fmt.Errorf("admin login failed: %w", err)
	}
	actor, _ := sessions.Actor()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return reports.ExportReport(actor, f)
}

// runDemo walks the booking lifecycle once: guest books a room, the
// admin confirms it, the guest self-cancels.
func runDemo(
	ctx context.Context,
	logger *zerolog.Logger,
	cat *catalog.Catalog,
	sessions *session.Store,
	book *ledger.Ledger,
	checkout *service.Checkout,
) error {
	ok, err := sessions.Login("john.doe@example.com", "password123")
	if err != nil || !ok {
		return fmt.Errorf("demo login failed: %w", err)
	}

	rooms := cat.Rooms()
	if len(rooms) == 0 {
		return fmt.Errorf("no rooms in catalog")
	}
	room := rooms[0]

	checkIn := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 10).Format("2006-01-02")

	quote, err := checkout.Quote(room.ID, checkIn, checkOut, 2)
	if err != nil {
		return fmt.Errorf("quote: %w", err)
	}
	logger.Info().
		Str("room_type", room.Type).
		Int("nights", quote.Nights).
		Float64("total", quote.Total).
		Msg("quoted stay")

	created, receipt, err := checkout.Book(ctx, service.Input{
		RoomID:   room.ID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   2,
		Payment: payment.Request{
			Method: payment.MethodCard,
			Card: payment.Card{
				Number: payment.FormatCardNumber("4242424242424242"),
				Expiry: payment.FormatExpiry("1227"),
				CVV:    "123",
				Holder: "John Doe",
			},
			Billing: payment.BillingAddress{
				Street:  "1 Main St",
				City:    "New York",
				State:   "NY",
				ZipCode: "10001",
				Country: "United States",
			},
		},
	})
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	logger.Info().Str("payment_ref", receipt.Reference).Msg("booking placed")

	for _, b := range book.UserBookings(created.UserID) {
		p := models.PresentationFor(b.Status)
		logger.Info().
			Str("booking_id", b.ID).
			Str("hotel", b.HotelName).
			Str("status", p.Label).
			Msg("my booking")
	}

	// Admin confirms the new booking.
	sessions.Logout()
	if ok, err := sessions.Login("admin@hotel.com", ""); err != nil || !ok {
		return fmt.Errorf("admin login failed: %w", err)
	}
	adminActor, _ := sessions.Actor()
	if err := book.UpdateStatus(adminActor, created.ID, models.StatusConfirmed); err != nil {
		return fmt.Errorf("confirm: %w", err)
	}

	all, err := book.AllBookings(adminActor)
	if err != nil {
		return err
	}
	logger.Info().Int("total_bookings", len(all)).Msg("admin ledger view")

	// Guest self-cancels the confirmed stay.
	sessions.Logout()
	if ok, err := sessions.Login("john.doe@example.com", ""); err != nil || !ok {
		return fmt.Errorf("guest login failed: %w", err)
	}
	guestActor, _ := sessions.Actor()
	if err := book.UpdateStatus(guestActor, created.ID, models.StatusCancelled); err != nil {
		return fmt.Errorf("self-cancel: %w", err)
	}

	final, _ := book.Get(created.ID)
	logger.Info().
		Str("booking_id", final.ID).
		Str("status", string(final.Status)).
		Msg("demo scenario complete")
	return nil
}

func startHealthServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("health server error")
	}
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
