package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/airline-reservation/internal/api/http"
	"github.com/spec-kit/airline-reservation/internal/api/http/handlers"
	"github.com/spec-kit/airline-reservation/internal/auth"
	"github.com/spec-kit/airline-reservation/internal/config"
	"github.com/spec-kit/airline-reservation/internal/events"
	"github.com/spec-kit/airline-reservation/internal/observability"
	"github.com/spec-kit/airline-reservation/internal/persistence"
	"github.com/spec-kit/airline-reservation/internal/repository"
	"github.com/spec-kit/airline-reservation/internal/service"
	"github.com/spec-kit/airline-reservation/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	customerRepo := repository.NewCustomerRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	airlineRepo := repository.NewAirlineRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	sessions := auth.NewSessionStore(redis.Client, cfg.Auth.SessionTTL())
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		CustomerRepo: customerRepo,
		StaffRepo:    staffRepo,
		AirlineRepo:  airlineRepo,
		Sessions:     sessions,
	})
	flightService := service.NewFlightService(service.FlightDependencies{
		FlightRepo:  flightRepo,
		AirlineRepo: airlineRepo,
		Dispatcher:  dispatcher,
	})
	bookingService := service.NewBookingService(service.BookingDependencies{
		TicketRepo:   ticketRepo,
		FlightRepo:   flightRepo,
		CustomerRepo: customerRepo,
		Dispatcher:   dispatcher,
	})
	reviewService := service.NewReviewService(service.ReviewDependencies{
		ReviewRepo: reviewRepo,
		Dispatcher: dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	sessionMiddleware := auth.NewSessionMiddleware(sessions, cfg.Auth.SessionCookie)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:              handlers.NewAuthHandler(authService, cfg.Auth.SessionCookie, cfg.Auth.SessionTTL()),
		Flights:           handlers.NewFlightsHandler(flightService),
		Bookings:          handlers.NewBookingsHandler(bookingService),
		Reviews:           handlers.NewReviewsHandler(reviewService),
		SessionMiddleware: sessionMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
