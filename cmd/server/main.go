package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/database"
	"github.com/iliyamo/hotel-booking/internal/handler"
	"github.com/iliyamo/hotel-booking/internal/logger"
	"github.com/iliyamo/hotel-booking/internal/middleware"
	"github.com/iliyamo/hotel-booking/internal/queue"
	"github.com/iliyamo/hotel-booking/internal/repository"
	"github.com/iliyamo/hotel-booking/internal/router"
	"github.com/iliyamo/hotel-booking/internal/service"
)

// stores bundles the persistence backends picked by STORE_DRIVER.
type stores struct {
	users    service.UserStore
	bookings service.BookingStore
	reviews  service.ReviewStore
	hotels   service.HotelStore
	close    func(context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Warn("close store", "error", err)
		}
	}()

	var events service.EventPublisher
	if cfg.EventsEnabled {
		events = queue.NewPublisher(cfg.RabbitURL, log)
	}
	if cfg.BookingConsumerEnabled {
		consumer := queue.NewConsumer(cfg.RabbitURL, cfg.BookingLogDir, log)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("booking consumer stopped", "error", err)
			}
		}()
	}

	var hotelCache echo.MiddlewareFunc
	if rdb := config.NewRedisClient(cfg.Redis); rdb != nil {
		defer func() { _ = rdb.Close() }()
		hotelCache = middleware.ResponseCache(cfg.Cache, rdb, log)
		log.Info("redis cache enabled", "addr", cfg.Redis.Address())
	} else if cfg.Redis.Enabled {
		log.Warn("redis unreachable, hotel cache disabled", "addr", cfg.Redis.Address())
	}

	auth := service.NewAuthService(st.users, cfg.BcryptCost)
	bookings := service.NewBookingService(st.bookings, events, log)
	reviews := service.NewReviewService(st.reviews)
	hotels := service.NewHotelService(st.hotels)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				log.Error("request", append(attrs, "error", v.Error)...)
				return nil
			}
			log.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	router.RegisterRoutes(e, router.Handlers{
		Auth:     handler.NewAuthHandler(auth, log),
		Bookings: handler.NewBookingHandler(bookings, log),
		Hotels:   handler.NewHotelHandler(hotels, log),
		Reviews:  handler.NewReviewHandler(reviews, log),
	}, router.Options{HotelCache: hotelCache, AdminSecret: cfg.AdminJWTSecret})

	if cfg.AdminJWTSecret == "" {
		log.Warn("ADMIN_JWT_SECRET not set, /api/bookings/all is unauthenticated")
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("listening", "addr", addr, "env", cfg.Env, "store", cfg.Driver())
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (stores, error) {
	switch cfg.Driver() {
	case config.DriverMongo:
		client, db, err := database.OpenMongo(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return stores{}, fmt.Errorf("open mongo: %w", err)
		}
		if err := database.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return stores{}, fmt.Errorf("mongo indexes: %w", err)
		}
		log.Info("connected to mongo", "database", cfg.MongoDatabase)
		return stores{
			users:    repository.NewMongoUserRepo(db),
			bookings: repository.NewMongoBookingRepo(db),
			reviews:  repository.NewMongoReviewRepo(db),
			hotels:   repository.NewMongoHotelRepo(db),
			close:    client.Disconnect,
		}, nil
	default:
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return stores{}, fmt.Errorf("open mysql: %w", err)
		}
		if cfg.DBMigrate {
			if err := database.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return stores{}, fmt.Errorf("migrate: %w", err)
			}
		}
		log.Info("connected to mysql", "host", cfg.DBHost, "database", cfg.DBName)
		return stores{
			users:    repository.NewUserRepo(db),
			bookings: repository.NewBookingRepo(db),
			reviews:  repository.NewReviewRepo(db),
			hotels:   repository.NewHotelRepo(db),
			close:    func(context.Context) error { return db.Close() },
		}, nil
	}
}
