package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webinarBooker/internal/booking"
	"webinarBooker/internal/config"
	"webinarBooker/internal/http-server/handlers/webinar/bookSeat"
	"webinarBooker/internal/http-server/handlers/webinar/createWebinar"
	"webinarBooker/internal/http-server/handlers/webinar/getAllWebinars"
	"webinarBooker/internal/http-server/handlers/webinar/getWebinarInfo"
	"webinarBooker/internal/http-server/middleware/mwlogger"
	"webinarBooker/internal/lib/logger/handlers/slogpretty"
	"webinarBooker/internal/lib/logger/sl"
	"webinarBooker/internal/mailer"
	"webinarBooker/internal/mailer/sesmail"
	"webinarBooker/internal/mailer/smtpmail"
	"webinarBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting webinar booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	sender, err := setupMailer(log, cfg.Mailer)
	if err != nil {
		log.Error("failed to init mailer", sl.Err(err))
		os.Exit(1)
	}

	bookingService := booking.New(log, storage, storage, storage, sender)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Post("/webinars", createWebinar.New(log, storage))
	router.Post("/webinars/{id}/book", bookSeat.New(log, bookingService))
	router.Get("/webinars/{id}", getWebinarInfo.New(log, storage))
	router.Get("/webinars", getAllWebinars.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}

func setupMailer(log *slog.Logger, cfg config.Mailer) (booking.Mailer, error) {
	switch cfg.Driver {
	case "smtp":
		return smtpmail.New(cfg.SMTP), nil
	case "ses":
		return sesmail.New(context.Background(), cfg.SES)
	default:
		return mailer.NewLogMailer(log), nil
	}
}
