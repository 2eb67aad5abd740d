package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Abhijith1907/conference-booking/internal/config"
	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/handler"
	"github.com/Abhijith1907/conference-booking/internal/middleware"
	"github.com/Abhijith1907/conference-booking/internal/notification"
	"github.com/Abhijith1907/conference-booking/internal/repository"
	"github.com/Abhijith1907/conference-booking/internal/router"
	"github.com/Abhijith1907/conference-booking/internal/scheduler"
	"github.com/Abhijith1907/conference-booking/internal/service"
	"github.com/Abhijith1907/conference-booking/internal/store"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	stores     []io.Closer
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ConferenceBooking",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	// one in-memory table per entity type, torn down on shutdown
	conferenceStore := store.NewMemory[domain.Conference]()
	userStore := store.NewMemory[domain.User]()
	bookingStore := store.NewMemory[domain.Booking]()
	waitlistStore := store.NewMemory[domain.Waitlist]()
	windowStore := store.NewMemory[domain.ConfirmationWindow]()
	a.stores = []io.Closer{
		conferenceStore, userStore, bookingStore, waitlistStore, windowStore,
	}

	conferenceRepo := repository.NewConferenceRepo(conferenceStore)
	userRepo := repository.NewUserRepo(userStore)
	bookingRepo := repository.NewBookingRepo(bookingStore)
	waitlistRepo := repository.NewWaitlistRepo(waitlistStore)
	windowRepo := repository.NewWindowRepo(windowStore)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	conferenceService := service.NewConferenceService(conferenceRepo, waitlistRepo)
	userService := service.NewUserService(userRepo)
	bookingService := service.NewBookingService(
		bookingRepo,
		conferenceRepo,
		userRepo,
		waitlistRepo,
		windowRepo,
		n,
		a.log,
		a.cfg.Booking.ConfirmationWindow,
	)

	a.scheduler = scheduler.New(
		conferenceService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(conferenceService, bookingService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	for _, s := range a.stores {
		if err := s.Close(); err != nil {
			return fmt.Errorf("close store: %w", err)
		}
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "stores closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
