package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kwikr-directory/config"
	_ "kwikr-directory/docs" // Swagger docs
	calendarHTTP "kwikr-directory/internal/calendar/delivery/http"
	"kwikr-directory/internal/calendar/repository"
	"kwikr-directory/internal/calendar/repository/eventsvc"
	"kwikr-directory/internal/calendar/repository/gcal"
	calendarUC "kwikr-directory/internal/calendar/usecase"
	"kwikr-directory/internal/httpserver"
	"kwikr-directory/internal/scheduler"
	sessionHTTP "kwikr-directory/internal/session/delivery/http"
	sessionUC "kwikr-directory/internal/session/usecase"
	"kwikr-directory/pkg/credential"
	"kwikr-directory/pkg/gcalendar"
	"kwikr-directory/pkg/log"
)

// @title       Kwikr Directory Worker Calendar API
// @description Month grid, daily schedule and upcoming appointments for service providers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Kwikr Directory calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Event service: %s (namespace %s)", cfg.EventService.URL, cfg.EventService.Namespace)

	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Calendar.Timezone, err)
		return
	}

	// 3. Credential store
	store, err := credential.New(credential.Options{
		Kind:       cfg.Credential.Store,
		SQLitePath: cfg.Credential.SQLitePath,
		TTL:        cfg.Credential.TTL,
		Size:       cfg.Session.Size,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to open credential store: %v", err)
		return
	}
	defer store.Close()
	logger.Infof(ctx, "Credential store: %s", cfg.Credential.Store)

	// 4. Repositories
	eventClient := eventsvc.NewClient(cfg.EventService.URL, cfg.EventService.Namespace, cfg.EventService.Timeout)
	eventRepo := eventsvc.New(eventClient, cfg.EventService.CacheSize, cfg.EventService.CacheTTL, logger)

	// Google Calendar personal events (optional)
	var personalRepo repository.PersonalRepository
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcalClient, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate the token file")
		} else {
			personalRepo = gcal.New(gcalClient, cfg.GoogleCalendar.CalendarID, logger)
			logger.Info(ctx, "Google Calendar personal events enabled")
		}
	}

	// 5. UseCases
	calUC := calendarUC.New(logger, eventRepo, personalRepo, store, calendarUC.Config{
		Location:      loc,
		WeekStart:     cfg.Calendar.WeekStartDay(),
		DateLayout:    cfg.Calendar.DateLayout,
		UpcomingLimit: cfg.Calendar.UpcomingLimit,
		HorizonDays:   cfg.Calendar.UpcomingHorizonDays,
		FetchTimeout:  cfg.EventService.Timeout,
		SessionSize:   cfg.Session.Size,
		SessionTTL:    cfg.Session.TTL,
	})
	sessUC := sessionUC.New(logger, store, cfg.Session.TTL)

	// 6. Credential purge (sqlite only)
	if purger, ok := store.(credential.Purger); ok {
		sched, sErr := scheduler.New(logger, purger, cfg.Credential.PurgeSchedule, loc)
		if sErr != nil {
			logger.Errorf(ctx, "Failed to initialize scheduler: %v", sErr)
			return
		}
		go func() {
			if err := sched.Start(ctx); err != nil {
				logger.Errorf(ctx, "Scheduler stopped: %v", err)
			}
		}()
	}

	var readyProbe func(context.Context) error
	if pinger, ok := store.(credential.Pinger); ok {
		readyProbe = pinger.Ping
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		CalendarUseCase: calUC,
		View: calendarHTTP.ViewConfig{
			Location:   loc,
			DateLayout: cfg.Calendar.DateLayout,
		},
		SessionUseCase: sessUC,
		Cookie: sessionHTTP.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
			TTL:    cfg.Session.TTL,
		},
		RateLimitPerMin: cfg.RateLimit.PerMin,
		ReadyProbe:      readyProbe,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
