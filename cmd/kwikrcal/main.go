package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kwikr-directory/config"
	"kwikr-directory/internal/calendar"
	"kwikr-directory/internal/calendar/repository/eventsvc"
	calendarUC "kwikr-directory/internal/calendar/usecase"
	"kwikr-directory/pkg/credential"
	"kwikr-directory/pkg/log"
)

// App holds what the commands need to query the calendar.
type App struct {
	uc    calendar.UseCase
	loc   *time.Location
	token string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "error",
		Mode:         cfg.Logger.Mode,
		Encoding:     "console",
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid timezone:", err)
		os.Exit(1)
	}

	client := eventsvc.NewClient(cfg.EventService.URL, cfg.EventService.Namespace, cfg.EventService.Timeout)
	repo := eventsvc.New(client, cfg.EventService.CacheSize, cfg.EventService.CacheTTL, logger)
	store := credential.NewMemoryStore(1, cfg.Credential.TTL)
	defer store.Close()

	app := &App{
		uc: calendarUC.New(logger, repo, nil, store, calendarUC.Config{
			Location:      loc,
			WeekStart:     cfg.Calendar.WeekStartDay(),
			DateLayout:    cfg.Calendar.DateLayout,
			UpcomingLimit: cfg.Calendar.UpcomingLimit,
			HorizonDays:   cfg.Calendar.UpcomingHorizonDays,
			FetchTimeout:  cfg.EventService.Timeout,
		}),
		loc:   loc,
		token: cfg.EventService.Token,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := SetupCommands(app).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
