package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"kwikr-directory/internal/calendar"
	calendarHTTP "kwikr-directory/internal/calendar/delivery/http"
	"kwikr-directory/internal/session"
	sessionHTTP "kwikr-directory/internal/session/delivery/http"
	"kwikr-directory/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Calendar domain
	calendarUC calendar.UseCase
	view       calendarHTTP.ViewConfig

	// Session domain
	sessionUC session.UseCase
	cookie    sessionHTTP.CookieConfig

	rateLimitPerMin int
	readyProbe      func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Calendar domain
	CalendarUseCase calendar.UseCase
	View            calendarHTTP.ViewConfig

	// Session domain
	SessionUseCase session.UseCase
	Cookie         sessionHTTP.CookieConfig

	RateLimitPerMin int

	// ReadyProbe backs /ready. Optional.
	ReadyProbe func(ctx context.Context) error
}

const defaultShutdownTimeout = 10 * time.Second

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		calendarUC:      cfg.CalendarUseCase,
		view:            cfg.View,
		sessionUC:       cfg.SessionUseCase,
		cookie:          cfg.Cookie,
		rateLimitPerMin: cfg.RateLimitPerMin,
		readyProbe:      cfg.ReadyProbe,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarUC == nil {
		return errors.New("calendar use case is required")
	}
	if srv.sessionUC == nil {
		return errors.New("session use case is required")
	}
	if srv.cookie.Name == "" {
		return errors.New("session cookie name is required")
	}
	return nil
}
