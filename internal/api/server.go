package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"golang.org/x/time/rate"

	"vgdash/internal/log"
)

// ServerOptions configures the echo instance built by NewServer.
type ServerOptions struct {
	CORSOrigins []string
	// RateLimit is the allowed requests per second per client; 0 disables it.
	RateLimit float64
	Logger    *log.Logger
}

// NewServer builds the echo instance with middleware and routes.
func NewServer(h *Handler, opts ServerOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// Request logging goes through slog; echo's own logger stays quiet.
	e.Logger.SetLevel(gommonlog.OFF)
	e.JSONSerializer = goJSONSerializer{}

	e.Use(middleware.Recover())
	if len(opts.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: opts.CORSOrigins}))
	}
	if opts.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(opts.RateLimit))))
	}
	if opts.Logger != nil {
		e.Use(requestLogger(opts.Logger))
	}

	h.RegisterRoutes(e)
	return e
}

func requestLogger(logger *log.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				log.FieldMethod, v.Method,
				log.FieldPath, v.URI,
				log.FieldStatusCode, v.Status,
				log.FieldDuration, v.Latency.Milliseconds(),
				log.FieldClientIP, v.RemoteIP,
			}
			ctx := c.Request().Context()
			if v.Error != nil {
				logger.ErrorContext(ctx, "Request failed", append(attrs, log.FieldError, v.Error.Error())...)
				return nil
			}
			logger.InfoContext(ctx, "Request served", attrs...)
			return nil
		},
	})
}
