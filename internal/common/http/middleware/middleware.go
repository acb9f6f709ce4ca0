package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/finworks/go-sepa-export/internal/common/log"
	"github.com/finworks/go-sepa-export/internal/config"

	"github.com/labstack/echo/v4"
)

const HeaderSecretKey = "X-Secret-Key"

type Middleware struct {
	conf config.Config
}

func NewMiddleware(conf config.Config) *Middleware {
	return &Middleware{conf: conf}
}

// Context attaches the request id to the request context so every log line
// written below the handler carries it.
func (m *Middleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			ctx := log.WithFields(c.Request().Context(),
				log.String("requestId", requestID))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// Logger writes one access log line per request.
func (m *Middleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			log.Info(c.Request().Context(), "[HTTP]",
				log.String("method", c.Request().Method),
				log.String("path", c.Request().URL.Path),
				log.Int("status", c.Response().Status),
				log.Duration("latency", time.Since(start)),
			)

			return err
		}
	}
}

// InternalAuth guards the API with the shared secret used by the host record
// system. An empty configured secret disables the check (local development).
func (m *Middleware) InternalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.conf.SecretKey == "" {
			return next(c)
		}

		provided := c.Request().Header.Get(HeaderSecretKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.conf.SecretKey)) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid secret key")
		}

		return next(c)
	}
}
