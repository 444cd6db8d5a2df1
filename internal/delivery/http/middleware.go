package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/egannguyen/seller-dashboard/internal/entity"
	"github.com/egannguyen/seller-dashboard/internal/identity"
)

const userContextKey = "user"

// Authenticate resolves the session token of the request into the current user.
// Lookup failures are logged and the request continues signed out.
func Authenticate(provider identity.Provider, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessionToken(c.Request(), cookieName)
			if token == "" {
				return next(c)
			}

			user, err := provider.CurrentUser(c.Request().Context(), token)
			if err != nil {
				slog.Warn("Failed to resolve session", "err", err)
			} else if user != nil {
				c.Set(userContextKey, user)
			}
			return next(c)
		}
	}
}

// sessionToken reads the session cookie, falling back to a bearer token.
func sessionToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if auth := r.Header.Get(echo.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// CurrentUser returns the signed-in user, or nil.
func CurrentUser(c echo.Context) *entity.User {
	u, _ := c.Get(userContextKey).(*entity.User)
	return u
}

// RequestLogger writes one slog record per request.
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Float64("latency_ms", float64(v.Latency.Microseconds())/1000.0),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("err", v.Error.Error()))
			}
			slog.LogAttrs(c.Request().Context(), level, "http_request", attrs...)
			return nil
		},
	})
}
