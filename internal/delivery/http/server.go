package http

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/egannguyen/seller-dashboard/internal/identity"
)

// NewServer builds the echo instance with middleware, renderer and routes.
func NewServer(h *Handler, provider identity.Provider, sessionCookie string) (*echo.Echo, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(RequestLogger())
	e.Use(middleware.CORS())
	e.Use(Authenticate(provider, sessionCookie))

	h.RegisterRoutes(e)
	return e, nil
}
