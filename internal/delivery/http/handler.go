package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/egannguyen/seller-dashboard/internal/entity"
	"github.com/egannguyen/seller-dashboard/internal/service"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler handles HTTP requests for the application.
type Handler struct {
	dashboardSvc *service.DashboardService
	navSvc       *service.NavService
	db           Pinger
}

func NewHandler(dashboardSvc *service.DashboardService, navSvc *service.NavService, db Pinger) *Handler {
	return &Handler{
		dashboardSvc: dashboardSvc,
		navSvc:       navSvc,
		db:           db,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.handleHealth)
	e.GET("/nav", h.handleNav)
	e.GET("/view-shop", h.handleDashboard)

	api := e.Group("/api")
	api.GET("/dashboard", h.handleGetDashboard)
}

// page is the data every full-page template receives.
type page struct {
	Title     string
	Nav       entity.Nav
	Dashboard *entity.Dashboard
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleHealth(c echo.Context) error {
	if h.db != nil {
		if err := h.db.PingContext(c.Request().Context()); err != nil {
			slog.Error("Health check failed", "err", err)
			return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "database unavailable"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleNav(c echo.Context) error {
	nav := h.navSvc.Build(c.Request().Context(), CurrentUser(c))
	return c.Render(http.StatusOK, navTemplate, nav)
}

func (h *Handler) handleDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	user := CurrentUser(c)
	nav := h.navSvc.Build(ctx, user)

	if user == nil {
		return c.Render(http.StatusUnauthorized, unauthorizedTemplate, page{Title: "Unauthorized", Nav: nav})
	}

	dashboard := h.dashboardSvc.Build(ctx, user.ID)
	data := page{Title: "Dashboard", Nav: nav, Dashboard: dashboard}
	if dashboard.Empty {
		return c.Render(http.StatusOK, emptyTemplate, data)
	}
	return c.Render(http.StatusOK, dashboardTemplate, data)
}

func (h *Handler) handleGetDashboard(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	return c.JSON(http.StatusOK, h.dashboardSvc.Build(c.Request().Context(), user.ID))
}
