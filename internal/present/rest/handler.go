package rest

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/present/rest/presenter"
	"github.com/totegamma/council-reports/internal/report"
	"github.com/totegamma/council-reports/internal/usecase"
)

type Handler struct {
	page *usecase.PageUsecase
}

func NewHandler(page *usecase.PageUsecase) *Handler {
	return &Handler{page: page}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.handleHealth)
	e.GET("/api/v1/home", h.handleHome)
	e.GET("/api/v1/directory", h.handleDirectory)
	e.GET("/api/v1/offerings", h.handleOfferings)
	e.GET("/api/v1/explorer", h.handleExplorer)
	e.GET("/api/v1/councils/:id/dashboard", h.handleDashboard)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleHome(c echo.Context) error {
	return presenter.OK(c, h.page.Home(c.Request().Context()))
}

// Page level fetch failures are carried inside the view model, so these
// handlers always answer 200.
func (h *Handler) handleDirectory(c echo.Context) error {
	return presenter.OK(c, h.page.Directory(c.Request().Context()))
}

func (h *Handler) handleOfferings(c echo.Context) error {
	return presenter.OK(c, h.page.Offerings(c.Request().Context()))
}

func (h *Handler) handleExplorer(c echo.Context) error {
	return presenter.OK(c, h.page.Explorer(c.Request().Context()))
}

func (h *Handler) handleDashboard(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return presenter.BadRequestMessage(c, "council id is required")
	}

	dashboard, err := h.page.Dashboard(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return presenter.NotFound(c, "council not found")
		case errors.Is(err, usecase.ErrPending):
			return presenter.GatewayTimeout(c, err, report.CouncilsFailedMessage)
		default:
			return presenter.BadGateway(c, err, report.CouncilsFailedMessage)
		}
	}

	return presenter.OK(c, dashboard)
}
