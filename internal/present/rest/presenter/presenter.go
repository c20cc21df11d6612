package presenter

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func BadRequestMessage(c echo.Context, msg string) error {
	slog.WarnContext(
		c.Request().Context(),
		"bad request",
		slog.String("reason", msg),
		slog.String("module", "rest"),
	)
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func NotFound(c echo.Context, msg string) error {
	slog.InfoContext(
		c.Request().Context(),
		"not found",
		slog.String("reason", msg),
		slog.String("module", "rest"),
	)
	return c.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

// BadGateway reports a failure of the upstream data service. The upstream
// error is logged but not echoed to the client.
func BadGateway(c echo.Context, err error, msg string) error {
	slog.ErrorContext(
		c.Request().Context(),
		"upstream failed",
		slog.String("error", err.Error()),
		slog.String("module", "rest"),
	)
	return c.JSON(http.StatusBadGateway, errorResponse{Error: msg})
}

func GatewayTimeout(c echo.Context, err error, msg string) error {
	slog.WarnContext(
		c.Request().Context(),
		"upstream timed out",
		slog.String("error", err.Error()),
		slog.String("module", "rest"),
	)
	return c.JSON(http.StatusGatewayTimeout, errorResponse{Error: msg})
}
