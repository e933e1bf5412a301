package handler

import (
	"net/http"

	"authgate/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness for load balancers.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Root answers the bare service URL.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Server is working")
}
