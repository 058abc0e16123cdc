// Package handler implements the HTTP operation surface the floor UI may
// invoke: session, menu browsing, tables and orders, payments,
// reservations, loyalty and the schedule report. This surface is the
// entire contract of the core; no other mutation path exists.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
