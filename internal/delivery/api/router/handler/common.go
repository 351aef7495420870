// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"fishers/internal/delivery/api/response"
	"fishers/internal/delivery/api/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request into req and runs the struct validator.
// On failure the error response has already been written and handled is true.
func bindAndValidate(c echo.Context, req any) (handled bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		var validationErr *validator.Error
		if errors.As(err, &validationErr) {
			return true, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Validation failed", validationErr.Fields)
		}

		return true, response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return false, nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if t, err := time.Parse(dateLayout, text); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, text)

	return t, errors.Wrapf(err, "invalid date %q", text)
}

func parseOptionalDate(text string) (*time.Time, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	t, err := parseDate(text)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// queryYear reads an optional year query parameter, zero when absent.
func queryYear(c echo.Context) (int, bool) {
	raw := strings.TrimSpace(c.QueryParam("year"))
	if raw == "" {
		return 0, true
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return year, true
}
