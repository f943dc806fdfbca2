// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"
	"strings"
	"time"

	domainerrors "coffeeshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = time.DateOnly

// bindAndValidate decodes the request into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pathID parses a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer"))
	}

	return id, nil
}

// pathInt parses a positive int path parameter.
func pathInt(c echo.Context, name string) (int, error) {
	id, err := pathID(c, name)
	if err != nil {
		return 0, err
	}

	return int(id), nil
}

// queryInt64 parses an optional integer query parameter.
func queryInt64(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer"))
	}

	return &v, nil
}

// queryFloat parses an optional decimal query parameter.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a number"))
	}

	return &v, nil
}

// queryBool parses an optional boolean query parameter, returning def when absent.
func queryBool(c echo.Context, name string, def bool) (bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be true or false"))
	}

	return v, nil
}

// queryTime accepts RFC 3339 timestamps or plain dates.
func queryTime(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return &t, nil
	}

	return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a date (YYYY-MM-DD) or an RFC 3339 time"))
}

// queryRange reads the from and to query parameters. A plain "to" date covers the whole day.
func queryRange(c echo.Context) (from, to *time.Time, err error) {
	if from, err = queryTime(c, "from"); err != nil {
		return nil, nil, err
	}
	if to, err = queryTime(c, "to"); err != nil {
		return nil, nil, err
	}

	if to != nil {
		if _, perr := time.Parse(dateLayout, strings.TrimSpace(c.QueryParam("to"))); perr == nil {
			end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
			to = &end
		}
	}

	return from, to, nil
}

// messageResponse is returned by endpoints that have nothing else to report.
type messageResponse struct {
	Message string `json:"message"`
}
