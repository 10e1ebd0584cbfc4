package handler

import (
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// invalidID renders the 400 for a malformed path id.
func invalidID(c echo.Context, what string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")
}

// bindAndValidate binds the request into req and runs its validate tags.
// On failure the 400 response has already been written and handled is true.
func bindAndValidate(c echo.Context, req any) (handled bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, response.BadRequest(c, "INVALID_INPUT", "Request body could not be read")
	}

	if err := c.Validate(req); err != nil {
		var fields validator.FieldErrors
		if errors.As(err, &fields) {
			return true, response.Invalid(c, "VALIDATION_FAILED", "Submitted data is invalid", fields)
		}

		return true, errors.WithStack(err)
	}

	return false, nil
}
