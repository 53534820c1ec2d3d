package httputil

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// BindStrict decodes the JSON body into dst, rejecting unknown fields,
// then runs the registered validator.
func BindStrict(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return c.Validate(dst)
}

// BadRequest maps a BindStrict failure to a 400 response. Validator
// failures are itemized per field; anything else is a generic bad body.
func BadRequest(c echo.Context, err error) error {
	if _, ok := err.(validator.ValidationErrors); ok {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"message": "validation failed",
			"errors":  FieldErrors(err),
		})
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
}

func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"message": "not found"})
}

// ServerError logs the cause and returns a generic 500. The underlying
// error is echoed to the client only in development (e.Debug).
func ServerError(c echo.Context, err error) error {
	c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	body := map[string]string{"message": "internal server error"}
	if c.Echo().Debug && err != nil {
		body["detail"] = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, body)
}

func Message(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"message": msg})
}

// ParseDate parses a 2006-01-02 date, returning nil for the empty string.
// Callers validate the format first, so a parse failure also yields nil.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// ParseTime is ParseDate for full RFC3339 timestamps.
func ParseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
