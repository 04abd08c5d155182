package handlers

import (
	"errors"
	"html"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"askfun/internal/db"
)

// isHTMX reports whether the request was issued by HTMX.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="p-3 rounded-lg bg-red-50 dark:bg-red-900/30 text-red-700 dark:text-red-300 text-sm">` + html.EscapeString(message) + `</div>`,
	)
}

// requestQuery parses the raw query string of the current request.
func requestQuery(c fiber.Ctx) url.Values {
	q, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return url.Values{}
	}
	return q
}

// notFoundOr maps db.ErrProfileNotFound to a 404 fiber error and passes anything else through.
func notFoundOr(err error, message string) error {
	if errors.Is(err, db.ErrProfileNotFound) {
		return fiber.NewError(fiber.StatusNotFound, message)
	}
	return err
}
