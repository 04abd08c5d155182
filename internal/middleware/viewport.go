package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"askfun/internal/sendmodal"
)

const viewportKey = "viewport"

// Client hint headers we request and read.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderViewportWidthLegacy = "Viewport-Width"
)

// Viewport asks browsers for viewport client hints and stores what they sent
// in c.Locals for the send modal shell selection.
func Viewport(c fiber.Ctx) error {
	c.Set(fiber.HeaderAcceptCH, HeaderViewportWidth+", "+HeaderViewportWidthLegacy)
	c.Append(fiber.HeaderVary, HeaderViewportWidth, HeaderViewportWidthLegacy)

	c.Locals(viewportKey, parseViewport(
		c.Get(HeaderViewportWidth),
		c.Get(HeaderViewportWidthLegacy),
	))
	return c.Next()
}

// ViewportFrom returns the viewport stored by the Viewport middleware.
func ViewportFrom(c fiber.Ctx) sendmodal.Viewport {
	vp, _ := c.Locals(viewportKey).(sendmodal.Viewport)
	return vp
}

func parseViewport(width, legacyWidth string) sendmodal.Viewport {
	w := parseWidth(width)
	if w == 0 {
		w = parseWidth(legacyWidth)
	}
	return sendmodal.Viewport{Width: w}
}

// parseWidth accepts a positive integer (fractions are truncated), 0 otherwise.
func parseWidth(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 1 || f > 100000 {
		return 0
	}
	return int(f)
}
