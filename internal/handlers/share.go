package handlers

import (
	"github.com/gofiber/fiber/v3"
	qrcode "github.com/skip2/go-qrcode"

	"askfun/internal/config"
	"askfun/internal/services"
)

// qrCodeSize is the edge length of share QR codes in pixels.
const qrCodeSize = 256

// ShareHandler serves share artifacts for profile pages.
type ShareHandler struct {
	profiles *services.ProfileService
	cfg      *config.Config
}

// NewShareHandler creates a new share handler.
func NewShareHandler(profiles *services.ProfileService, cfg *config.Config) *ShareHandler {
	return &ShareHandler{profiles: profiles, cfg: cfg}
}

// QRCode returns a PNG QR code that points at the canonical profile URL.
func (h *ShareHandler) QRCode(c fiber.Ctx) error {
	profile, err := h.profiles.Get(c.Context(), c.Params("profile"))
	if err != nil {
		return notFoundOr(err, "community not found")
	}

	png, err := qrcode.Encode(h.cfg.ProfileURL(profile.Handle), qrcode.Medium, qrCodeSize)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	c.Type("png")
	return c.Send(png)
}
