package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"askfun/internal/catalog"
	"askfun/internal/config"
	"askfun/internal/db"
	"askfun/internal/models"
	"askfun/internal/services"
	"askfun/internal/validation"
)

// ProfileHandler serves public profile data via JSON API.
type ProfileHandler struct {
	profiles *services.ProfileService
	catalog  *catalog.Catalog
	cfg      *config.Config
}

// NewProfileHandler creates a new API profile handler.
func NewProfileHandler(profiles *services.ProfileService, c *catalog.Catalog, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, catalog: c, cfg: cfg}
}

// Get returns a single profile by handle.
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	profile, err := h.profiles.Get(c.Context(), c.Params("profile"))
	if err != nil {
		if errors.Is(err, db.ErrProfileNotFound) {
			return jsonError(c, fiber.StatusNotFound, "profile not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch profile")
	}

	var fbPage *string
	if profile.HasSocialLink() {
		if link := validation.SafeLink(profile.FBPage); link != "" {
			fbPage = &link
		}
	}

	return jsonSuccess(c, models.ProfileResponse{
		ID:          profile.ID,
		Handle:      profile.Handle,
		EntityName:  profile.EntityName,
		FBPage:      fbPage,
		AvatarURL:   profile.Avatar(h.cfg.DefaultAvatarURL),
		Affiliation: profile.Affiliation,
		URL:         h.cfg.ProfileURL(profile.Handle),
	})
}

// SendOptions returns the send-option catalog in order.
func (h *ProfileHandler) SendOptions(c fiber.Ctx) error {
	return jsonSuccess(c, models.SendOptionsResponse{
		Options: h.catalog.Options(),
	})
}
