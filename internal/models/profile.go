package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a community's public page, looked up by its handle.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Handle      string    `json:"handle"`      // Lowercase, unique, used in /communities/:profile
	EntityName  string    `json:"entity_name"` // Display name
	FBPage      *string   `json:"fb_page"`     // Social link, nil when the community has none
	AvatarURL   *string   `json:"avatar_url"`
	Affiliation *string   `json:"affiliation"` // e.g. the school or organization, shown as a badge
	About       *string   `json:"about"`       // Markdown
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasSocialLink returns true if the profile has a non-empty social link.
func (p *Profile) HasSocialLink() bool {
	return p.FBPage != nil && *p.FBPage != ""
}

// Avatar returns the profile avatar or the given fallback.
func (p *Profile) Avatar(fallback string) string {
	if p.AvatarURL != nil && *p.AvatarURL != "" {
		return *p.AvatarURL
	}
	return fallback
}

// HandleBadge is the "@handle" badge text.
func (p *Profile) HandleBadge() string {
	return "@" + p.Handle
}
