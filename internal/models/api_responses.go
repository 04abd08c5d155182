package models

import (
	"github.com/google/uuid"

	"askfun/internal/catalog"
)

// ProfileResponse is the public JSON view of a profile.
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Handle      string    `json:"handle"`
	EntityName  string    `json:"entity_name"`
	FBPage      *string   `json:"fb_page"`
	AvatarURL   string    `json:"avatar_url"`
	Affiliation *string   `json:"affiliation,omitempty"`
	URL         string    `json:"url"`
}

// SendOptionsResponse lists the send-option catalog in order.
type SendOptionsResponse struct {
	Options []catalog.MessageOption `json:"options"`
}
