// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"askfun/internal/config"
	"askfun/internal/db"
	"askfun/internal/models"
)

// TestConfig returns a development config with fixed values.
func TestConfig() *config.Config {
	return &config.Config{
		Env:               "development",
		ServerAddr:        ":0",
		BaseURL:           "http://localhost:3000",
		SessionSecret:     "test-secret-that-is-long-enough-for-production",
		DesktopBreakpoint: 768,
		DefaultAvatarURL:  "https://example.com/default.jpg",
		PrivacyStatement:  "Your message is anonymous.",
		SiteTitle:         "AskFun",
		SiteFooter:        "AskFun test",
	}
}

// NewProfile builds a profile with the given handle and display name.
func NewProfile(handle, name string) *models.Profile {
	now := time.Now().UTC()
	return &models.Profile{
		ID:         uuid.New(),
		Handle:     handle,
		EntityName: name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}

// ProfileStore is an in-memory services.ProfileStore.
type ProfileStore struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
	Err      error // returned for every lookup when set
}

// NewProfileStore returns a store holding the given profiles.
func NewProfileStore(profiles ...*models.Profile) *ProfileStore {
	s := &ProfileStore{profiles: make(map[string]*models.Profile)}
	for _, p := range profiles {
		s.profiles[p.Handle] = p
	}
	return s
}

// GetProfileByHandle returns db.ErrProfileNotFound for unknown handles.
func (s *ProfileStore) GetProfileByHandle(_ context.Context, handle string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.profiles[handle]
	if !ok {
		return nil, db.ErrProfileNotFound
	}
	return p, nil
}

// Pinger is a readiness dependency with a fixed result.
type Pinger struct {
	Err error
}

// Ping returns p.Err.
func (p Pinger) Ping(context.Context) error {
	return p.Err
}
