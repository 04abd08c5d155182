package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"askfun/internal/cache"
	"askfun/internal/db"
	"askfun/internal/models"
	"askfun/internal/validation"
)

// ProfileStore is the persistent source of profiles.
type ProfileStore interface {
	GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error)
}

// ProfileService fetches profiles through the cache, collapsing concurrent misses
// for the same handle into one database query.
type ProfileService struct {
	store ProfileStore
	cache *cache.ProfileCache
	group singleflight.Group
}

// NewProfileService creates a profile service. cache may be nil.
func NewProfileService(store ProfileStore, profileCache *cache.ProfileCache) *ProfileService {
	return &ProfileService{store: store, cache: profileCache}
}

// Get returns the profile for handle. Invalid or unknown handles yield db.ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, handle string) (*models.Profile, error) {
	handle = validation.NormalizeHandle(handle)
	if !validation.ValidateHandle(handle) {
		return nil, db.ErrProfileNotFound
	}

	if p, err := s.cache.Get(handle); err != nil {
		slog.Warn("profile cache read failed", "handle", handle, "error", err)
	} else if p != nil {
		return p, nil
	}

	v, err, _ := s.group.Do(handle, func() (any, error) {
		p, err := s.store.GetProfileByHandle(ctx, handle)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(p); err != nil {
			slog.Warn("profile cache write failed", "handle", handle, "error", err)
		}
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("get profile %q: %w", handle, err)
	}

	return v.(*models.Profile), nil
}
