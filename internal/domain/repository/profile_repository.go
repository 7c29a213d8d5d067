package repository

import (
	"context"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
)

// ProfileRepository defines the interface for the store profile row
type ProfileRepository interface {
	// Get returns the single profile row.
	Get(ctx context.Context) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
}
