package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	domainRepo "github.com/andrisetiawan/tokokain-api/internal/domain/repository"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) domainRepo.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
