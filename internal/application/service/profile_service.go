package service

import (
	"context"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/apperror"
)

// ProfileService handles the store profile shown on printed invoices
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile returns the store profile
func (s *ProfileService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}
	return profile, nil
}

// UpdateProfileInput represents the update input
type UpdateProfileInput struct {
	NamaToko      *string
	Alamat        *string
	NomorTelepon1 *string
	NomorTelepon2 *string
	NomorTelepon3 *string
	Rekening      *string
	NamaRekening  *string
}

// UpdateProfile updates the store profile
func (s *ProfileService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Profile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}

	if input.NamaToko != nil {
		profile.NamaToko = *input.NamaToko
	}
	if input.Alamat != nil {
		profile.Alamat = *input.Alamat
	}
	if input.NomorTelepon1 != nil {
		profile.NomorTelepon1 = input.NomorTelepon1
	}
	if input.NomorTelepon2 != nil {
		profile.NomorTelepon2 = input.NomorTelepon2
	}
	if input.NomorTelepon3 != nil {
		profile.NomorTelepon3 = input.NomorTelepon3
	}
	if input.Rekening != nil {
		profile.Rekening = input.Rekening
	}
	if input.NamaRekening != nil {
		profile.NamaRekening = input.NamaRekening
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}
