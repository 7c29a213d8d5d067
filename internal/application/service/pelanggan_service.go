package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/apperror"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// PelangganService handles pelanggan master data operations
type PelangganService struct {
	pelangganRepo repository.PelangganRepository
}

// NewPelangganService creates a new pelanggan service
func NewPelangganService(pelangganRepo repository.PelangganRepository) *PelangganService {
	return &PelangganService{pelangganRepo: pelangganRepo}
}

// CreatePelangganInput represents the create pelanggan input
type CreatePelangganInput struct {
	Nama   string
	NoTlp  *string
	Alamat *string
}

// CreatePelanggan creates a new pelanggan
func (s *PelangganService) CreatePelanggan(ctx context.Context, input *CreatePelangganInput) (*entity.Pelanggan, error) {
	pelanggan := &entity.Pelanggan{
		Nama:   input.Nama,
		NoTlp:  input.NoTlp,
		Alamat: input.Alamat,
	}

	if err := s.pelangganRepo.Create(ctx, pelanggan); err != nil {
		return nil, err
	}

	return pelanggan, nil
}

// GetPelanggan retrieves a pelanggan by ID
func (s *PelangganService) GetPelanggan(ctx context.Context, id uuid.UUID) (*entity.Pelanggan, error) {
	pelanggan, err := s.pelangganRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pelanggan == nil {
		return nil, apperror.NewNotFoundError("Pelanggan")
	}
	return pelanggan, nil
}

// ListPelanggan lists pelanggan with pagination
func (s *PelangganService) ListPelanggan(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Pelanggan], error) {
	pelanggan, total, err := s.pelangganRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(pelanggan, pag), nil
}

// ListAllPelanggan returns every pelanggan, for transaction form dropdowns
func (s *PelangganService) ListAllPelanggan(ctx context.Context) ([]entity.Pelanggan, error) {
	return s.pelangganRepo.ListAll(ctx)
}

// UpdatePelangganInput represents the update pelanggan input
type UpdatePelangganInput struct {
	ID     uuid.UUID
	Nama   *string
	NoTlp  *string
	Alamat *string
}

// UpdatePelanggan updates a pelanggan
func (s *PelangganService) UpdatePelanggan(ctx context.Context, input *UpdatePelangganInput) (*entity.Pelanggan, error) {
	pelanggan, err := s.pelangganRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if pelanggan == nil {
		return nil, apperror.NewNotFoundError("Pelanggan")
	}

	if input.Nama != nil {
		pelanggan.Nama = *input.Nama
	}
	if input.NoTlp != nil {
		pelanggan.NoTlp = input.NoTlp
	}
	if input.Alamat != nil {
		pelanggan.Alamat = input.Alamat
	}

	if err := s.pelangganRepo.Update(ctx, pelanggan); err != nil {
		return nil, err
	}

	return pelanggan, nil
}

// DeletePelanggan deletes a pelanggan
func (s *PelangganService) DeletePelanggan(ctx context.Context, id uuid.UUID) error {
	pelanggan, err := s.pelangganRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pelanggan == nil {
		return apperror.NewNotFoundError("Pelanggan")
	}

	return s.pelangganRepo.Delete(ctx, id)
}
