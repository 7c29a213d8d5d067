package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/apperror"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// OprasionalService handles operational expense records
type OprasionalService struct {
	oprasionalRepo repository.OprasionalRepository
}

// NewOprasionalService creates a new oprasional service
func NewOprasionalService(oprasionalRepo repository.OprasionalRepository) *OprasionalService {
	return &OprasionalService{oprasionalRepo: oprasionalRepo}
}

// CreateOprasionalInput represents the create input
type CreateOprasionalInput struct {
	NamaBiaya string
	JmlBiaya  int64
	TglBiaya  time.Time
	Catatan   *string
}

// CreateOprasional records a new expense
func (s *OprasionalService) CreateOprasional(ctx context.Context, input *CreateOprasionalInput) (*entity.Oprasional, error) {
	if input.JmlBiaya < 0 {
		return nil, apperror.NewBadRequestError("Jml biaya must not be negative")
	}

	oprasional := &entity.Oprasional{
		NamaBiaya: input.NamaBiaya,
		JmlBiaya:  input.JmlBiaya,
		TglBiaya:  input.TglBiaya,
		Catatan:   input.Catatan,
	}

	if err := s.oprasionalRepo.Create(ctx, oprasional); err != nil {
		return nil, err
	}

	return oprasional, nil
}

// GetOprasional retrieves an expense by ID
func (s *OprasionalService) GetOprasional(ctx context.Context, id uuid.UUID) (*entity.Oprasional, error) {
	oprasional, err := s.oprasionalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if oprasional == nil {
		return nil, apperror.NewNotFoundError("Oprasional")
	}
	return oprasional, nil
}

// ListOprasionalInput represents the list filter input
type ListOprasionalInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListOprasional lists expenses with filters
func (s *OprasionalService) ListOprasional(ctx context.Context, input *ListOprasionalInput) (*pagination.PaginatedResult[entity.Oprasional], error) {
	oprasional, total, err := s.oprasionalRepo.List(ctx, input.Pagination, input.Search, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(oprasional, pag), nil
}

// UpdateOprasionalInput represents the update input
type UpdateOprasionalInput struct {
	ID        uuid.UUID
	NamaBiaya *string
	JmlBiaya  *int64
	TglBiaya  *time.Time
	Catatan   *string
}

// UpdateOprasional updates an expense
func (s *OprasionalService) UpdateOprasional(ctx context.Context, input *UpdateOprasionalInput) (*entity.Oprasional, error) {
	oprasional, err := s.oprasionalRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if oprasional == nil {
		return nil, apperror.NewNotFoundError("Oprasional")
	}

	if input.NamaBiaya != nil {
		oprasional.NamaBiaya = *input.NamaBiaya
	}
	if input.JmlBiaya != nil {
		if *input.JmlBiaya < 0 {
			return nil, apperror.NewBadRequestError("Jml biaya must not be negative")
		}
		oprasional.JmlBiaya = *input.JmlBiaya
	}
	if input.TglBiaya != nil {
		oprasional.TglBiaya = *input.TglBiaya
	}
	if input.Catatan != nil {
		oprasional.Catatan = input.Catatan
	}

	if err := s.oprasionalRepo.Update(ctx, oprasional); err != nil {
		return nil, err
	}

	return oprasional, nil
}

// DeleteOprasional deletes an expense
func (s *OprasionalService) DeleteOprasional(ctx context.Context, id uuid.UUID) error {
	oprasional, err := s.oprasionalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if oprasional == nil {
		return apperror.NewNotFoundError("Oprasional")
	}

	return s.oprasionalRepo.Delete(ctx, id)
}
