package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/apperror"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
	"github.com/andrisetiawan/tokokain-api/pkg/utils"
)

// BarangService handles barang master data operations
type BarangService struct {
	barangRepo repository.BarangRepository
}

// NewBarangService creates a new barang service
func NewBarangService(barangRepo repository.BarangRepository) *BarangService {
	return &BarangService{barangRepo: barangRepo}
}

// CreateBarangInput represents the create barang input
type CreateBarangInput struct {
	KdBarang   string
	NamaBarang string
	JmlYard    float64
	JmlRol     int
}

// CreateBarang creates a new barang
func (s *BarangService) CreateBarang(ctx context.Context, input *CreateBarangInput) (*entity.Barang, error) {
	if input.KdBarang == "" {
		input.KdBarang = utils.GenerateKodeBarang()
	}

	existing, err := s.barangRepo.GetByKode(ctx, input.KdBarang)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Kode barang already exists")
	}

	barang := &entity.Barang{
		KdBarang:   input.KdBarang,
		NamaBarang: input.NamaBarang,
		JmlYard:    input.JmlYard,
		JmlRol:     input.JmlRol,
	}

	if err := s.barangRepo.Create(ctx, barang); err != nil {
		return nil, err
	}

	return barang, nil
}

// GetBarang retrieves a barang by ID
func (s *BarangService) GetBarang(ctx context.Context, id uuid.UUID) (*entity.Barang, error) {
	barang, err := s.barangRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if barang == nil {
		return nil, apperror.NewNotFoundError("Barang")
	}
	return barang, nil
}

// ListBarang lists barang with pagination
func (s *BarangService) ListBarang(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Barang], error) {
	barang, total, err := s.barangRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(barang, pag), nil
}

// ListAllBarang returns every barang, for transaction form dropdowns
func (s *BarangService) ListAllBarang(ctx context.Context) ([]entity.Barang, error) {
	return s.barangRepo.ListAll(ctx)
}

// StockSummary is the aggregate stock position.
type StockSummary struct {
	TotalYard float64 `json:"total_yard"`
	TotalRol  int64   `json:"total_rol"`
}

// GetStockSummary sums stock across all barang
func (s *BarangService) GetStockSummary(ctx context.Context) (*StockSummary, error) {
	totalYard, totalRol, err := s.barangRepo.TotalStock(ctx)
	if err != nil {
		return nil, err
	}
	return &StockSummary{TotalYard: totalYard, TotalRol: totalRol}, nil
}

// UpdateBarangInput represents the update barang input
type UpdateBarangInput struct {
	ID         uuid.UUID
	KdBarang   *string
	NamaBarang *string
	JmlYard    *float64
	JmlRol     *int
}

// UpdateBarang updates a barang
func (s *BarangService) UpdateBarang(ctx context.Context, input *UpdateBarangInput) (*entity.Barang, error) {
	barang, err := s.barangRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if barang == nil {
		return nil, apperror.NewNotFoundError("Barang")
	}

	if input.KdBarang != nil && *input.KdBarang != barang.KdBarang {
		existing, err := s.barangRepo.GetByKode(ctx, *input.KdBarang)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Kode barang already exists")
		}
		barang.KdBarang = *input.KdBarang
	}
	if input.NamaBarang != nil {
		barang.NamaBarang = *input.NamaBarang
	}
	if input.JmlYard != nil {
		barang.JmlYard = *input.JmlYard
	}
	if input.JmlRol != nil {
		barang.JmlRol = *input.JmlRol
	}

	if err := s.barangRepo.Update(ctx, barang); err != nil {
		return nil, err
	}

	return barang, nil
}

// DeleteBarang deletes a barang
func (s *BarangService) DeleteBarang(ctx context.Context, id uuid.UUID) error {
	barang, err := s.barangRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if barang == nil {
		return apperror.NewNotFoundError("Barang")
	}

	return s.barangRepo.Delete(ctx, id)
}
