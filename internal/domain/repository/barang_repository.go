package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// StockAdjustment moves a barang's stock by a signed delta. Yard and rol
// move together in one statement.
type StockAdjustment struct {
	BarangID  uuid.UUID
	DeltaYard float64
	DeltaRol  int
}

// BarangRepository defines the interface for barang data operations
type BarangRepository interface {
	Create(ctx context.Context, barang *entity.Barang) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Barang, error)
	GetByKode(ctx context.Context, kdBarang string) (*entity.Barang, error)
	Update(ctx context.Context, barang *entity.Barang) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Barang, int64, error)
	// ListAll returns every barang without pagination, for dropdowns.
	ListAll(ctx context.Context) ([]entity.Barang, error)
	// AdjustStockBatch applies signed yard/rol deltas atomically. Negative
	// deltas that would take jml_yard below zero fail the whole batch.
	AdjustStockBatch(ctx context.Context, adjustments []StockAdjustment) error
	// TotalStock sums yard and rol across all barang.
	TotalStock(ctx context.Context) (float64, int64, error)
}
