package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// PelangganRepository defines the interface for pelanggan data operations
type PelangganRepository interface {
	Create(ctx context.Context, pelanggan *entity.Pelanggan) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Pelanggan, error)
	Update(ctx context.Context, pelanggan *entity.Pelanggan) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Pelanggan, int64, error)
	// ListAll returns every pelanggan without pagination, for dropdowns.
	ListAll(ctx context.Context) ([]entity.Pelanggan, error)
}
