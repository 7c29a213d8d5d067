package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// OprasionalRepository defines the interface for operational expense data
// operations
type OprasionalRepository interface {
	Create(ctx context.Context, oprasional *entity.Oprasional) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Oprasional, error)
	Update(ctx context.Context, oprasional *entity.Oprasional) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, startDate, endDate *time.Time) ([]entity.Oprasional, int64, error)
}
