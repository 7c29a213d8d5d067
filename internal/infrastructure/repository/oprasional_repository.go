package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	domainRepo "github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

type oprasionalRepository struct {
	db *gorm.DB
}

// NewOprasionalRepository creates a new oprasional repository
func NewOprasionalRepository(db *gorm.DB) domainRepo.OprasionalRepository {
	return &oprasionalRepository{db: db}
}

func (r *oprasionalRepository) Create(ctx context.Context, oprasional *entity.Oprasional) error {
	return r.db.WithContext(ctx).Create(oprasional).Error
}

func (r *oprasionalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Oprasional, error) {
	var oprasional entity.Oprasional
	err := r.db.WithContext(ctx).First(&oprasional, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &oprasional, err
}

func (r *oprasionalRepository) Update(ctx context.Context, oprasional *entity.Oprasional) error {
	return r.db.WithContext(ctx).Save(oprasional).Error
}

func (r *oprasionalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Oprasional{}, "id = ?", id).Error
}

func (r *oprasionalRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, startDate, endDate *time.Time) ([]entity.Oprasional, int64, error) {
	var oprasional []entity.Oprasional
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Oprasional{}).
		Scopes(
			SearchScope(search, "nama_biaya"),
			DateRangeScope("tgl_biaya", startDate, endDate),
		)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("tgl_biaya DESC, created_at DESC").
		Find(&oprasional).Error

	return oprasional, total, err
}
