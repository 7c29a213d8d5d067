package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	domainRepo "github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

type pelangganRepository struct {
	db *gorm.DB
}

// NewPelangganRepository creates a new pelanggan repository
func NewPelangganRepository(db *gorm.DB) domainRepo.PelangganRepository {
	return &pelangganRepository{db: db}
}

func (r *pelangganRepository) Create(ctx context.Context, pelanggan *entity.Pelanggan) error {
	return r.db.WithContext(ctx).Create(pelanggan).Error
}

func (r *pelangganRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Pelanggan, error) {
	var pelanggan entity.Pelanggan
	err := r.db.WithContext(ctx).First(&pelanggan, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pelanggan, err
}

func (r *pelangganRepository) Update(ctx context.Context, pelanggan *entity.Pelanggan) error {
	return r.db.WithContext(ctx).Save(pelanggan).Error
}

func (r *pelangganRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Pelanggan{}, "id = ?", id).Error
}

func (r *pelangganRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Pelanggan, int64, error) {
	var pelanggan []entity.Pelanggan
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Pelanggan{}).
		Scopes(SearchScope(search, "nama", "no_tlp", "alamat"))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("nama ASC").
		Find(&pelanggan).Error

	return pelanggan, total, err
}

func (r *pelangganRepository) ListAll(ctx context.Context) ([]entity.Pelanggan, error) {
	var pelanggan []entity.Pelanggan
	err := r.db.WithContext(ctx).Order("nama ASC").Find(&pelanggan).Error
	return pelanggan, err
}
