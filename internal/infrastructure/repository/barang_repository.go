package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	domainRepo "github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

type barangRepository struct {
	db *gorm.DB
}

// NewBarangRepository creates a new barang repository
func NewBarangRepository(db *gorm.DB) domainRepo.BarangRepository {
	return &barangRepository{db: db}
}

func (r *barangRepository) Create(ctx context.Context, barang *entity.Barang) error {
	return r.db.WithContext(ctx).Create(barang).Error
}

func (r *barangRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Barang, error) {
	var barang entity.Barang
	err := r.db.WithContext(ctx).First(&barang, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &barang, err
}

func (r *barangRepository) GetByKode(ctx context.Context, kdBarang string) (*entity.Barang, error) {
	var barang entity.Barang
	err := r.db.WithContext(ctx).First(&barang, "kd_barang = ?", kdBarang).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &barang, err
}

func (r *barangRepository) Update(ctx context.Context, barang *entity.Barang) error {
	return r.db.WithContext(ctx).Save(barang).Error
}

func (r *barangRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Barang{}, "id = ?", id).Error
}

func (r *barangRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Barang, int64, error) {
	var barang []entity.Barang
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Barang{}).
		Scopes(SearchScope(search, "kd_barang", "nama_barang"))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("kd_barang ASC").
		Find(&barang).Error

	return barang, total, err
}

func (r *barangRepository) ListAll(ctx context.Context) ([]entity.Barang, error) {
	var barang []entity.Barang
	err := r.db.WithContext(ctx).Order("kd_barang ASC").Find(&barang).Error
	return barang, err
}

// AdjustStockBatch applies all deltas in one database transaction. A
// decrement is guarded so stock never goes negative; any guarded update
// that matches no row rolls the batch back.
func (r *barangRepository) AdjustStockBatch(ctx context.Context, adjustments []domainRepo.StockAdjustment) error {
	if len(adjustments) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, adj := range adjustments {
			query := tx.Model(&entity.Barang{}).Where("id = ?", adj.BarangID)
			if adj.DeltaYard < 0 {
				query = query.Where("jml_yard >= ?", -adj.DeltaYard)
			}

			result := query.Updates(map[string]interface{}{
				"jml_yard": gorm.Expr("jml_yard + ?", adj.DeltaYard),
				"jml_rol":  gorm.Expr("jml_rol + ?", adj.DeltaRol),
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("stok barang %s tidak mencukupi", adj.BarangID)
			}
		}
		return nil
	})
}

func (r *barangRepository) TotalStock(ctx context.Context) (float64, int64, error) {
	var result struct {
		TotalYard float64
		TotalRol  int64
	}

	err := r.db.WithContext(ctx).Model(&entity.Barang{}).
		Select("COALESCE(SUM(jml_yard), 0) as total_yard, COALESCE(SUM(jml_rol), 0) as total_rol").
		Scan(&result).Error

	return result.TotalYard, result.TotalRol, err
}
