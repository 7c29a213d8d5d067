package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	domainRepo "github.com/andrisetiawan/tokokain-api/internal/domain/repository"
)

type transaksiMasukRepository struct {
	db *gorm.DB
}

// NewTransaksiMasukRepository creates a new transaksi masuk repository
func NewTransaksiMasukRepository(db *gorm.DB) domainRepo.TransaksiMasukRepository {
	return &transaksiMasukRepository{db: db}
}

func (r *transaksiMasukRepository) Create(ctx context.Context, transaksi *entity.TransaksiMasuk) error {
	return r.db.WithContext(ctx).Create(transaksi).Error
}

func (r *transaksiMasukRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TransaksiMasuk, error) {
	var transaksi entity.TransaksiMasuk
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Penginput").
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Berjangka", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&transaksi, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transaksi, err
}

func (r *transaksiMasukRepository) Update(ctx context.Context, transaksi *entity.TransaksiMasuk) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: false}).
		Omit("Details", "Berjangka", "Supplier", "Penginput").
		Save(transaksi).Error
}

func (r *transaksiMasukRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.TransaksiMasukDetail{}, "id_transaksi = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.BerjangkaMasuk{}, "id_transaksi = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.TransaksiMasuk{}, "id = ?", id).Error
	})
}

func (r *transaksiMasukRepository) List(ctx context.Context, params *domainRepo.TransaksiFilterParams) ([]entity.TransaksiMasuk, int64, error) {
	var transaksi []entity.TransaksiMasuk
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.TransaksiMasuk{}).
		Scopes(DateRangeScope("tgl_transaksi", params.StartDate, params.EndDate))

	if params.Status != nil {
		query = query.Where("status_pembayaran = ?", *params.Status)
	}

	if params.Search != "" {
		query = query.Joins("LEFT JOIN suppliers ON suppliers.id = transaksi_masuk.id_supplier").
			Where("suppliers.nama ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.
		Preload("Supplier").
		Preload("Penginput").
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Berjangka", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("tgl_transaksi DESC, created_at DESC").
		Find(&transaksi).Error

	return transaksi, total, err
}

func (r *transaksiMasukRepository) ReplaceDetails(ctx context.Context, transaksiID uuid.UUID, details []entity.TransaksiMasukDetail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.TransaksiMasukDetail{}, "id_transaksi = ?", transaksiID).Error; err != nil {
			return err
		}
		if len(details) == 0 {
			return nil
		}
		for i := range details {
			details[i].ID = 0
			details[i].IDTransaksi = transaksiID
		}
		return tx.Create(&details).Error
	})
}

func (r *transaksiMasukRepository) UpdateDetail(ctx context.Context, detail *entity.TransaksiMasukDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

func (r *transaksiMasukRepository) UpdateBerjangka(ctx context.Context, rows []entity.BerjangkaMasuk) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Save(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *transaksiMasukRepository) ReplaceBerjangka(ctx context.Context, transaksiID uuid.UUID, rows []entity.BerjangkaMasuk) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.BerjangkaMasuk{}, "id_transaksi = ?", transaksiID).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].ID = 0
			rows[i].IDTransaksi = transaksiID
		}
		return tx.Create(&rows).Error
	})
}
