package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	domainRepo "github.com/andrisetiawan/tokokain-api/internal/domain/repository"
)

type transaksiKeluarRepository struct {
	db *gorm.DB
}

// NewTransaksiKeluarRepository creates a new transaksi keluar repository
func NewTransaksiKeluarRepository(db *gorm.DB) domainRepo.TransaksiKeluarRepository {
	return &transaksiKeluarRepository{db: db}
}

func (r *transaksiKeluarRepository) Create(ctx context.Context, transaksi *entity.TransaksiKeluar) error {
	return r.db.WithContext(ctx).Create(transaksi).Error
}

func (r *transaksiKeluarRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TransaksiKeluar, error) {
	var transaksi entity.TransaksiKeluar
	err := r.db.WithContext(ctx).
		Preload("Pelanggan").
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

func (r *transaksiKeluarRepository) Update(ctx context.Context, transaksi *entity.TransaksiKeluar) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: false}).
		Omit("Details", "Berjangka", "Pelanggan", "Penginput").
		Save(transaksi).Error
}

func (r *transaksiKeluarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.TransaksiKeluarDetail{}, "id_transaksi = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.BerjangkaKeluar{}, "id_transaksi = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.TransaksiKeluar{}, "id = ?", id).Error
	})
}

func (r *transaksiKeluarRepository) List(ctx context.Context, params *domainRepo.TransaksiFilterParams) ([]entity.TransaksiKeluar, int64, error) {
	var transaksi []entity.TransaksiKeluar
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.TransaksiKeluar{}).
		Scopes(DateRangeScope("tgl_transaksi", params.StartDate, params.EndDate))

	if params.Status != nil {
		query = query.Where("status_pembayaran = ?", *params.Status)
	}

	if params.Search != "" {
		query = query.Joins("LEFT JOIN pelanggan ON pelanggan.id = transaksi_keluar.id_pelanggan").
			Where("pelanggan.nama ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.
		Preload("Pelanggan").
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

func (r *transaksiKeluarRepository) ReplaceDetails(ctx context.Context, transaksiID uuid.UUID, details []entity.TransaksiKeluarDetail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.TransaksiKeluarDetail{}, "id_transaksi = ?", transaksiID).Error; err != nil {
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

func (r *transaksiKeluarRepository) UpdateDetail(ctx context.Context, detail *entity.TransaksiKeluarDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

func (r *transaksiKeluarRepository) UpdateBerjangka(ctx context.Context, rows []entity.BerjangkaKeluar) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Save(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *transaksiKeluarRepository) ReplaceBerjangka(ctx context.Context, transaksiID uuid.UUID, rows []entity.BerjangkaKeluar) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.BerjangkaKeluar{}, "id_transaksi = ?", transaksiID).Error; err != nil {
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
