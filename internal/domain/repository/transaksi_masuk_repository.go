package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
)

// TransaksiMasukRepository defines the interface for incoming
// transaction data operations
type TransaksiMasukRepository interface {
	Create(ctx context.Context, transaksi *entity.TransaksiMasuk) error
	// GetByID loads the header with supplier, penginput, details and
	// berjangka rows in ascending id order.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TransaksiMasuk, error)
	Update(ctx context.Context, transaksi *entity.TransaksiMasuk) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TransaksiFilterParams) ([]entity.TransaksiMasuk, int64, error)
	ReplaceDetails(ctx context.Context, transaksiID uuid.UUID, details []entity.TransaksiMasukDetail) error
	UpdateDetail(ctx context.Context, detail *entity.TransaksiMasukDetail) error
	UpdateBerjangka(ctx context.Context, rows []entity.BerjangkaMasuk) error
	ReplaceBerjangka(ctx context.Context, transaksiID uuid.UUID, rows []entity.BerjangkaMasuk) error
}
