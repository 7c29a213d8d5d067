package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/internal/domain/enum"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// TransaksiFilterParams contains filtering parameters shared by both
// transaction list queries.
type TransaksiFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.StatusPembayaran
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransaksiKeluarRepository defines the interface for outgoing
// transaction data operations
type TransaksiKeluarRepository interface {
	// Create persists the header with its details and berjangka rows in
	// one transaction.
	Create(ctx context.Context, transaksi *entity.TransaksiKeluar) error
	// GetByID loads the header with pelanggan, penginput, details and
	// berjangka rows in ascending id order.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TransaksiKeluar, error)
	Update(ctx context.Context, transaksi *entity.TransaksiKeluar) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TransaksiFilterParams) ([]entity.TransaksiKeluar, int64, error)
	// ReplaceDetails swaps the detail rows of a header in one transaction.
	ReplaceDetails(ctx context.Context, transaksiID uuid.UUID, details []entity.TransaksiKeluarDetail) error
	UpdateDetail(ctx context.Context, detail *entity.TransaksiKeluarDetail) error
	UpdateBerjangka(ctx context.Context, rows []entity.BerjangkaKeluar) error
	ReplaceBerjangka(ctx context.Context, transaksiID uuid.UUID, rows []entity.BerjangkaKeluar) error
}
