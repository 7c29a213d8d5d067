package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/internal/domain/enum"
	"github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/apperror"
	"github.com/andrisetiawan/tokokain-api/pkg/invoice"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// TransaksiMasukService handles incoming (purchase) transactions. The
// stock directions mirror the keluar side: a purchase adds goods, a retur
// to the supplier takes them back out.
type TransaksiMasukService struct {
	transaksiRepo repository.TransaksiMasukRepository
	barangRepo    repository.BarangRepository
	supplierRepo  repository.SupplierRepository
}

// NewTransaksiMasukService creates a new transaksi masuk service
func NewTransaksiMasukService(
	transaksiRepo repository.TransaksiMasukRepository,
	barangRepo repository.BarangRepository,
	supplierRepo repository.SupplierRepository,
) *TransaksiMasukService {
	return &TransaksiMasukService{
		transaksiRepo: transaksiRepo,
		barangRepo:    barangRepo,
		supplierRepo:  supplierRepo,
	}
}

// CreateTransaksiMasukInput represents the create input
type CreateTransaksiMasukInput struct {
	IDSupplier       *uuid.UUID
	IDUser           uuid.UUID
	TglTransaksi     time.Time
	Details          []TransaksiDetailInput
	TipeDiscount     enum.TipeNilai
	JmlDiscount      float64
	TipePPN          enum.TipeNilai
	JmlPPN           float64
	Catatan          *string
	StatusPembayaran enum.StatusPembayaran
	TanggalTenor     []time.Time
}

// RincianMasuk recomputes the breakdown of a loaded masuk transaction.
func RincianMasuk(t *entity.TransaksiMasuk) *TransaksiRincian {
	summary := invoice.Compute(t.InvoiceItems(), t.DiscountSpec(), t.PPNSpec())
	grand := float64(invoice.RoundRupiah(summary.GrandTotal))
	settlement := invoice.ReconcilePayments(t.StatusPembayaran.Invoice(), grand, t.PaymentAmounts())
	return &TransaksiRincian{
		Summary:    summary,
		Settlement: settlement,
		State:      string(invoice.State(t.StatusPembayaran.Invoice(), grand, t.PaymentAmounts())),
	}
}

func (s *TransaksiMasukService) buildDetails(ctx context.Context, inputs []TransaksiDetailInput) ([]entity.TransaksiMasukDetail, error) {
	details := make([]entity.TransaksiMasukDetail, 0, len(inputs))
	for _, in := range inputs {
		detail := entity.TransaksiMasukDetail{
			IDBarang:    in.IDBarang,
			KodeBarang:  in.KodeBarang,
			NamaBarang:  in.NamaBarang,
			JmlYard:     in.JmlYard,
			JmlRol:      in.JmlRol,
			HargaSatuan: in.HargaSatuan,
		}

		if in.IDBarang != nil && (in.KodeBarang == "" || in.NamaBarang == "") {
			barang, err := s.barangRepo.GetByID(ctx, *in.IDBarang)
			if err != nil {
				return nil, err
			}
			if barang == nil {
				return nil, apperror.NewNotFoundError("Barang")
			}
			if detail.KodeBarang == "" {
				detail.KodeBarang = barang.KdBarang
			}
			if detail.NamaBarang == "" {
				detail.NamaBarang = barang.NamaBarang
			}
		}

		details = append(details, detail)
	}
	return details, nil
}

func buildBerjangkaMasuk(tanggalTenor []time.Time) []entity.BerjangkaMasuk {
	rows := make([]entity.BerjangkaMasuk, 0, len(tanggalTenor))
	for _, tgl := range tanggalTenor {
		rows = append(rows, entity.BerjangkaMasuk{TglJatuhTempo: tgl, JmlBayar: 0})
	}
	return rows
}

func stockDeltasMasuk(details []entity.TransaksiMasukDetail, sign float64) []repository.StockAdjustment {
	var deltas []repository.StockAdjustment
	for _, d := range details {
		if d.IDBarang == nil {
			continue
		}
		yard := d.JmlYard - d.JmlYardRetur
		rol := d.JmlRol - d.JmlRolRetur
		deltas = append(deltas, repository.StockAdjustment{
			BarangID:  *d.IDBarang,
			DeltaYard: sign * yard,
			DeltaRol:  int(sign) * rol,
		})
	}
	return deltas
}

// CreateTransaksiMasuk records a purchase, adds the goods to stock and
// persists the engine-computed grand total.
func (s *TransaksiMasukService) CreateTransaksiMasuk(ctx context.Context, input *CreateTransaksiMasukInput) (*entity.TransaksiMasuk, error) {
	if err := validateTransaksiInput(input.Details, input.TipeDiscount, input.TipePPN, input.StatusPembayaran, input.TanggalTenor); err != nil {
		return nil, err
	}

	if input.IDSupplier != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.IDSupplier)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	details, err := s.buildDetails(ctx, input.Details)
	if err != nil {
		return nil, err
	}

	transaksi := &entity.TransaksiMasuk{
		IDSupplier:       input.IDSupplier,
		IDUser:           input.IDUser,
		TglTransaksi:     input.TglTransaksi,
		TipeDiscount:     input.TipeDiscount,
		JmlDiscount:      input.JmlDiscount,
		TipePPN:          input.TipePPN,
		JmlPPN:           input.JmlPPN,
		Catatan:          input.Catatan,
		StatusPembayaran: input.StatusPembayaran,
		Details:          details,
	}

	if input.StatusPembayaran == enum.StatusPembayaranBerjangka {
		transaksi.Berjangka = buildBerjangkaMasuk(input.TanggalTenor)
		transaksi.Tenor = len(input.TanggalTenor)
	}

	summary := invoice.Compute(transaksi.InvoiceItems(), transaksi.DiscountSpec(), transaksi.PPNSpec())
	transaksi.TotalTransaksi = invoice.RoundRupiah(summary.GrandTotal)

	if err := s.transaksiRepo.Create(ctx, transaksi); err != nil {
		return nil, err
	}

	if err := s.barangRepo.AdjustStockBatch(ctx, stockDeltasMasuk(details, 1)); err != nil {
		return nil, err
	}

	return s.GetTransaksiMasuk(ctx, transaksi.ID)
}

// GetTransaksiMasuk retrieves a transaction with its relations
func (s *TransaksiMasukService) GetTransaksiMasuk(ctx context.Context, id uuid.UUID) (*entity.TransaksiMasuk, error) {
	transaksi, err := s.transaksiRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaksi == nil {
		return nil, apperror.NewNotFoundError("Transaksi masuk")
	}
	return transaksi, nil
}

// ListTransaksiMasukInput represents the list filter input
type ListTransaksiMasukInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.StatusPembayaran
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListTransaksiMasuk lists transactions with filters
func (s *TransaksiMasukService) ListTransaksiMasuk(ctx context.Context, input *ListTransaksiMasukInput) (*pagination.PaginatedResult[entity.TransaksiMasuk], error) {
	params := &repository.TransaksiFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	transaksi, total, err := s.transaksiRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(transaksi, pag), nil
}

// UpdateTransaksiMasukInput represents the update input
type UpdateTransaksiMasukInput struct {
	ID               uuid.UUID
	IDSupplier       *uuid.UUID
	TglTransaksi     *time.Time
	Details          []TransaksiDetailInput
	TipeDiscount     *enum.TipeNilai
	JmlDiscount      *float64
	TipePPN          *enum.TipeNilai
	JmlPPN           *float64
	Catatan          *string
	StatusPembayaran *enum.StatusPembayaran
	TanggalTenor     []time.Time
}

// UpdateTransaksiMasuk rewrites a purchase, reversing and reapplying its
// stock effect when the details change.
func (s *TransaksiMasukService) UpdateTransaksiMasuk(ctx context.Context, input *UpdateTransaksiMasukInput) (*entity.TransaksiMasuk, error) {
	transaksi, err := s.transaksiRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if transaksi == nil {
		return nil, apperror.NewNotFoundError("Transaksi masuk")
	}

	if input.IDSupplier != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.IDSupplier)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
		transaksi.IDSupplier = input.IDSupplier
	}
	if input.TglTransaksi != nil {
		transaksi.TglTransaksi = *input.TglTransaksi
	}
	if input.TipeDiscount != nil {
		if !input.TipeDiscount.Valid() {
			return nil, apperror.NewBadRequestError("Invalid tipe discount")
		}
		transaksi.TipeDiscount = *input.TipeDiscount
	}
	if input.JmlDiscount != nil {
		transaksi.JmlDiscount = *input.JmlDiscount
	}
	if input.TipePPN != nil {
		if !input.TipePPN.Valid() {
			return nil, apperror.NewBadRequestError("Invalid tipe ppn")
		}
		transaksi.TipePPN = *input.TipePPN
	}
	if input.JmlPPN != nil {
		transaksi.JmlPPN = *input.JmlPPN
	}
	if input.Catatan != nil {
		transaksi.Catatan = input.Catatan
	}

	if len(input.Details) > 0 {
		newDetails, err := s.buildDetails(ctx, input.Details)
		if err != nil {
			return nil, err
		}

		// Reverse the goods the old rows brought in, then add the new ones.
		if err := s.barangRepo.AdjustStockBatch(ctx, stockDeltasMasuk(transaksi.Details, -1)); err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		if err := s.barangRepo.AdjustStockBatch(ctx, stockDeltasMasuk(newDetails, 1)); err != nil {
			_ = s.barangRepo.AdjustStockBatch(ctx, stockDeltasMasuk(transaksi.Details, 1))
			return nil, err
		}

		if err := s.transaksiRepo.ReplaceDetails(ctx, transaksi.ID, newDetails); err != nil {
			return nil, err
		}
		transaksi.Details = newDetails
	}

	if input.StatusPembayaran != nil {
		if !input.StatusPembayaran.Valid() {
			return nil, apperror.NewBadRequestError("Invalid status pembayaran")
		}
		transaksi.StatusPembayaran = *input.StatusPembayaran
	}

	if transaksi.StatusPembayaran == enum.StatusPembayaranBerjangka && len(input.TanggalTenor) > 0 {
		rows := buildBerjangkaMasuk(input.TanggalTenor)
		if err := s.transaksiRepo.ReplaceBerjangka(ctx, transaksi.ID, rows); err != nil {
			return nil, err
		}
		transaksi.Berjangka = rows
		transaksi.Tenor = len(rows)
	} else if transaksi.StatusPembayaran == enum.StatusPembayaranLunas && len(transaksi.Berjangka) > 0 {
		if err := s.transaksiRepo.ReplaceBerjangka(ctx, transaksi.ID, nil); err != nil {
			return nil, err
		}
		transaksi.Berjangka = nil
		transaksi.Tenor = 0
	}

	summary := invoice.Compute(transaksi.InvoiceItems(), transaksi.DiscountSpec(), transaksi.PPNSpec())
	transaksi.TotalTransaksi = invoice.RoundRupiah(summary.GrandTotal)

	if err := s.transaksiRepo.Update(ctx, transaksi); err != nil {
		return nil, err
	}

	return s.GetTransaksiMasuk(ctx, transaksi.ID)
}

// DeleteTransaksiMasuk deletes a purchase and removes the stock it added
func (s *TransaksiMasukService) DeleteTransaksiMasuk(ctx context.Context, id uuid.UUID) error {
	transaksi, err := s.transaksiRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if transaksi == nil {
		return apperror.NewNotFoundError("Transaksi masuk")
	}

	if err := s.barangRepo.AdjustStockBatch(ctx, stockDeltasMasuk(transaksi.Details, -1)); err != nil {
		return apperror.NewBadRequestError(err.Error())
	}

	return s.transaksiRepo.Delete(ctx, id)
}

// ApplyRetur records goods sent back to the supplier on one detail row,
// takes them out of stock and refreshes the persisted total.
func (s *TransaksiMasukService) ApplyRetur(ctx context.Context, input *ReturInput) (*entity.TransaksiMasuk, error) {
	transaksi, err := s.transaksiRepo.GetByID(ctx, input.TransaksiID)
	if err != nil {
		return nil, err
	}
	if transaksi == nil {
		return nil, apperror.NewNotFoundError("Transaksi masuk")
	}

	var detail *entity.TransaksiMasukDetail
	for i := range transaksi.Details {
		if transaksi.Details[i].ID == input.DetailID {
			detail = &transaksi.Details[i]
			break
		}
	}
	if detail == nil {
		return nil, apperror.NewNotFoundError("Detail transaksi")
	}

	newYardRetur := clampFloat(input.JmlYardRetur, 0, detail.JmlYard)
	newRolRetur := clampInt(input.JmlRolRetur, 0, detail.JmlRol)

	deltaYard := newYardRetur - detail.JmlYardRetur
	deltaRol := newRolRetur - detail.JmlRolRetur

	// Goods returned to the supplier leave the stock again.
	if detail.IDBarang != nil && (deltaYard != 0 || deltaRol != 0) {
		adj := []repository.StockAdjustment{{
			BarangID:  *detail.IDBarang,
			DeltaYard: -deltaYard,
			DeltaRol:  -deltaRol,
		}}
		if err := s.barangRepo.AdjustStockBatch(ctx, adj); err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
	}

	detail.JmlYardRetur = newYardRetur
	detail.JmlRolRetur = newRolRetur
	if err := s.transaksiRepo.UpdateDetail(ctx, detail); err != nil {
		return nil, err
	}

	summary := invoice.Compute(transaksi.InvoiceItems(), transaksi.DiscountSpec(), transaksi.PPNSpec())
	transaksi.TotalTransaksi = invoice.RoundRupiah(summary.GrandTotal)
	if err := s.transaksiRepo.Update(ctx, transaksi); err != nil {
		return nil, err
	}

	return s.GetTransaksiMasuk(ctx, transaksi.ID)
}

// UpdateCicilan records installment payments to the supplier. Amounts only
// move upward.
func (s *TransaksiMasukService) UpdateCicilan(ctx context.Context, input *UpdateCicilanInput) (*entity.TransaksiMasuk, error) {
	transaksi, err := s.transaksiRepo.GetByID(ctx, input.TransaksiID)
	if err != nil {
		return nil, err
	}
	if transaksi == nil {
		return nil, apperror.NewNotFoundError("Transaksi masuk")
	}
	if transaksi.StatusPembayaran != enum.StatusPembayaranBerjangka {
		return nil, apperror.NewBadRequestError("Transaction is not berjangka")
	}

	byID := make(map[uint]*entity.BerjangkaMasuk, len(transaksi.Berjangka))
	for i := range transaksi.Berjangka {
		byID[transaksi.Berjangka[i].ID] = &transaksi.Berjangka[i]
	}

	var updated []entity.BerjangkaMasuk
	for _, p := range input.Payments {
		row, ok := byID[p.ID]
		if !ok {
			return nil, apperror.NewNotFoundError("Cicilan")
		}
		if p.JmlBayar < row.JmlBayar {
			return nil, apperror.NewBadRequestError("Jml bayar cannot be lowered")
		}
		if p.JmlBayar != row.JmlBayar {
			row.JmlBayar = p.JmlBayar
			updated = append(updated, *row)
		}
	}

	if len(updated) > 0 {
		if err := s.transaksiRepo.UpdateBerjangka(ctx, updated); err != nil {
			return nil, err
		}
	}

	return s.GetTransaksiMasuk(ctx, transaksi.ID)
}
