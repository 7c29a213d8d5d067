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

// TransaksiKeluarService handles outgoing (sale) transactions. All money
// figures are derived through pkg/invoice; the persisted total is always
// the engine's rounded grand total.
type TransaksiKeluarService struct {
	transaksiRepo repository.TransaksiKeluarRepository
	barangRepo    repository.BarangRepository
	pelangganRepo repository.PelangganRepository
}

// NewTransaksiKeluarService creates a new transaksi keluar service
func NewTransaksiKeluarService(
	transaksiRepo repository.TransaksiKeluarRepository,
	barangRepo repository.BarangRepository,
	pelangganRepo repository.PelangganRepository,
) *TransaksiKeluarService {
	return &TransaksiKeluarService{
		transaksiRepo: transaksiRepo,
		barangRepo:    barangRepo,
		pelangganRepo: pelangganRepo,
	}
}

// TransaksiDetailInput is one line item of a transaction input.
type TransaksiDetailInput struct {
	IDBarang    *uuid.UUID
	KodeBarang  string
	NamaBarang  string
	JmlYard     float64
	JmlRol      int
	HargaSatuan int64
}

// CreateTransaksiKeluarInput represents the create input
type CreateTransaksiKeluarInput struct {
	IDPelanggan      *uuid.UUID
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

// TransaksiRincian is the derived financial breakdown sent alongside a
// transaction.
type TransaksiRincian struct {
	Summary    invoice.Summary    `json:"summary"`
	Settlement invoice.Settlement `json:"settlement"`
	State      string             `json:"state"`
}

// RincianKeluar recomputes the breakdown of a loaded keluar transaction.
func RincianKeluar(t *entity.TransaksiKeluar) *TransaksiRincian {
	summary := invoice.Compute(t.InvoiceItems(), t.DiscountSpec(), t.PPNSpec())
	grand := float64(invoice.RoundRupiah(summary.GrandTotal))
	settlement := invoice.ReconcilePayments(t.StatusPembayaran.Invoice(), grand, t.PaymentAmounts())
	return &TransaksiRincian{
		Summary:    summary,
		Settlement: settlement,
		State:      string(invoice.State(t.StatusPembayaran.Invoice(), grand, t.PaymentAmounts())),
	}
}

func validateTransaksiInput(details []TransaksiDetailInput, tipeDiscount, tipePPN enum.TipeNilai, status enum.StatusPembayaran, tanggalTenor []time.Time) *apperror.AppError {
	if len(details) == 0 {
		return apperror.NewBadRequestError("Transaction requires at least one detail")
	}
	for _, d := range details {
		if d.JmlYard < 0 || d.JmlRol < 0 || d.HargaSatuan < 0 {
			return apperror.NewBadRequestError("Detail quantities and prices must not be negative")
		}
	}
	if !tipeDiscount.Valid() || !tipePPN.Valid() {
		return apperror.NewBadRequestError("Invalid tipe discount or tipe ppn")
	}
	if !status.Valid() {
		return apperror.NewBadRequestError("Invalid status pembayaran")
	}
	if status == enum.StatusPembayaranBerjangka && len(tanggalTenor) == 0 {
		return apperror.NewBadRequestError("Berjangka transaction requires tanggal tenor")
	}
	return nil
}

func (s *TransaksiKeluarService) buildDetails(ctx context.Context, inputs []TransaksiDetailInput) ([]entity.TransaksiKeluarDetail, error) {
	details := make([]entity.TransaksiKeluarDetail, 0, len(inputs))
	for _, in := range inputs {
		detail := entity.TransaksiKeluarDetail{
			IDBarang:    in.IDBarang,
			KodeBarang:  in.KodeBarang,
			NamaBarang:  in.NamaBarang,
			JmlYard:     in.JmlYard,
			JmlRol:      in.JmlRol,
			HargaSatuan: in.HargaSatuan,
		}

		// Snapshot kode and nama from master data when not supplied.
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

func buildBerjangkaKeluar(tanggalTenor []time.Time) []entity.BerjangkaKeluar {
	rows := make([]entity.BerjangkaKeluar, 0, len(tanggalTenor))
	for _, tgl := range tanggalTenor {
		rows = append(rows, entity.BerjangkaKeluar{TglJatuhTempo: tgl, JmlBayar: 0})
	}
	return rows
}

// stockDeltasKeluar converts detail rows into stock adjustments. Sign
// controls direction: -1 takes goods out of stock, +1 puts them back.
// Restores account for quantities already returned by the customer.
func stockDeltasKeluar(details []entity.TransaksiKeluarDetail, sign float64) []repository.StockAdjustment {
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

// CreateTransaksiKeluar records a sale, decrements stock and persists the
// engine-computed grand total.
func (s *TransaksiKeluarService) CreateTransaksiKeluar(ctx context.Context, input *CreateTransaksiKeluarInput) (*entity.TransaksiKeluar, error) {
	if err := validateTransaksiInput(input.Details, input.TipeDiscount, input.TipePPN, input.StatusPembayaran, input.TanggalTenor); err != nil {
		return nil, err
	}

	if input.IDPelanggan != nil {
		pelanggan, err := s.pelangganRepo.GetByID(ctx, *input.IDPelanggan)
		if err != nil {
			return nil, err
		}
		if pelanggan == nil {
			return nil, apperror.NewNotFoundError("Pelanggan")
		}
	}

	details, err := s.buildDetails(ctx, input.Details)
	if err != nil {
		return nil, err
	}

	transaksi := &entity.TransaksiKeluar{
		IDPelanggan:      input.IDPelanggan,
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
		transaksi.Berjangka = buildBerjangkaKeluar(input.TanggalTenor)
		transaksi.Tenor = len(input.TanggalTenor)
	}

	summary := invoice.Compute(transaksi.InvoiceItems(), transaksi.DiscountSpec(), transaksi.PPNSpec())
	transaksi.TotalTransaksi = invoice.RoundRupiah(summary.GrandTotal)

	// Take the goods out of stock first so an insufficient balance rejects
	// the sale before anything is written.
	if err := s.barangRepo.AdjustStockBatch(ctx, stockDeltasKeluar(details, -1)); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	if err := s.transaksiRepo.Create(ctx, transaksi); err != nil {
		// Put the stock back, the sale was not recorded.
		_ = s.barangRepo.AdjustStockBatch(ctx, stockDeltasKeluar(details, 1))
		return nil, err
	}

	return s.GetTransaksiKeluar(ctx, transaksi.ID)
}

// GetTransaksiKeluar retrieves a transaction with its relations
func (s *TransaksiKeluarService) GetTransaksiKeluar(ctx context.Context, id uuid.UUID) (*entity.TransaksiKeluar, error) {
	transaksi, err := s.transaksiRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaksi == nil {
		return nil, apperror.NewNotFoundError("Transaksi keluar")
	}
	return transaksi, nil
}

// ListTransaksiKeluarInput represents the list filter input
type ListTransaksiKeluarInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.StatusPembayaran
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListTransaksiKeluar lists transactions with filters
func (s *TransaksiKeluarService) ListTransaksiKeluar(ctx context.Context, input *ListTransaksiKeluarInput) (*pagination.PaginatedResult[entity.TransaksiKeluar], error) {
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

// UpdateTransaksiKeluarInput represents the update input. Details replace
// the existing rows wholesale, matching how the entry form resubmits.
type UpdateTransaksiKeluarInput struct {
	ID               uuid.UUID
	IDPelanggan      *uuid.UUID
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

// UpdateTransaksiKeluar rewrites a sale. Stock effects of the old rows are
// reversed before the new rows are applied.
func (s *TransaksiKeluarService) UpdateTransaksiKeluar(ctx context.Context, input *UpdateTransaksiKeluarInput) (*entity.TransaksiKeluar, error) {
	transaksi, err := s.transaksiRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if transaksi == nil {
		return nil, apperror.NewNotFoundError("Transaksi keluar")
	}

	if input.IDPelanggan != nil {
		pelanggan, err := s.pelangganRepo.GetByID(ctx, *input.IDPelanggan)
		if err != nil {
			return nil, err
		}
		if pelanggan == nil {
			return nil, apperror.NewNotFoundError("Pelanggan")
		}
		transaksi.IDPelanggan = input.IDPelanggan
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

		// Reverse the old rows, then take out the new ones.
		if err := s.barangRepo.AdjustStockBatch(ctx, stockDeltasKeluar(transaksi.Details, 1)); err != nil {
			return nil, err
		}
		if err := s.barangRepo.AdjustStockBatch(ctx, stockDeltasKeluar(newDetails, -1)); err != nil {
			_ = s.barangRepo.AdjustStockBatch(ctx, stockDeltasKeluar(transaksi.Details, -1))
			return nil, apperror.NewBadRequestError(err.Error())
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
		rows := buildBerjangkaKeluar(input.TanggalTenor)
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

	return s.GetTransaksiKeluar(ctx, transaksi.ID)
}

// DeleteTransaksiKeluar deletes a sale and restores the stock it consumed
func (s *TransaksiKeluarService) DeleteTransaksiKeluar(ctx context.Context, id uuid.UUID) error {
	transaksi, err := s.transaksiRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if transaksi == nil {
		return apperror.NewNotFoundError("Transaksi keluar")
	}

	if err := s.barangRepo.AdjustStockBatch(ctx, stockDeltasKeluar(transaksi.Details, 1)); err != nil {
		return err
	}

	return s.transaksiRepo.Delete(ctx, id)
}

// ReturInput represents a per-detail return. Values are absolute, not
// incremental, and get clamped to the recorded quantities.
type ReturInput struct {
	TransaksiID  uuid.UUID
	DetailID     uint
	JmlYardRetur float64
	JmlRolRetur  int
}

// ApplyRetur records returned goods on one detail row, restores stock for
// the newly returned quantities and refreshes the persisted total.
func (s *TransaksiKeluarService) ApplyRetur(ctx context.Context, input *ReturInput) (*entity.TransaksiKeluar, error) {
	transaksi, err := s.transaksiRepo.GetByID(ctx, input.TransaksiID)
	if err != nil {
		return nil, err
	}
	if transaksi == nil {
		return nil, apperror.NewNotFoundError("Transaksi keluar")
	}

	var detail *entity.TransaksiKeluarDetail
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

	// Returned goods go back into stock.
	if detail.IDBarang != nil && (deltaYard != 0 || deltaRol != 0) {
		adj := []repository.StockAdjustment{{
			BarangID:  *detail.IDBarang,
			DeltaYard: deltaYard,
			DeltaRol:  deltaRol,
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

	return s.GetTransaksiKeluar(ctx, transaksi.ID)
}

// CicilanPaymentInput is one installment slot update.
type CicilanPaymentInput struct {
	ID       uint
	JmlBayar int64
}

// UpdateCicilanInput represents the installment payment update input
type UpdateCicilanInput struct {
	TransaksiID uuid.UUID
	Payments    []CicilanPaymentInput
}

// UpdateCicilan records installment payments. Recorded amounts only move
// upward; lowering a slot is rejected.
func (s *TransaksiKeluarService) UpdateCicilan(ctx context.Context, input *UpdateCicilanInput) (*entity.TransaksiKeluar, error) {
	transaksi, err := s.transaksiRepo.GetByID(ctx, input.TransaksiID)
	if err != nil {
		return nil, err
	}
	if transaksi == nil {
		return nil, apperror.NewNotFoundError("Transaksi keluar")
	}
	if transaksi.StatusPembayaran != enum.StatusPembayaranBerjangka {
		return nil, apperror.NewBadRequestError("Transaction is not berjangka")
	}

	byID := make(map[uint]*entity.BerjangkaKeluar, len(transaksi.Berjangka))
	for i := range transaksi.Berjangka {
		byID[transaksi.Berjangka[i].ID] = &transaksi.Berjangka[i]
	}

	var updated []entity.BerjangkaKeluar
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

	return s.GetTransaksiKeluar(ctx, transaksi.ID)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
