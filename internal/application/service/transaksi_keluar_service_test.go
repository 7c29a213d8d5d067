package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/internal/domain/enum"
	"github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/invoice"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

type fakeTransaksiKeluarRepo struct {
	store  map[uuid.UUID]*entity.TransaksiKeluar
	nextID uint
}

func newFakeTransaksiKeluarRepo() *fakeTransaksiKeluarRepo {
	return &fakeTransaksiKeluarRepo{store: make(map[uuid.UUID]*entity.TransaksiKeluar), nextID: 1}
}

func (r *fakeTransaksiKeluarRepo) assignRowIDs(t *entity.TransaksiKeluar) {
	for i := range t.Details {
		if t.Details[i].ID == 0 {
			t.Details[i].ID = r.nextID
			r.nextID++
		}
		t.Details[i].IDTransaksi = t.ID
	}
	for i := range t.Berjangka {
		if t.Berjangka[i].ID == 0 {
			t.Berjangka[i].ID = r.nextID
			r.nextID++
		}
		t.Berjangka[i].IDTransaksi = t.ID
	}
}

func (r *fakeTransaksiKeluarRepo) Create(_ context.Context, t *entity.TransaksiKeluar) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.assignRowIDs(t)
	stored := *t
	stored.Details = append([]entity.TransaksiKeluarDetail(nil), t.Details...)
	stored.Berjangka = append([]entity.BerjangkaKeluar(nil), t.Berjangka...)
	r.store[t.ID] = &stored
	return nil
}

func (r *fakeTransaksiKeluarRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.TransaksiKeluar, error) {
	stored, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	out := *stored
	out.Details = append([]entity.TransaksiKeluarDetail(nil), stored.Details...)
	out.Berjangka = append([]entity.BerjangkaKeluar(nil), stored.Berjangka...)
	return &out, nil
}

func (r *fakeTransaksiKeluarRepo) Update(_ context.Context, t *entity.TransaksiKeluar) error {
	stored, ok := r.store[t.ID]
	if !ok {
		return fmt.Errorf("transaksi not found")
	}
	details := stored.Details
	berjangka := stored.Berjangka
	updated := *t
	updated.Details = details
	updated.Berjangka = berjangka
	r.store[t.ID] = &updated
	return nil
}

func (r *fakeTransaksiKeluarRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store, id)
	return nil
}

func (r *fakeTransaksiKeluarRepo) List(_ context.Context, _ *repository.TransaksiFilterParams) ([]entity.TransaksiKeluar, int64, error) {
	var out []entity.TransaksiKeluar
	for _, t := range r.store {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTransaksiKeluarRepo) ReplaceDetails(_ context.Context, id uuid.UUID, details []entity.TransaksiKeluarDetail) error {
	stored, ok := r.store[id]
	if !ok {
		return fmt.Errorf("transaksi not found")
	}
	stored.Details = append([]entity.TransaksiKeluarDetail(nil), details...)
	for i := range stored.Details {
		stored.Details[i].ID = r.nextID
		r.nextID++
		stored.Details[i].IDTransaksi = id
	}
	return nil
}

func (r *fakeTransaksiKeluarRepo) UpdateDetail(_ context.Context, detail *entity.TransaksiKeluarDetail) error {
	stored, ok := r.store[detail.IDTransaksi]
	if !ok {
		return fmt.Errorf("transaksi not found")
	}
	for i := range stored.Details {
		if stored.Details[i].ID == detail.ID {
			stored.Details[i] = *detail
			return nil
		}
	}
	return fmt.Errorf("detail not found")
}

func (r *fakeTransaksiKeluarRepo) UpdateBerjangka(_ context.Context, rows []entity.BerjangkaKeluar) error {
	for _, row := range rows {
		stored, ok := r.store[row.IDTransaksi]
		if !ok {
			return fmt.Errorf("transaksi not found")
		}
		for i := range stored.Berjangka {
			if stored.Berjangka[i].ID == row.ID {
				stored.Berjangka[i] = row
			}
		}
	}
	return nil
}

func (r *fakeTransaksiKeluarRepo) ReplaceBerjangka(_ context.Context, id uuid.UUID, rows []entity.BerjangkaKeluar) error {
	stored, ok := r.store[id]
	if !ok {
		return fmt.Errorf("transaksi not found")
	}
	stored.Berjangka = append([]entity.BerjangkaKeluar(nil), rows...)
	for i := range stored.Berjangka {
		stored.Berjangka[i].ID = r.nextID
		r.nextID++
		stored.Berjangka[i].IDTransaksi = id
	}
	return nil
}

type fakeBarangRepo struct {
	store map[uuid.UUID]*entity.Barang
}

func newFakeBarangRepo(barang ...*entity.Barang) *fakeBarangRepo {
	r := &fakeBarangRepo{store: make(map[uuid.UUID]*entity.Barang)}
	for _, b := range barang {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		r.store[b.ID] = b
	}
	return r
}

func (r *fakeBarangRepo) Create(_ context.Context, b *entity.Barang) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.store[b.ID] = b
	return nil
}

func (r *fakeBarangRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Barang, error) {
	b, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

func (r *fakeBarangRepo) GetByKode(_ context.Context, kode string) (*entity.Barang, error) {
	for _, b := range r.store {
		if b.KdBarang == kode {
			out := *b
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeBarangRepo) Update(_ context.Context, b *entity.Barang) error {
	r.store[b.ID] = b
	return nil
}

func (r *fakeBarangRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store, id)
	return nil
}

func (r *fakeBarangRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Barang, int64, error) {
	var out []entity.Barang
	for _, b := range r.store {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBarangRepo) ListAll(_ context.Context) ([]entity.Barang, error) {
	var out []entity.Barang
	for _, b := range r.store {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBarangRepo) AdjustStockBatch(_ context.Context, adjustments []repository.StockAdjustment) error {
	for _, adj := range adjustments {
		b, ok := r.store[adj.BarangID]
		if !ok {
			return fmt.Errorf("barang not found")
		}
		if b.JmlYard+adj.DeltaYard < 0 {
			return fmt.Errorf("stok barang %s tidak mencukupi", b.NamaBarang)
		}
	}
	for _, adj := range adjustments {
		b := r.store[adj.BarangID]
		b.JmlYard += adj.DeltaYard
		b.JmlRol += adj.DeltaRol
	}
	return nil
}

func (r *fakeBarangRepo) TotalStock(_ context.Context) (float64, int64, error) {
	var yard float64
	var rol int64
	for _, b := range r.store {
		yard += b.JmlYard
		rol += int64(b.JmlRol)
	}
	return yard, rol, nil
}

type fakePelangganRepo struct {
	store map[uuid.UUID]*entity.Pelanggan
}

func newFakePelangganRepo(pelanggan ...*entity.Pelanggan) *fakePelangganRepo {
	r := &fakePelangganRepo{store: make(map[uuid.UUID]*entity.Pelanggan)}
	for _, p := range pelanggan {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.store[p.ID] = p
	}
	return r
}

func (r *fakePelangganRepo) Create(_ context.Context, p *entity.Pelanggan) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.store[p.ID] = p
	return nil
}

func (r *fakePelangganRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Pelanggan, error) {
	p, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (r *fakePelangganRepo) Update(_ context.Context, p *entity.Pelanggan) error {
	r.store[p.ID] = p
	return nil
}

func (r *fakePelangganRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store, id)
	return nil
}

func (r *fakePelangganRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Pelanggan, int64, error) {
	var out []entity.Pelanggan
	for _, p := range r.store {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePelangganRepo) ListAll(_ context.Context) ([]entity.Pelanggan, error) {
	var out []entity.Pelanggan
	for _, p := range r.store {
		out = append(out, *p)
	}
	return out, nil
}

func newKeluarFixture(t *testing.T) (*TransaksiKeluarService, *fakeTransaksiKeluarRepo, *fakeBarangRepo, *entity.Barang) {
	t.Helper()
	barang := &entity.Barang{KdBarang: "KB-TEST", NamaBarang: "Katun Jepang", JmlYard: 200, JmlRol: 8}
	barangRepo := newFakeBarangRepo(barang)
	transaksiRepo := newFakeTransaksiKeluarRepo()
	svc := NewTransaksiKeluarService(transaksiRepo, barangRepo, newFakePelangganRepo())
	return svc, transaksiRepo, barangRepo, barang
}

func detailInput(barangID uuid.UUID, yard float64, rol int, harga int64) TransaksiDetailInput {
	return TransaksiDetailInput{IDBarang: &barangID, JmlYard: yard, JmlRol: rol, HargaSatuan: harga}
}

func TestCreateTransaksiKeluarPersistsEngineTotal(t *testing.T) {
	svc, _, _, barang := newKeluarFixture(t)
	ctx := context.Background()

	transaksi, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 100, 4, 5000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		JmlDiscount:      10,
		TipePPN:          enum.TipeNilaiPersen,
		JmlPPN:           11,
		StatusPembayaran: enum.StatusPembayaranLunas,
	})
	require.NoError(t, err)

	// 500000 net, -10% discount, +11% PPN.
	assert.Equal(t, int64(499500), transaksi.TotalTransaksi)

	summary := invoice.Compute(transaksi.InvoiceItems(), transaksi.DiscountSpec(), transaksi.PPNSpec())
	assert.Equal(t, invoice.RoundRupiah(summary.GrandTotal), transaksi.TotalTransaksi)

	// Detail snapshots come from master data.
	require.Len(t, transaksi.Details, 1)
	assert.Equal(t, "KB-TEST", transaksi.Details[0].KodeBarang)
	assert.Equal(t, "Katun Jepang", transaksi.Details[0].NamaBarang)
}

func TestCreateTransaksiKeluarDecrementsStock(t *testing.T) {
	svc, _, barangRepo, barang := newKeluarFixture(t)
	ctx := context.Background()

	_, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 50, 2, 1000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		TipePPN:          enum.TipeNilaiPersen,
		StatusPembayaran: enum.StatusPembayaranLunas,
	})
	require.NoError(t, err)

	got, err := barangRepo.GetByID(ctx, barang.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got.JmlYard)
	assert.Equal(t, 6, got.JmlRol)
}

func TestCreateTransaksiKeluarInsufficientStock(t *testing.T) {
	svc, transaksiRepo, barangRepo, barang := newKeluarFixture(t)
	ctx := context.Background()

	_, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 500, 2, 1000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		TipePPN:          enum.TipeNilaiPersen,
		StatusPembayaran: enum.StatusPembayaranLunas,
	})
	require.Error(t, err)

	// Nothing persisted, stock untouched.
	assert.Empty(t, transaksiRepo.store)
	got, _ := barangRepo.GetByID(ctx, barang.ID)
	assert.Equal(t, 200.0, got.JmlYard)
}

func TestCreateTransaksiKeluarBerjangkaRequiresTenor(t *testing.T) {
	svc, _, _, barang := newKeluarFixture(t)
	ctx := context.Background()

	_, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 10, 1, 1000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		TipePPN:          enum.TipeNilaiPersen,
		StatusPembayaran: enum.StatusPembayaranBerjangka,
	})
	require.Error(t, err)
}

func TestCreateTransaksiKeluarBerjangka(t *testing.T) {
	svc, _, _, barang := newKeluarFixture(t)
	ctx := context.Background()

	tenor := []time.Time{
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
	}
	transaksi, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 100, 4, 1000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		TipePPN:          enum.TipeNilaiPersen,
		StatusPembayaran: enum.StatusPembayaranBerjangka,
		TanggalTenor:     tenor,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, transaksi.Tenor)
	require.Len(t, transaksi.Berjangka, 2)
	for _, row := range transaksi.Berjangka {
		assert.Zero(t, row.JmlBayar)
	}

	rincian := RincianKeluar(transaksi)
	assert.Equal(t, "berjangka_berjalan", rincian.State)
	assert.Equal(t, float64(transaksi.TotalTransaksi), rincian.Settlement.Remaining)
}

func TestApplyReturClampsAndRestoresStock(t *testing.T) {
	svc, _, barangRepo, barang := newKeluarFixture(t)
	ctx := context.Background()

	transaksi, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 100, 4, 5000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		TipePPN:          enum.TipeNilaiPersen,
		StatusPembayaran: enum.StatusPembayaranLunas,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(500000), transaksi.TotalTransaksi)

	// Ask for more than was sold; the retur clamps to the recorded quantity.
	updated, err := svc.ApplyRetur(ctx, &ReturInput{
		TransaksiID:  transaksi.ID,
		DetailID:     transaksi.Details[0].ID,
		JmlYardRetur: 150,
		JmlRolRetur:  10,
	})
	require.NoError(t, err)

	require.Len(t, updated.Details, 1)
	assert.Equal(t, 100.0, updated.Details[0].JmlYardRetur)
	assert.Equal(t, 4, updated.Details[0].JmlRolRetur)

	// Everything came back.
	got, _ := barangRepo.GetByID(ctx, barang.ID)
	assert.Equal(t, 200.0, got.JmlYard)
	assert.Equal(t, 8, got.JmlRol)

	// Full retur zeroes the persisted total.
	assert.Equal(t, int64(0), updated.TotalTransaksi)
}

func TestApplyReturPartialRefreshesTotal(t *testing.T) {
	svc, _, _, barang := newKeluarFixture(t)
	ctx := context.Background()

	transaksi, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 100, 4, 5000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		JmlDiscount:      10,
		TipePPN:          enum.TipeNilaiPersen,
		JmlPPN:           11,
		StatusPembayaran: enum.StatusPembayaranLunas,
	})
	require.NoError(t, err)

	updated, err := svc.ApplyRetur(ctx, &ReturInput{
		TransaksiID:  transaksi.ID,
		DetailID:     transaksi.Details[0].ID,
		JmlYardRetur: 10,
	})
	require.NoError(t, err)

	// 450000 net, -10% discount, +11% PPN = 449550.
	assert.Equal(t, int64(449550), updated.TotalTransaksi)
}

func TestUpdateCicilanRejectsLowering(t *testing.T) {
	svc, _, _, barang := newKeluarFixture(t)
	ctx := context.Background()

	transaksi, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 100, 4, 1000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		TipePPN:          enum.TipeNilaiPersen,
		StatusPembayaran: enum.StatusPembayaranBerjangka,
		TanggalTenor:     []time.Time{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	slotID := transaksi.Berjangka[0].ID
	transaksi, err = svc.UpdateCicilan(ctx, &UpdateCicilanInput{
		TransaksiID: transaksi.ID,
		Payments:    []CicilanPaymentInput{{ID: slotID, JmlBayar: 60000}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(60000), transaksi.Berjangka[0].JmlBayar)

	_, err = svc.UpdateCicilan(ctx, &UpdateCicilanInput{
		TransaksiID: transaksi.ID,
		Payments:    []CicilanPaymentInput{{ID: slotID, JmlBayar: 50000}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be lowered")
}

func TestUpdateCicilanFullPaymentSettles(t *testing.T) {
	svc, _, _, barang := newKeluarFixture(t)
	ctx := context.Background()

	transaksi, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 100, 4, 1000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		TipePPN:          enum.TipeNilaiPersen,
		StatusPembayaran: enum.StatusPembayaranBerjangka,
		TanggalTenor: []time.Time{
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(100000), transaksi.TotalTransaksi)

	transaksi, err = svc.UpdateCicilan(ctx, &UpdateCicilanInput{
		TransaksiID: transaksi.ID,
		Payments: []CicilanPaymentInput{
			{ID: transaksi.Berjangka[0].ID, JmlBayar: 40000},
			{ID: transaksi.Berjangka[1].ID, JmlBayar: 60000},
		},
	})
	require.NoError(t, err)

	rincian := RincianKeluar(transaksi)
	assert.Equal(t, "berjangka_lunas", rincian.State)
	assert.Equal(t, 0.0, rincian.Settlement.Remaining)
}

func TestDeleteTransaksiKeluarRestoresStock(t *testing.T) {
	svc, transaksiRepo, barangRepo, barang := newKeluarFixture(t)
	ctx := context.Background()

	transaksi, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 80, 3, 1000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		TipePPN:          enum.TipeNilaiPersen,
		StatusPembayaran: enum.StatusPembayaranLunas,
	})
	require.NoError(t, err)

	got, _ := barangRepo.GetByID(ctx, barang.ID)
	require.Equal(t, 120.0, got.JmlYard)

	require.NoError(t, svc.DeleteTransaksiKeluar(ctx, transaksi.ID))

	assert.Empty(t, transaksiRepo.store)
	got, _ = barangRepo.GetByID(ctx, barang.ID)
	assert.Equal(t, 200.0, got.JmlYard)
	assert.Equal(t, 8, got.JmlRol)
}

func TestUpdateTransaksiKeluarSwitchToLunasClearsBerjangka(t *testing.T) {
	svc, _, _, barang := newKeluarFixture(t)
	ctx := context.Background()

	transaksi, err := svc.CreateTransaksiKeluar(ctx, &CreateTransaksiKeluarInput{
		IDUser:           uuid.New(),
		TglTransaksi:     time.Now(),
		Details:          []TransaksiDetailInput{detailInput(barang.ID, 10, 1, 1000)},
		TipeDiscount:     enum.TipeNilaiPersen,
		TipePPN:          enum.TipeNilaiPersen,
		StatusPembayaran: enum.StatusPembayaranBerjangka,
		TanggalTenor:     []time.Time{time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	require.Len(t, transaksi.Berjangka, 1)

	lunas := enum.StatusPembayaranLunas
	updated, err := svc.UpdateTransaksiKeluar(ctx, &UpdateTransaksiKeluarInput{
		ID:               transaksi.ID,
		StatusPembayaran: &lunas,
	})
	require.NoError(t, err)

	assert.Empty(t, updated.Berjangka)
	assert.Zero(t, updated.Tenor)
	assert.Equal(t, "lunas", RincianKeluar(updated).State)
}
