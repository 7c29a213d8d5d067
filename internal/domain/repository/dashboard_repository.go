package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SaldoResult is the cash position breakdown shown on the dashboard.
// Pemasukan counts money actually received (lunas totals plus berjangka
// payments), pengeluaran counts money actually paid out.
type SaldoResult struct {
	Pemasukan   int64 `json:"pemasukan"`
	Pengeluaran int64 `json:"pengeluaran"`
	Oprasional  int64 `json:"oprasional"`
	Saldo       int64 `json:"saldo"`
}

// TransaksiSummaryResult is a period total with its transaction count.
type TransaksiSummaryResult struct {
	Total  int64 `json:"total"`
	Jumlah int64 `json:"jumlah"`
}

// StokResult is the aggregate stock across all barang.
type StokResult struct {
	TotalYard   float64 `json:"total_yard"`
	TotalRol    int64   `json:"total_rol"`
	TotalBarang int64   `json:"total_barang"`
}

// PalingLakuResult is one row of the best-selling barang ranking, ordered
// by yards sold.
type PalingLakuResult struct {
	BarangID   uuid.UUID `json:"barang_id"`
	KodeBarang string    `json:"kode_barang"`
	NamaBarang string    `json:"nama_barang"`
	TotalYard  float64   `json:"total_yard"`
	TotalRol   int64     `json:"total_rol"`
}

// ChartPenjualanResult is one bucket of the sales chart. Periode is the
// bucket label: a date for harian, the week's first day for mingguan, a
// year-month for bulanan.
type ChartPenjualanResult struct {
	Periode string `json:"periode"`
	Total   int64  `json:"total"`
}

// JatuhTempoResult is one unsettled berjangka transaction coming due. Nama
// is the counterparty: pelanggan on the piutang side, supplier on the
// hutang side.
type JatuhTempoResult struct {
	TransaksiID    uuid.UUID `json:"transaksi_id"`
	Nama           string    `json:"nama"`
	TglJatuhTempo  time.Time `json:"tgl_jatuh_tempo"`
	TotalTransaksi int64     `json:"total_transaksi"`
	TotalDibayar   int64     `json:"total_dibayar"`
	SisaTagihan    int64     `json:"sisa_tagihan"`
}

// TopPelangganResult is one row of the customer ranking by sales value.
type TopPelangganResult struct {
	PelangganID     uuid.UUID `json:"pelanggan_id"`
	NamaPelanggan   string    `json:"nama_pelanggan"`
	TotalTransaksi  int64     `json:"total_transaksi"`
	JumlahTransaksi int64     `json:"jumlah_transaksi"`
}

// OprasionalBreakdownResult is the cost total of one biaya name in a window.
type OprasionalBreakdownResult struct {
	NamaBiaya string `json:"nama_biaya"`
	Total     int64  `json:"total"`
}

// DashboardRepository defines the aggregate queries behind the dashboard
type DashboardRepository interface {
	GetSaldo(ctx context.Context) (*SaldoResult, error)
	GetPenjualanBulanIni(ctx context.Context) (*TransaksiSummaryResult, error)
	GetPembelianBulanIni(ctx context.Context) (*TransaksiSummaryResult, error)
	GetTotalStok(ctx context.Context) (*StokResult, error)
	GetPalingLaku(ctx context.Context, limit int, start, end *time.Time) ([]PalingLakuResult, error)
	GetChartPenjualan(ctx context.Context, filter string) ([]ChartPenjualanResult, error)
	GetJatuhTempoPiutang(ctx context.Context, withinDays int) ([]JatuhTempoResult, error)
	GetJatuhTempoHutang(ctx context.Context, withinDays int) ([]JatuhTempoResult, error)
	CountPelanggan(ctx context.Context) (int64, error)
	GetTopPelanggan(ctx context.Context, limit int) ([]TopPelangganResult, error)
	GetOprasionalByNama(ctx context.Context, start, end time.Time) ([]OprasionalBreakdownResult, error)
}
