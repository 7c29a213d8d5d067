package service

import (
	"context"
	"time"

	"github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/apperror"
)

// DashboardService aggregates the figures shown on the landing page
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// GetSaldo returns the cash position breakdown
func (s *DashboardService) GetSaldo(ctx context.Context) (*repository.SaldoResult, error) {
	return s.dashboardRepo.GetSaldo(ctx)
}

// GetTransaksiPenjualan returns this month's sales summary
func (s *DashboardService) GetTransaksiPenjualan(ctx context.Context) (*repository.TransaksiSummaryResult, error) {
	return s.dashboardRepo.GetPenjualanBulanIni(ctx)
}

// GetTransaksiPembelian returns this month's purchase summary
func (s *DashboardService) GetTransaksiPembelian(ctx context.Context) (*repository.TransaksiSummaryResult, error) {
	return s.dashboardRepo.GetPembelianBulanIni(ctx)
}

// GetTotalStokBarang returns the aggregate stock position
func (s *DashboardService) GetTotalStokBarang(ctx context.Context) (*repository.StokResult, error) {
	return s.dashboardRepo.GetTotalStok(ctx)
}

// GetPalingLaku returns the best-selling barang ranking, optionally
// restricted to a date window
func (s *DashboardService) GetPalingLaku(ctx context.Context, limit int, start, end *time.Time) ([]repository.PalingLakuResult, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.dashboardRepo.GetPalingLaku(ctx, limit, start, end)
}

// GetChartPenjualan returns bucketed sales totals for the requested
// granularity (harian, mingguan or bulanan)
func (s *DashboardService) GetChartPenjualan(ctx context.Context, filter string) ([]repository.ChartPenjualanResult, error) {
	switch filter {
	case "":
		filter = "bulanan"
	case "harian", "mingguan", "bulanan":
	default:
		return nil, apperror.NewBadRequestError("filter must be harian, mingguan or bulanan")
	}
	return s.dashboardRepo.GetChartPenjualan(ctx, filter)
}

// GetJatuhTempo returns unsettled berjangka transactions coming due.
// Jenis selects the side: piutang for sales, hutang for purchases.
func (s *DashboardService) GetJatuhTempo(ctx context.Context, jenis string, withinDays int) ([]repository.JatuhTempoResult, error) {
	if withinDays <= 0 {
		withinDays = 30
	}
	switch jenis {
	case "", "piutang":
		return s.dashboardRepo.GetJatuhTempoPiutang(ctx, withinDays)
	case "hutang":
		return s.dashboardRepo.GetJatuhTempoHutang(ctx, withinDays)
	default:
		return nil, apperror.NewBadRequestError("jenis must be piutang or hutang")
	}
}

// DataPelanggan bundles the customer count with the top-customer ranking.
type DataPelanggan struct {
	TotalPelanggan int64                           `json:"total_pelanggan"`
	TopPelanggan   []repository.TopPelangganResult `json:"top_pelanggan"`
}

// GetDataPelanggan returns the customer count and ranking by sales value
func (s *DashboardService) GetDataPelanggan(ctx context.Context, limit int) (*DataPelanggan, error) {
	if limit <= 0 {
		limit = 5
	}

	count, err := s.dashboardRepo.CountPelanggan(ctx)
	if err != nil {
		return nil, err
	}

	top, err := s.dashboardRepo.GetTopPelanggan(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &DataPelanggan{TotalPelanggan: count, TopPelanggan: top}, nil
}

// DataOprasional bundles the period cost total with its per-name breakdown.
type DataOprasional struct {
	TotalOprasional int64                                  `json:"total_oprasional"`
	Rincian         []repository.OprasionalBreakdownResult `json:"rincian"`
}

// GetDataOprasional returns operational costs grouped by biaya name.
// Without an explicit window it covers the current month.
func (s *DashboardService) GetDataOprasional(ctx context.Context, start, end *time.Time) (*DataOprasional, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)
	if start != nil {
		from = *start
	}
	if end != nil {
		to = end.AddDate(0, 0, 1)
	}

	rincian, err := s.dashboardRepo.GetOprasionalByNama(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, row := range rincian {
		total += row.Total
	}

	return &DataOprasional{TotalOprasional: total, Rincian: rincian}, nil
}
