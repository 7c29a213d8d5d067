package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	domainRepo "github.com/andrisetiawan/tokokain-api/internal/domain/repository"
)

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) domainRepo.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetSaldo counts lunas transactions at their full total and berjangka
// transactions at the sum of recorded payments, on both sides.
func (r *dashboardRepository) GetSaldo(ctx context.Context) (*domainRepo.SaldoResult, error) {
	var result domainRepo.SaldoResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN t.status_pembayaran = '0' THEN t.total_transaksi ELSE b.dibayar END), 0)
		FROM transaksi_keluar t
		LEFT JOIN (
			SELECT id_transaksi, COALESCE(SUM(jml_bayar), 0) AS dibayar
			FROM berjangka_keluar
			WHERE deleted_at IS NULL
			GROUP BY id_transaksi
		) b ON b.id_transaksi = t.id
		WHERE t.deleted_at IS NULL
	`).Scan(&result.Pemasukan).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN t.status_pembayaran = '0' THEN t.total_transaksi ELSE b.dibayar END), 0)
		FROM transaksi_masuk t
		LEFT JOIN (
			SELECT id_transaksi, COALESCE(SUM(jml_bayar), 0) AS dibayar
			FROM berjangka_masuk
			WHERE deleted_at IS NULL
			GROUP BY id_transaksi
		) b ON b.id_transaksi = t.id
		WHERE t.deleted_at IS NULL
	`).Scan(&result.Pengeluaran).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(jml_biaya), 0)
		FROM oprasional
		WHERE deleted_at IS NULL
	`).Scan(&result.Oprasional).Error
	if err != nil {
		return nil, err
	}

	result.Saldo = result.Pemasukan - result.Pengeluaran - result.Oprasional
	return &result, nil
}

func (r *dashboardRepository) GetPenjualanBulanIni(ctx context.Context) (*domainRepo.TransaksiSummaryResult, error) {
	return r.monthSummary(ctx, "transaksi_keluar")
}

func (r *dashboardRepository) GetPembelianBulanIni(ctx context.Context) (*domainRepo.TransaksiSummaryResult, error) {
	return r.monthSummary(ctx, "transaksi_masuk")
}

func (r *dashboardRepository) monthSummary(ctx context.Context, table string) (*domainRepo.TransaksiSummaryResult, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var result domainRepo.TransaksiSummaryResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_transaksi), 0) AS total, COUNT(*) AS jumlah
		FROM `+table+`
		WHERE deleted_at IS NULL AND tgl_transaksi >= ?
	`, startOfMonth).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *dashboardRepository) GetTotalStok(ctx context.Context) (*domainRepo.StokResult, error) {
	var result domainRepo.StokResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(jml_yard), 0) AS total_yard,
			COALESCE(SUM(jml_rol), 0) AS total_rol,
			COUNT(*) AS total_barang
		FROM barang
		WHERE deleted_at IS NULL
	`).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetPalingLaku ranks barang by net yards sold, retur quantities deducted.
// The optional window filters on the transaction date.
func (r *dashboardRepository) GetPalingLaku(ctx context.Context, limit int, start, end *time.Time) ([]domainRepo.PalingLakuResult, error) {
	var results []domainRepo.PalingLakuResult

	query := `
		SELECT
			b.id AS barang_id,
			b.kd_barang AS kode_barang,
			b.nama_barang AS nama_barang,
			COALESCE(SUM(d.jml_yard - d.jml_yard_retur), 0) AS total_yard,
			COALESCE(SUM(d.jml_rol - d.jml_rol_retur), 0) AS total_rol
		FROM transaksi_keluar_details d
		JOIN barang b ON b.id = d.id_barang
		JOIN transaksi_keluar t ON t.id = d.id_transaksi
		WHERE d.deleted_at IS NULL AND t.deleted_at IS NULL`
	args := []interface{}{}
	if start != nil {
		query += ` AND t.tgl_transaksi >= ?`
		args = append(args, *start)
	}
	if end != nil {
		query += ` AND t.tgl_transaksi < ?`
		args = append(args, end.AddDate(0, 0, 1))
	}
	query += `
		GROUP BY b.id, b.kd_barang, b.nama_barang
		ORDER BY total_yard DESC
		LIMIT ?`
	args = append(args, limit)

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

// GetChartPenjualan buckets sales totals by day, ISO week or month. Harian
// covers the last 30 days, mingguan the last 12 weeks, bulanan the current
// year with all twelve months present.
func (r *dashboardRepository) GetChartPenjualan(ctx context.Context, filter string) ([]domainRepo.ChartPenjualanResult, error) {
	var (
		label string
		since time.Time
		now   = time.Now()
	)

	switch filter {
	case "harian":
		label = `to_char(date_trunc('day', tgl_transaksi), 'YYYY-MM-DD')`
		since = now.AddDate(0, 0, -30)
	case "mingguan":
		label = `to_char(date_trunc('week', tgl_transaksi), 'YYYY-MM-DD')`
		since = now.AddDate(0, 0, -12*7)
	case "bulanan":
		label = `to_char(date_trunc('month', tgl_transaksi), 'YYYY-MM')`
		since = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return nil, fmt.Errorf("unknown chart filter %q", filter)
	}

	var rows []domainRepo.ChartPenjualanResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+label+` AS periode, COALESCE(SUM(total_transaksi), 0) AS total
		FROM transaksi_keluar
		WHERE deleted_at IS NULL AND tgl_transaksi >= ?
		GROUP BY periode
		ORDER BY periode ASC
	`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if filter != "bulanan" {
		return rows, nil
	}

	// Fill the twelve months so the chart always has a full x axis.
	results := make([]domainRepo.ChartPenjualanResult, 12)
	for i := range results {
		results[i] = domainRepo.ChartPenjualanResult{
			Periode: fmt.Sprintf("%04d-%02d", now.Year(), i+1),
		}
	}
	for _, row := range rows {
		for i := range results {
			if results[i].Periode == row.Periode {
				results[i].Total = row.Total
			}
		}
	}

	return results, nil
}

// GetJatuhTempoPiutang lists unsettled berjangka sales whose nearest due
// date falls within the window.
func (r *dashboardRepository) GetJatuhTempoPiutang(ctx context.Context, withinDays int) ([]domainRepo.JatuhTempoResult, error) {
	return r.jatuhTempo(ctx, withinDays, "transaksi_keluar", "berjangka_keluar", "pelanggan", "id_pelanggan")
}

// GetJatuhTempoHutang is the purchase-side twin of GetJatuhTempoPiutang.
func (r *dashboardRepository) GetJatuhTempoHutang(ctx context.Context, withinDays int) ([]domainRepo.JatuhTempoResult, error) {
	return r.jatuhTempo(ctx, withinDays, "transaksi_masuk", "berjangka_masuk", "supplier", "id_supplier")
}

func (r *dashboardRepository) jatuhTempo(ctx context.Context, withinDays int, txTable, berjangkaTable, relTable, relCol string) ([]domainRepo.JatuhTempoResult, error) {
	var results []domainRepo.JatuhTempoResult

	deadline := time.Now().AddDate(0, 0, withinDays)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			t.id AS transaksi_id,
			COALESCE(rel.nama, '-') AS nama,
			MIN(b.tgl_jatuh_tempo) AS tgl_jatuh_tempo,
			t.total_transaksi AS total_transaksi,
			COALESCE(SUM(b.jml_bayar), 0) AS total_dibayar,
			GREATEST(t.total_transaksi - COALESCE(SUM(b.jml_bayar), 0), 0) AS sisa_tagihan
		FROM `+txTable+` t
		JOIN `+berjangkaTable+` b ON b.id_transaksi = t.id AND b.deleted_at IS NULL
		LEFT JOIN `+relTable+` rel ON rel.id = t.`+relCol+`
		WHERE t.deleted_at IS NULL
			AND t.status_pembayaran = '1'
			AND b.tgl_jatuh_tempo <= ?
		GROUP BY t.id, rel.nama, t.total_transaksi
		HAVING COALESCE(SUM(b.jml_bayar), 0) < t.total_transaksi
		ORDER BY tgl_jatuh_tempo ASC
	`, deadline).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *dashboardRepository) CountPelanggan(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM pelanggan WHERE deleted_at IS NULL
	`).Scan(&count).Error
	return count, err
}

// GetTopPelanggan ranks customers by lifetime sales value.
func (r *dashboardRepository) GetTopPelanggan(ctx context.Context, limit int) ([]domainRepo.TopPelangganResult, error) {
	var results []domainRepo.TopPelangganResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id AS pelanggan_id,
			p.nama AS nama_pelanggan,
			COALESCE(SUM(t.total_transaksi), 0) AS total_transaksi,
			COUNT(t.id) AS jumlah_transaksi
		FROM pelanggan p
		JOIN transaksi_keluar t ON t.id_pelanggan = p.id AND t.deleted_at IS NULL
		WHERE p.deleted_at IS NULL
		GROUP BY p.id, p.nama
		ORDER BY total_transaksi DESC
		LIMIT ?
	`, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// GetOprasionalByNama totals operational costs per biaya name in the window.
func (r *dashboardRepository) GetOprasionalByNama(ctx context.Context, start, end time.Time) ([]domainRepo.OprasionalBreakdownResult, error) {
	var results []domainRepo.OprasionalBreakdownResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT nama_biaya, COALESCE(SUM(jml_biaya), 0) AS total
		FROM oprasional
		WHERE deleted_at IS NULL AND tgl_biaya >= ? AND tgl_biaya < ?
		GROUP BY nama_biaya
		ORDER BY total DESC
	`, start, end).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
