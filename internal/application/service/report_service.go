package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/andrisetiawan/tokokain-api/internal/domain/entity"
	"github.com/andrisetiawan/tokokain-api/internal/domain/repository"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// ReportService exports transaction books as xlsx workbooks
type ReportService struct {
	keluarRepo repository.TransaksiKeluarRepository
	masukRepo  repository.TransaksiMasukRepository
}

// NewReportService creates a new report service
func NewReportService(keluarRepo repository.TransaksiKeluarRepository, masukRepo repository.TransaksiMasukRepository) *ReportService {
	return &ReportService{keluarRepo: keluarRepo, masukRepo: masukRepo}
}

// ExportInput bounds the report period. Nil bounds export everything.
type ExportInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// reportPageSize keeps a single export query bounded.
const reportPageSize = 100

var reportHeaders = []string{"No", "Tanggal", "Nama", "Status", "Tenor", "Total Transaksi", "Catatan"}

// ExportPenjualan exports the sales book for the period
func (s *ReportService) ExportPenjualan(ctx context.Context, input *ExportInput) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Penjualan"
	f.SetSheetName("Sheet1", sheet)
	if err := writeReportHeaders(f, sheet); err != nil {
		return nil, err
	}

	row := 2
	no := 1
	for page := 1; ; page++ {
		params := &repository.TransaksiFilterParams{
			Pagination: &pagination.PaginationParams{Page: page, PerPage: reportPageSize},
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
		}
		batch, total, err := s.keluarRepo.List(ctx, params)
		if err != nil {
			return nil, err
		}

		for _, t := range batch {
			nama := "-"
			if t.Pelanggan != nil {
				nama = t.Pelanggan.Nama
			}
			catatan := ""
			if t.Catatan != nil {
				catatan = *t.Catatan
			}
			if err := writeReportRow(f, sheet, row, no, t.TglTransaksi, nama, t.StatusPembayaran.String(), t.Tenor, t.TotalTransaksi, catatan); err != nil {
				return nil, err
			}
			row++
			no++
		}

		if int64(page*reportPageSize) >= total || len(batch) == 0 {
			break
		}
	}

	return f.WriteToBuffer()
}

// ExportPembelian exports the purchase book for the period
func (s *ReportService) ExportPembelian(ctx context.Context, input *ExportInput) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Pembelian"
	f.SetSheetName("Sheet1", sheet)
	if err := writeReportHeaders(f, sheet); err != nil {
		return nil, err
	}

	row := 2
	no := 1
	for page := 1; ; page++ {
		params := &repository.TransaksiFilterParams{
			Pagination: &pagination.PaginationParams{Page: page, PerPage: reportPageSize},
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
		}
		batch, total, err := s.masukRepo.List(ctx, params)
		if err != nil {
			return nil, err
		}

		for _, t := range batch {
			nama := "-"
			if t.Supplier != nil {
				nama = t.Supplier.Nama
			}
			catatan := ""
			if t.Catatan != nil {
				catatan = *t.Catatan
			}
			if err := writeReportRow(f, sheet, row, no, t.TglTransaksi, nama, t.StatusPembayaran.String(), t.Tenor, t.TotalTransaksi, catatan); err != nil {
				return nil, err
			}
			row++
			no++
		}

		if int64(page*reportPageSize) >= total || len(batch) == 0 {
			break
		}
	}

	return f.WriteToBuffer()
}

// ExportStok exports the current stock positions
func (s *ReportService) ExportStok(ctx context.Context, barang []entity.Barang) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Stok"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"No", "Kode Barang", "Nama Barang", "Jml Yard", "Jml Rol"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, b := range barang {
		values := []interface{}{i + 1, b.KdBarang, b.NamaBarang, b.JmlYard, b.JmlRol}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

func writeReportHeaders(f *excelize.File, sheet string) error {
	for i, h := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeReportRow(f *excelize.File, sheet string, row, no int, tgl time.Time, nama, status string, tenor int, total int64, catatan string) error {
	values := []interface{}{no, tgl.Format("2006-01-02"), nama, status, tenor, total, catatan}
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("report cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
