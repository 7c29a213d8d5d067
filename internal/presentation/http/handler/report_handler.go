package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andrisetiawan/tokokain-api/internal/application/service"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles xlsx report downloads
type ReportHandler struct {
	reportService *service.ReportService
	barangService *service.BarangService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, barangService *service.BarangService) *ReportHandler {
	return &ReportHandler{reportService: reportService, barangService: barangService}
}

// ExportPenjualan downloads the sales book for a period
func (h *ReportHandler) ExportPenjualan(c *gin.Context) {
	startDate, err := parseDate(c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, "Invalid start_date")
		return
	}
	endDate, err := parseDate(c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, "Invalid end_date")
		return
	}

	buf, err := h.reportService.ExportPenjualan(c.Request.Context(), &service.ExportInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	writeXlsx(c, "laporan-penjualan", buf.Bytes())
}

// ExportPembelian downloads the purchase book for a period
func (h *ReportHandler) ExportPembelian(c *gin.Context) {
	startDate, err := parseDate(c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, "Invalid start_date")
		return
	}
	endDate, err := parseDate(c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, "Invalid end_date")
		return
	}

	buf, err := h.reportService.ExportPembelian(c.Request.Context(), &service.ExportInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	writeXlsx(c, "laporan-pembelian", buf.Bytes())
}

// ExportStok downloads the current stock positions
func (h *ReportHandler) ExportStok(c *gin.Context) {
	barang, err := h.barangService.ListAllBarang(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	buf, err := h.reportService.ExportStok(c.Request.Context(), barang)
	if err != nil {
		response.Error(c, err)
		return
	}

	writeXlsx(c, "laporan-stok", buf.Bytes())
}

func writeXlsx(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
