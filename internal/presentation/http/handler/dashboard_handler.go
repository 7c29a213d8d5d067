package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/andrisetiawan/tokokain-api/internal/application/service"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard summary endpoints
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSaldo returns the cash position breakdown
func (h *DashboardHandler) GetSaldo(c *gin.Context) {
	saldo, err := h.dashboardService.GetSaldo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Saldo retrieved", saldo)
}

// GetTransaksiPenjualan returns this month's sales summary
func (h *DashboardHandler) GetTransaksiPenjualan(c *gin.Context) {
	summary, err := h.dashboardService.GetTransaksiPenjualan(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaksi penjualan retrieved", summary)
}

// GetTransaksiPembelian returns this month's purchase summary
func (h *DashboardHandler) GetTransaksiPembelian(c *gin.Context) {
	summary, err := h.dashboardService.GetTransaksiPembelian(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaksi pembelian retrieved", summary)
}

// GetTotalStokBarang returns the aggregate stock position
func (h *DashboardHandler) GetTotalStokBarang(c *gin.Context) {
	stok, err := h.dashboardService.GetTotalStokBarang(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Total stok retrieved", stok)
}

// GetPalingLaku returns the best-selling barang ranking, optionally
// restricted to a start_date/end_date window
func (h *DashboardHandler) GetPalingLaku(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, "Invalid start_date")
		return
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, "Invalid end_date")
		return
	}

	ranking, err := h.dashboardService.GetPalingLaku(c.Request.Context(), limit, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Paling laku retrieved", ranking)
}

// GetChartPenjualan returns bucketed sales totals; the filter query selects
// harian, mingguan or bulanan granularity
func (h *DashboardHandler) GetChartPenjualan(c *gin.Context) {
	chart, err := h.dashboardService.GetChartPenjualan(c.Request.Context(), c.Query("filter"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Chart penjualan retrieved", chart)
}

// GetJatuhTempoPiutang returns unsettled berjangka transactions coming due;
// jenis selects piutang (sales, default) or hutang (purchases)
func (h *DashboardHandler) GetJatuhTempoPiutang(c *gin.Context) {
	withinDays, _ := strconv.Atoi(c.DefaultQuery("within_days", "30"))

	rows, err := h.dashboardService.GetJatuhTempo(c.Request.Context(), c.Query("jenis"), withinDays)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Jatuh tempo retrieved", rows)
}

// GetDataPelanggan returns the customer count and top-customer ranking
func (h *DashboardHandler) GetDataPelanggan(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	data, err := h.dashboardService.GetDataPelanggan(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Data pelanggan retrieved", data)
}

// GetDataOprasional returns operational costs grouped by biaya name for the
// requested window (current month by default)
func (h *DashboardHandler) GetDataOprasional(c *gin.Context) {
	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, "Invalid start_date")
		return
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, "Invalid end_date")
		return
	}

	data, err := h.dashboardService.GetDataOprasional(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Data oprasional retrieved", data)
}
