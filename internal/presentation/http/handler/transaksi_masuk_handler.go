package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/application/service"
	"github.com/andrisetiawan/tokokain-api/internal/domain/enum"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/dto/response"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// TransaksiMasukHandler handles incoming transaction endpoints
type TransaksiMasukHandler struct {
	transaksiService *service.TransaksiMasukService
}

// NewTransaksiMasukHandler creates a new transaksi masuk handler
func NewTransaksiMasukHandler(transaksiService *service.TransaksiMasukService) *TransaksiMasukHandler {
	return &TransaksiMasukHandler{transaksiService: transaksiService}
}

// Create records a new purchase
func (h *TransaksiMasukHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req struct {
		IDSupplier       *uuid.UUID               `json:"id_supplier"`
		TglTransaksi     string                   `json:"tgl_transaksi" binding:"required"`
		Details          []transaksiDetailRequest `json:"details" binding:"required,min=1"`
		TipeDiscount     string                   `json:"tipe_discount"`
		JmlDiscount      float64                  `json:"jml_discount"`
		TipePPN          string                   `json:"tipe_ppn"`
		JmlPPN           float64                  `json:"jml_ppn"`
		Catatan          *string                  `json:"catatan"`
		StatusPembayaran string                   `json:"status_pembayaran"`
		TanggalTenor     []string                 `json:"tanggal_tenor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tglTransaksi, err := parseDate(req.TglTransaksi)
	if err != nil || tglTransaksi == nil {
		response.BadRequest(c, "Invalid tgl_transaksi")
		return
	}
	tanggalTenor, err := parseDates(req.TanggalTenor)
	if err != nil {
		response.BadRequest(c, "Invalid tanggal_tenor")
		return
	}

	if req.TipeDiscount == "" {
		req.TipeDiscount = string(enum.TipeNilaiPersen)
	}
	if req.TipePPN == "" {
		req.TipePPN = string(enum.TipeNilaiPersen)
	}
	if req.StatusPembayaran == "" {
		req.StatusPembayaran = string(enum.StatusPembayaranLunas)
	}

	transaksi, err := h.transaksiService.CreateTransaksiMasuk(c.Request.Context(), &service.CreateTransaksiMasukInput{
		IDSupplier:       req.IDSupplier,
		IDUser:           *userID,
		TglTransaksi:     *tglTransaksi,
		Details:          toDetailInputs(req.Details),
		TipeDiscount:     enum.TipeNilai(req.TipeDiscount),
		JmlDiscount:      req.JmlDiscount,
		TipePPN:          enum.TipeNilai(req.TipePPN),
		JmlPPN:           req.JmlPPN,
		Catatan:          req.Catatan,
		StatusPembayaran: enum.StatusPembayaran(req.StatusPembayaran),
		TanggalTenor:     tanggalTenor,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaksi masuk created", gin.H{
		"transaksi": transaksi,
		"rincian":   service.RincianMasuk(transaksi),
	})
}

// Get retrieves a purchase with its derived breakdown
func (h *TransaksiMasukHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaksi ID")
		return
	}

	transaksi, err := h.transaksiService.GetTransaksiMasuk(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaksi masuk retrieved", gin.H{
		"transaksi": transaksi,
		"rincian":   service.RincianMasuk(transaksi),
	})
}

// List lists purchases with filters
func (h *TransaksiMasukHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

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

	var status *enum.StatusPembayaran
	if s := c.Query("status_pembayaran"); s != "" {
		parsed := enum.StatusPembayaran(s)
		if !parsed.Valid() {
			response.BadRequest(c, "Invalid status_pembayaran")
			return
		}
		status = &parsed
	}

	result, err := h.transaksiService.ListTransaksiMasuk(c.Request.Context(), &service.ListTransaksiMasukInput{
		Pagination: params,
		Search:     c.Query("search"),
		Status:     status,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transaksi masuk retrieved", result)
}

// Update rewrites a purchase
func (h *TransaksiMasukHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaksi ID")
		return
	}

	var req struct {
		IDSupplier       *uuid.UUID               `json:"id_supplier"`
		TglTransaksi     *string                  `json:"tgl_transaksi"`
		Details          []transaksiDetailRequest `json:"details"`
		TipeDiscount     *string                  `json:"tipe_discount"`
		JmlDiscount      *float64                 `json:"jml_discount"`
		TipePPN          *string                  `json:"tipe_ppn"`
		JmlPPN           *float64                 `json:"jml_ppn"`
		Catatan          *string                  `json:"catatan"`
		StatusPembayaran *string                  `json:"status_pembayaran"`
		TanggalTenor     []string                 `json:"tanggal_tenor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateTransaksiMasukInput{
		ID:          id,
		IDSupplier:  req.IDSupplier,
		Details:     toDetailInputs(req.Details),
		JmlDiscount: req.JmlDiscount,
		JmlPPN:      req.JmlPPN,
		Catatan:     req.Catatan,
	}

	if req.TglTransaksi != nil {
		tgl, err := parseDate(*req.TglTransaksi)
		if err != nil || tgl == nil {
			response.BadRequest(c, "Invalid tgl_transaksi")
			return
		}
		input.TglTransaksi = tgl
	}
	if req.TipeDiscount != nil {
		tipe := enum.TipeNilai(*req.TipeDiscount)
		input.TipeDiscount = &tipe
	}
	if req.TipePPN != nil {
		tipe := enum.TipeNilai(*req.TipePPN)
		input.TipePPN = &tipe
	}
	if req.StatusPembayaran != nil {
		status := enum.StatusPembayaran(*req.StatusPembayaran)
		input.StatusPembayaran = &status
	}
	if len(req.TanggalTenor) > 0 {
		tanggalTenor, err := parseDates(req.TanggalTenor)
		if err != nil {
			response.BadRequest(c, "Invalid tanggal_tenor")
			return
		}
		input.TanggalTenor = tanggalTenor
	}

	transaksi, err := h.transaksiService.UpdateTransaksiMasuk(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaksi masuk updated", gin.H{
		"transaksi": transaksi,
		"rincian":   service.RincianMasuk(transaksi),
	})
}

// Delete removes a purchase and reverses its stock effect
func (h *TransaksiMasukHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaksi ID")
		return
	}

	if err := h.transaksiService.DeleteTransaksiMasuk(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaksi masuk deleted", nil)
}

// Retur records goods sent back to the supplier
func (h *TransaksiMasukHandler) Retur(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaksi ID")
		return
	}

	detailID, err := strconv.ParseUint(c.Param("detailId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid detail ID")
		return
	}

	var req struct {
		JmlYardRetur float64 `json:"jml_yard_retur" binding:"min=0"`
		JmlRolRetur  int     `json:"jml_rol_retur" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	transaksi, err := h.transaksiService.ApplyRetur(c.Request.Context(), &service.ReturInput{
		TransaksiID:  id,
		DetailID:     uint(detailID),
		JmlYardRetur: req.JmlYardRetur,
		JmlRolRetur:  req.JmlRolRetur,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Retur recorded", gin.H{
		"transaksi": transaksi,
		"rincian":   service.RincianMasuk(transaksi),
	})
}

// UpdateCicilan records installment payments to the supplier
func (h *TransaksiMasukHandler) UpdateCicilan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaksi ID")
		return
	}

	var req struct {
		Payments []struct {
			ID       uint  `json:"id" binding:"required"`
			JmlBayar int64 `json:"jml_bayar" binding:"min=0"`
		} `json:"payments" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	payments := make([]service.CicilanPaymentInput, 0, len(req.Payments))
	for _, p := range req.Payments {
		payments = append(payments, service.CicilanPaymentInput{ID: p.ID, JmlBayar: p.JmlBayar})
	}

	transaksi, err := h.transaksiService.UpdateCicilan(c.Request.Context(), &service.UpdateCicilanInput{
		TransaksiID: id,
		Payments:    payments,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cicilan updated", gin.H{
		"transaksi": transaksi,
		"rincian":   service.RincianMasuk(transaksi),
	})
}
