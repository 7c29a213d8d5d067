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

// TransaksiKeluarHandler handles outgoing transaction endpoints
type TransaksiKeluarHandler struct {
	transaksiService *service.TransaksiKeluarService
}

// NewTransaksiKeluarHandler creates a new transaksi keluar handler
func NewTransaksiKeluarHandler(transaksiService *service.TransaksiKeluarService) *TransaksiKeluarHandler {
	return &TransaksiKeluarHandler{transaksiService: transaksiService}
}

// transaksiDetailRequest is one submitted line item.
type transaksiDetailRequest struct {
	IDBarang    *uuid.UUID `json:"id_barang"`
	KodeBarang  string     `json:"kode_barang"`
	NamaBarang  string     `json:"nama_barang"`
	JmlYard     float64    `json:"jml_yard" binding:"min=0"`
	JmlRol      int        `json:"jml_rol" binding:"min=0"`
	HargaSatuan int64      `json:"harga_satuan" binding:"min=0"`
}

func toDetailInputs(reqs []transaksiDetailRequest) []service.TransaksiDetailInput {
	inputs := make([]service.TransaksiDetailInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, service.TransaksiDetailInput{
			IDBarang:    r.IDBarang,
			KodeBarang:  r.KodeBarang,
			NamaBarang:  r.NamaBarang,
			JmlYard:     r.JmlYard,
			JmlRol:      r.JmlRol,
			HargaSatuan: r.HargaSatuan,
		})
	}
	return inputs
}

// Create records a new sale
func (h *TransaksiKeluarHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req struct {
		IDPelanggan      *uuid.UUID               `json:"id_pelanggan"`
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

	transaksi, err := h.transaksiService.CreateTransaksiKeluar(c.Request.Context(), &service.CreateTransaksiKeluarInput{
		IDPelanggan:      req.IDPelanggan,
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

	response.Created(c, "Transaksi keluar created", gin.H{
		"transaksi": transaksi,
		"rincian":   service.RincianKeluar(transaksi),
	})
}

// Get retrieves a sale with its derived breakdown
func (h *TransaksiKeluarHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaksi ID")
		return
	}

	transaksi, err := h.transaksiService.GetTransaksiKeluar(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaksi keluar retrieved", gin.H{
		"transaksi": transaksi,
		"rincian":   service.RincianKeluar(transaksi),
	})
}

// List lists sales with filters
func (h *TransaksiKeluarHandler) List(c *gin.Context) {
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

	result, err := h.transaksiService.ListTransaksiKeluar(c.Request.Context(), &service.ListTransaksiKeluarInput{
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

	response.SuccessWithPagination(c, 200, "Transaksi keluar retrieved", result)
}

// Update rewrites a sale
func (h *TransaksiKeluarHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaksi ID")
		return
	}

	var req struct {
		IDPelanggan      *uuid.UUID               `json:"id_pelanggan"`
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

	input := &service.UpdateTransaksiKeluarInput{
		ID:          id,
		IDPelanggan: req.IDPelanggan,
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

	transaksi, err := h.transaksiService.UpdateTransaksiKeluar(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaksi keluar updated", gin.H{
		"transaksi": transaksi,
		"rincian":   service.RincianKeluar(transaksi),
	})
}

// Delete removes a sale and restores its stock
func (h *TransaksiKeluarHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaksi ID")
		return
	}

	if err := h.transaksiService.DeleteTransaksiKeluar(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaksi keluar deleted", nil)
}

// Retur records returned goods on one detail row
func (h *TransaksiKeluarHandler) Retur(c *gin.Context) {
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
		"rincian":   service.RincianKeluar(transaksi),
	})
}

// UpdateCicilan records installment payments
func (h *TransaksiKeluarHandler) UpdateCicilan(c *gin.Context) {
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
		"rincian":   service.RincianKeluar(transaksi),
	})
}
