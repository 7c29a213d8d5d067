package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/application/service"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/dto/response"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// BarangHandler handles barang endpoints
type BarangHandler struct {
	barangService *service.BarangService
}

// NewBarangHandler creates a new barang handler
func NewBarangHandler(barangService *service.BarangService) *BarangHandler {
	return &BarangHandler{barangService: barangService}
}

// Create creates a new barang
func (h *BarangHandler) Create(c *gin.Context) {
	var req struct {
		KdBarang   string  `json:"kd_barang"`
		NamaBarang string  `json:"nama_barang" binding:"required"`
		JmlYard    float64 `json:"jml_yard"`
		JmlRol     int     `json:"jml_rol"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	barang, err := h.barangService.CreateBarang(c.Request.Context(), &service.CreateBarangInput{
		KdBarang:   req.KdBarang,
		NamaBarang: req.NamaBarang,
		JmlYard:    req.JmlYard,
		JmlRol:     req.JmlRol,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Barang created", barang)
}

// Get retrieves a barang by ID
func (h *BarangHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid barang ID")
		return
	}

	barang, err := h.barangService.GetBarang(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Barang retrieved", barang)
}

// List lists barang with pagination
func (h *BarangHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.barangService.ListBarang(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Barang retrieved", result)
}

// ListAll returns every barang for dropdowns
func (h *BarangHandler) ListAll(c *gin.Context) {
	barang, err := h.barangService.ListAllBarang(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Barang retrieved", barang)
}

// StockSummary returns the aggregate stock position
func (h *BarangHandler) StockSummary(c *gin.Context) {
	summary, err := h.barangService.GetStockSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock summary retrieved", summary)
}

// Update updates a barang
func (h *BarangHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid barang ID")
		return
	}

	var req struct {
		KdBarang   *string  `json:"kd_barang"`
		NamaBarang *string  `json:"nama_barang"`
		JmlYard    *float64 `json:"jml_yard"`
		JmlRol     *int     `json:"jml_rol"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	barang, err := h.barangService.UpdateBarang(c.Request.Context(), &service.UpdateBarangInput{
		ID:         id,
		KdBarang:   req.KdBarang,
		NamaBarang: req.NamaBarang,
		JmlYard:    req.JmlYard,
		JmlRol:     req.JmlRol,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Barang updated", barang)
}

// Delete deletes a barang
func (h *BarangHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid barang ID")
		return
	}

	if err := h.barangService.DeleteBarang(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Barang deleted", nil)
}
