package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/application/service"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/dto/response"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// PelangganHandler handles pelanggan endpoints
type PelangganHandler struct {
	pelangganService *service.PelangganService
}

// NewPelangganHandler creates a new pelanggan handler
func NewPelangganHandler(pelangganService *service.PelangganService) *PelangganHandler {
	return &PelangganHandler{pelangganService: pelangganService}
}

// Create creates a new pelanggan
func (h *PelangganHandler) Create(c *gin.Context) {
	var req struct {
		Nama   string  `json:"nama" binding:"required"`
		NoTlp  *string `json:"no_tlp"`
		Alamat *string `json:"alamat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pelanggan, err := h.pelangganService.CreatePelanggan(c.Request.Context(), &service.CreatePelangganInput{
		Nama:   req.Nama,
		NoTlp:  req.NoTlp,
		Alamat: req.Alamat,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Pelanggan created", pelanggan)
}

// Get retrieves a pelanggan by ID
func (h *PelangganHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pelanggan ID")
		return
	}

	pelanggan, err := h.pelangganService.GetPelanggan(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pelanggan retrieved", pelanggan)
}

// List lists pelanggan with pagination
func (h *PelangganHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.pelangganService.ListPelanggan(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Pelanggan retrieved", result)
}

// ListAll returns every pelanggan for dropdowns
func (h *PelangganHandler) ListAll(c *gin.Context) {
	pelanggan, err := h.pelangganService.ListAllPelanggan(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pelanggan retrieved", pelanggan)
}

// Update updates a pelanggan
func (h *PelangganHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pelanggan ID")
		return
	}

	var req struct {
		Nama   *string `json:"nama"`
		NoTlp  *string `json:"no_tlp"`
		Alamat *string `json:"alamat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pelanggan, err := h.pelangganService.UpdatePelanggan(c.Request.Context(), &service.UpdatePelangganInput{
		ID:     id,
		Nama:   req.Nama,
		NoTlp:  req.NoTlp,
		Alamat: req.Alamat,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pelanggan updated", pelanggan)
}

// Delete deletes a pelanggan
func (h *PelangganHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pelanggan ID")
		return
	}

	if err := h.pelangganService.DeletePelanggan(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pelanggan deleted", nil)
}
