package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/application/service"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/dto/response"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// OprasionalHandler handles operational expense endpoints
type OprasionalHandler struct {
	oprasionalService *service.OprasionalService
}

// NewOprasionalHandler creates a new oprasional handler
func NewOprasionalHandler(oprasionalService *service.OprasionalService) *OprasionalHandler {
	return &OprasionalHandler{oprasionalService: oprasionalService}
}

// Create records a new expense
func (h *OprasionalHandler) Create(c *gin.Context) {
	var req struct {
		NamaBiaya string  `json:"nama_biaya" binding:"required"`
		JmlBiaya  int64   `json:"jml_biaya" binding:"min=0"`
		TglBiaya  string  `json:"tgl_biaya" binding:"required"`
		Catatan   *string `json:"catatan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tglBiaya, err := parseDate(req.TglBiaya)
	if err != nil || tglBiaya == nil {
		response.BadRequest(c, "Invalid tgl_biaya")
		return
	}

	oprasional, err := h.oprasionalService.CreateOprasional(c.Request.Context(), &service.CreateOprasionalInput{
		NamaBiaya: req.NamaBiaya,
		JmlBiaya:  req.JmlBiaya,
		TglBiaya:  *tglBiaya,
		Catatan:   req.Catatan,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Oprasional created", oprasional)
}

// Get retrieves an expense by ID
func (h *OprasionalHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid oprasional ID")
		return
	}

	oprasional, err := h.oprasionalService.GetOprasional(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Oprasional retrieved", oprasional)
}

// List lists expenses with filters
func (h *OprasionalHandler) List(c *gin.Context) {
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

	result, err := h.oprasionalService.ListOprasional(c.Request.Context(), &service.ListOprasionalInput{
		Pagination: params,
		Search:     c.Query("search"),
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Oprasional retrieved", result)
}

// Update updates an expense
func (h *OprasionalHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid oprasional ID")
		return
	}

	var req struct {
		NamaBiaya *string `json:"nama_biaya"`
		JmlBiaya  *int64  `json:"jml_biaya"`
		TglBiaya  *string `json:"tgl_biaya"`
		Catatan   *string `json:"catatan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateOprasionalInput{
		ID:        id,
		NamaBiaya: req.NamaBiaya,
		JmlBiaya:  req.JmlBiaya,
		Catatan:   req.Catatan,
	}
	if req.TglBiaya != nil {
		tglBiaya, err := parseDate(*req.TglBiaya)
		if err != nil || tglBiaya == nil {
			response.BadRequest(c, "Invalid tgl_biaya")
			return
		}
		input.TglBiaya = tglBiaya
	}

	oprasional, err := h.oprasionalService.UpdateOprasional(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Oprasional updated", oprasional)
}

// Delete deletes an expense
func (h *OprasionalHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid oprasional ID")
		return
	}

	if err := h.oprasionalService.DeleteOprasional(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Oprasional deleted", nil)
}
