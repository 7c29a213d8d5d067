package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andrisetiawan/tokokain-api/internal/application/service"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/dto/response"
	"github.com/andrisetiawan/tokokain-api/pkg/pagination"
)

// SupplierHandler handles supplier endpoints
type SupplierHandler struct {
	supplierService *service.SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// Create creates a new supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	var req struct {
		Nama   string  `json:"nama" binding:"required"`
		NoTlp  *string `json:"no_tlp"`
		Alamat *string `json:"alamat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), &service.CreateSupplierInput{
		Nama:   req.Nama,
		NoTlp:  req.NoTlp,
		Alamat: req.Alamat,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created", supplier)
}

// Get retrieves a supplier by ID
func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.supplierService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier retrieved", supplier)
}

// List lists suppliers with pagination
func (h *SupplierHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.supplierService.ListSuppliers(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Suppliers retrieved", result)
}

// ListAll returns every supplier for dropdowns
func (h *SupplierHandler) ListAll(c *gin.Context) {
	suppliers, err := h.supplierService.ListAllSuppliers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Suppliers retrieved", suppliers)
}

// Update updates a supplier
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
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

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), &service.UpdateSupplierInput{
		ID:     id,
		Nama:   req.Nama,
		NoTlp:  req.NoTlp,
		Alamat: req.Alamat,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier updated", supplier)
}

// Delete deletes a supplier
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier deleted", nil)
}
