package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/andrisetiawan/tokokain-api/internal/application/service"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/dto/response"
)

// ProfileHandler handles store profile endpoints
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns the store profile
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved", profile)
}

// Update updates the store profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req struct {
		NamaToko      *string `json:"nama_toko"`
		Alamat        *string `json:"alamat"`
		NomorTelepon1 *string `json:"nomor_telepon_1"`
		NomorTelepon2 *string `json:"nomor_telepon_2"`
		NomorTelepon3 *string `json:"nomor_telepon_3"`
		Rekening      *string `json:"rekening"`
		NamaRekening  *string `json:"nama_rekening"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		NamaToko:      req.NamaToko,
		Alamat:        req.Alamat,
		NomorTelepon1: req.NomorTelepon1,
		NomorTelepon2: req.NomorTelepon2,
		NomorTelepon3: req.NomorTelepon3,
		Rekening:      req.Rekening,
		NamaRekening:  req.NamaRekening,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated", profile)
}
