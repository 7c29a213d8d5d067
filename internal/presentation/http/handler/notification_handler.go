package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrisetiawan/tokokain-api/internal/application/service"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/dto/response"
)

// NotificationHandler handles WhatsApp gateway endpoints
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// Status reports the gateway session state
func (h *NotificationHandler) Status(c *gin.Context) {
	status, err := h.notificationService.GetWhatsAppStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "WhatsApp status retrieved", status)
}

// QR returns the pairing QR code image
func (h *NotificationHandler) QR(c *gin.Context) {
	qr, err := h.notificationService.GetWhatsAppQR(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", qr)
}

// SendInvoice forwards an invoice document to a customer's phone
func (h *NotificationHandler) SendInvoice(c *gin.Context) {
	number := c.PostForm("number")
	if number == "" {
		response.BadRequest(c, "number is required")
		return
	}
	caption := c.PostForm("caption")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read uploaded file")
		return
	}
	defer file.Close()

	if err := h.notificationService.SendInvoice(c.Request.Context(), &service.SendInvoiceInput{
		Number:   number,
		Caption:  caption,
		Filename: fileHeader.Filename,
		File:     file,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice sent", nil)
}
