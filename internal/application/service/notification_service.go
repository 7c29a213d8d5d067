package service

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/andrisetiawan/tokokain-api/pkg/apperror"
	"github.com/andrisetiawan/tokokain-api/pkg/whatsapp"
)

// NotificationService proxies invoice delivery through the WhatsApp
// gateway.
type NotificationService struct {
	waClient whatsapp.Client
}

// NewNotificationService creates a new notification service
func NewNotificationService(waClient whatsapp.Client) *NotificationService {
	return &NotificationService{waClient: waClient}
}

// GetWhatsAppStatus reports the gateway session state
func (s *NotificationService) GetWhatsAppStatus(ctx context.Context) (*whatsapp.Status, error) {
	status, err := s.waClient.GetStatus(ctx)
	if err != nil {
		return nil, translateGatewayError(err)
	}
	return status, nil
}

// GetWhatsAppQR returns the pairing QR code image
func (s *NotificationService) GetWhatsAppQR(ctx context.Context) ([]byte, error) {
	qr, err := s.waClient.GetQR(ctx)
	if err != nil {
		return nil, translateGatewayError(err)
	}
	return qr, nil
}

// SendInvoiceInput represents the invoice delivery input
type SendInvoiceInput struct {
	Number   string
	Caption  string
	Filename string
	File     io.Reader
}

// SendInvoice delivers an invoice document to a customer's phone
func (s *NotificationService) SendInvoice(ctx context.Context, input *SendInvoiceInput) error {
	if input.Number == "" {
		return apperror.NewBadRequestError("Phone number is required")
	}
	if input.File == nil {
		return apperror.NewBadRequestError("File is required")
	}

	if err := s.waClient.SendFile(ctx, input.Number, input.Caption, input.Filename, input.File); err != nil {
		return translateGatewayError(err)
	}
	return nil
}

func translateGatewayError(err error) error {
	if errors.Is(err, whatsapp.ErrDisabled) {
		return apperror.NewAppError(http.StatusServiceUnavailable, "WhatsApp gateway is not configured")
	}
	return apperror.NewAppError(http.StatusBadGateway, "WhatsApp gateway error: "+err.Error())
}
