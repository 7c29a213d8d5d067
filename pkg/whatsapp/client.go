package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrDisabled is returned when no gateway is configured.
var ErrDisabled = errors.New("whatsapp gateway is not configured")

// Status is the session state reported by the gateway.
type Status struct {
	Connected bool   `json:"connected"`
	Number    string `json:"number,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Client talks to the external WhatsApp gateway used to send invoices to
// customers.
type Client interface {
	// GetStatus reports whether the gateway session is connected.
	GetStatus(ctx context.Context) (*Status, error)
	// GetQR returns the pairing QR code as a PNG image.
	GetQR(ctx context.Context) ([]byte, error)
	// SendFile delivers a document to a phone number with a caption.
	SendFile(ctx context.Context, number, caption, filename string, file io.Reader) error
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a gateway client. An empty baseURL yields a disabled
// client so the rest of the API keeps working without the integration.
func NewClient(baseURL string, timeout time.Duration) Client {
	if baseURL == "" {
		return &nullClient{}
	}
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) GetStatus(ctx context.Context) (*Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway status returned %d", resp.StatusCode)
	}

	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *httpClient) GetQR(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/qr", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway qr returned %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *httpClient) SendFile(ctx context.Context, number, caption, filename string, file io.Reader) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("number", number); err != nil {
		return err
	}
	if err := writer.WriteField("caption", caption); err != nil {
		return err
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send-file", &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway send-file returned %d", resp.StatusCode)
	}
	return nil
}

type nullClient struct{}

func (n *nullClient) GetStatus(ctx context.Context) (*Status, error) {
	return nil, ErrDisabled
}

func (n *nullClient) GetQR(ctx context.Context) ([]byte, error) {
	return nil, ErrDisabled
}

func (n *nullClient) SendFile(ctx context.Context, number, caption, filename string, file io.Reader) error {
	return ErrDisabled
}
