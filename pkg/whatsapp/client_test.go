package whatsapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"connected": true, "number": "628123456789"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	status, err := client.GetStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "628123456789", status.Number)
}

func TestGetQR(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/qr", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	qr, err := client.GetQR(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), qr)
}

func TestSendFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send-file", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "628123456789", r.FormValue("number"))
		assert.Equal(t, "Invoice terlampir", r.FormValue("caption"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "invoice.pdf", header.Filename)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	err := client.SendFile(context.Background(), "628123456789", "Invoice terlampir", "invoice.pdf", strings.NewReader("pdf-content"))
	require.NoError(t, err)
}

func TestSendFileGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	err := client.SendFile(context.Background(), "628123456789", "", "invoice.pdf", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestDisabledClient(t *testing.T) {
	client := NewClient("", 5*time.Second)

	_, err := client.GetStatus(context.Background())
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = client.GetQR(context.Background())
	assert.ErrorIs(t, err, ErrDisabled)

	err = client.SendFile(context.Background(), "1", "", "f", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrDisabled)
}
