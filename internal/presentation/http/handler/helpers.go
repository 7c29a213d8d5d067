package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetJabatan extracts the jabatan from the Gin context
func GetJabatan(c *gin.Context) string {
	jabatan, exists := c.Get("jabatan")
	if !exists {
		return ""
	}
	return jabatan.(string)
}

// IsAdmin checks if the authenticated user holds an admin jabatan
func IsAdmin(c *gin.Context) bool {
	jabatan := GetJabatan(c)
	return jabatan == "admin" || jabatan == "owner"
}

// parseDate parses a yyyy-mm-dd value. Empty input yields nil.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDates parses a list of yyyy-mm-dd values.
func parseDates(values []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, err
		}
		dates = append(dates, t)
	}
	return dates, nil
}
