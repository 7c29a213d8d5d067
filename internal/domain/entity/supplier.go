package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a fabric supplier (counterparty of incoming
// transactions)
type Supplier struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Nama      string         `gorm:"size:255;not null" json:"nama"`
	NoTlp     *string        `gorm:"size:50" json:"no_tlp,omitempty"`
	Alamat    *string        `gorm:"type:text" json:"alamat,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	TransaksiMasuk []TransaksiMasuk `gorm:"foreignKey:IDSupplier" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
