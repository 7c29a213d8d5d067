package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pelanggan represents a customer of the store (counterparty of outgoing
// transactions)
type Pelanggan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Nama      string         `gorm:"size:255;not null" json:"nama"`
	NoTlp     *string        `gorm:"size:50" json:"no_tlp,omitempty"`
	Alamat    *string        `gorm:"type:text" json:"alamat,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	TransaksiKeluar []TransaksiKeluar `gorm:"foreignKey:IDPelanggan" json:"-"`
}

// BeforeCreate generates a UUID before creating a new pelanggan
func (p *Pelanggan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Pelanggan model
func (Pelanggan) TableName() string {
	return "pelanggan"
}
