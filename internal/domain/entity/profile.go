package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the store identity printed on invoices. A single row is
// seeded at migration time and only ever updated.
type Profile struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	NamaToko      string         `gorm:"size:255;not null" json:"nama_toko"`
	Alamat        string         `gorm:"type:text" json:"alamat"`
	NomorTelepon1 *string        `gorm:"size:50" json:"nomor_telepon_1,omitempty"`
	NomorTelepon2 *string        `gorm:"size:50" json:"nomor_telepon_2,omitempty"`
	NomorTelepon3 *string        `gorm:"size:50" json:"nomor_telepon_3,omitempty"`
	Rekening      *string        `gorm:"size:100" json:"rekening,omitempty"`
	NamaRekening  *string        `gorm:"size:255" json:"nama_rekening,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating the profile row
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
