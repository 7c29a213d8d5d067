package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Barang represents a stocked fabric item. Stock is tracked in yards
// (length) and rol (packaging units); rol is a secondary count, not
// independently priced.
type Barang struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	KdBarang   string         `gorm:"size:100;unique;not null" json:"kd_barang"`
	NamaBarang string         `gorm:"size:255;not null" json:"nama_barang"`
	JmlYard    float64        `gorm:"type:decimal(15,2);default:0" json:"jml_yard"`
	JmlRol     int            `gorm:"default:0" json:"jml_rol"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new barang
func (b *Barang) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Barang model
func (Barang) TableName() string {
	return "barang"
}
