package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Oprasional is a recorded operational expense (rent, wages, utilities).
// Costs here reduce the dashboard saldo alongside purchases.
type Oprasional struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	NamaBiaya string         `gorm:"size:255;not null" json:"nama_biaya"`
	JmlBiaya  int64          `gorm:"not null" json:"jml_biaya"`
	TglBiaya  time.Time      `gorm:"type:date;not null" json:"tgl_biaya"`
	Catatan   *string        `gorm:"type:text" json:"catatan,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new oprasional record
func (o *Oprasional) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Oprasional model
func (Oprasional) TableName() string {
	return "oprasional"
}
