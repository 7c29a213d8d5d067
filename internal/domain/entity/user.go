package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a back-office user of the store
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username  string         `gorm:"size:255;unique;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Nama      string         `gorm:"size:255;not null" json:"nama"`
	Jabatan   string         `gorm:"size:100;not null;default:'staff'" json:"jabatan"`
	NoTlp     *string        `gorm:"size:50" json:"no_tlp,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	TransaksiKeluar []TransaksiKeluar `gorm:"foreignKey:IDUser" json:"-"`
	TransaksiMasuk  []TransaksiMasuk  `gorm:"foreignKey:IDUser" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds an administrative jabatan
func (u *User) IsAdmin() bool {
	return u.Jabatan == "admin" || u.Jabatan == "owner"
}
