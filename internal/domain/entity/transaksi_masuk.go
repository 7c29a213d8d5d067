package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrisetiawan/tokokain-api/internal/domain/enum"
	"github.com/andrisetiawan/tokokain-api/pkg/invoice"
)

// TransaksiMasuk represents an incoming (purchase) transaction from a
// supplier. Mirrors TransaksiKeluar with the counterparty swapped.
type TransaksiMasuk struct {
	ID               uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	IDSupplier       *uuid.UUID            `gorm:"type:uuid;index" json:"id_supplier,omitempty"`
	IDUser           uuid.UUID             `gorm:"type:uuid;not null;index" json:"id_user"`
	TglTransaksi     time.Time             `gorm:"type:date;not null" json:"tgl_transaksi"`
	TotalTransaksi   int64                 `gorm:"default:0" json:"total_transaksi"`
	TipeDiscount     enum.TipeNilai        `gorm:"size:20;default:'persen'" json:"tipe_discount"`
	JmlDiscount      float64               `gorm:"type:decimal(15,2);default:0" json:"jml_discount"`
	TipePPN          enum.TipeNilai        `gorm:"size:20;column:tipe_ppn;default:'persen'" json:"tipe_ppn"`
	JmlPPN           float64               `gorm:"type:decimal(15,2);column:jml_ppn;default:0" json:"jml_ppn"`
	Catatan          *string               `gorm:"type:text" json:"catatan,omitempty"`
	StatusPembayaran enum.StatusPembayaran `gorm:"size:5;default:'0'" json:"status_pembayaran"`
	Tenor            int                   `gorm:"default:0" json:"tenor"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	DeletedAt        gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Supplier  *Supplier              `gorm:"foreignKey:IDSupplier" json:"supplier,omitempty"`
	Penginput User                   `gorm:"foreignKey:IDUser" json:"penginput"`
	Details   []TransaksiMasukDetail `gorm:"foreignKey:IDTransaksi;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	Berjangka []BerjangkaMasuk       `gorm:"foreignKey:IDTransaksi;constraint:OnDelete:CASCADE" json:"berjangka,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaksi
func (t *TransaksiMasuk) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransaksiMasuk model
func (TransaksiMasuk) TableName() string {
	return "transaksi_masuk"
}

// InvoiceItems converts the detail rows for the computation engine.
func (t *TransaksiMasuk) InvoiceItems() []invoice.LineItem {
	items := make([]invoice.LineItem, 0, len(t.Details))
	for _, d := range t.Details {
		items = append(items, d.InvoiceItem())
	}
	return items
}

// DiscountSpec returns the header's discount configuration for the engine.
func (t *TransaksiMasuk) DiscountSpec() invoice.Spec {
	return invoice.Spec{Kind: t.TipeDiscount.Kind(), Value: t.JmlDiscount}
}

// PPNSpec returns the header's PPN configuration for the engine.
func (t *TransaksiMasuk) PPNSpec() invoice.Spec {
	return invoice.Spec{Kind: t.TipePPN.Kind(), Value: t.JmlPPN}
}

// PaymentAmounts returns the recorded berjangka payments in id order.
func (t *TransaksiMasuk) PaymentAmounts() []float64 {
	amounts := make([]float64, 0, len(t.Berjangka))
	for _, b := range t.Berjangka {
		amounts = append(amounts, float64(b.JmlBayar))
	}
	return amounts
}

// TransaksiMasukDetail is a snapshotted line item of an incoming
// transaction.
type TransaksiMasukDetail struct {
	ID           uint           `gorm:"primary_key" json:"id"`
	IDTransaksi  uuid.UUID      `gorm:"type:uuid;not null;index" json:"id_transaksi"`
	IDBarang     *uuid.UUID     `gorm:"type:uuid;index" json:"id_barang,omitempty"`
	KodeBarang   string         `gorm:"size:100" json:"kode_barang"`
	NamaBarang   string         `gorm:"size:255" json:"nama_barang"`
	JmlYard      float64        `gorm:"type:decimal(15,2);not null" json:"jml_yard"`
	JmlRol       int            `gorm:"default:0" json:"jml_rol"`
	HargaSatuan  int64          `gorm:"not null" json:"harga_satuan"`
	JmlYardRetur float64        `gorm:"type:decimal(15,2);default:0" json:"jml_yard_retur"`
	JmlRolRetur  int            `gorm:"default:0" json:"jml_rol_retur"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Transaksi TransaksiMasuk `gorm:"foreignKey:IDTransaksi" json:"-"`
	Barang    *Barang        `gorm:"foreignKey:IDBarang" json:"barang,omitempty"`
}

// TableName returns the table name for the TransaksiMasukDetail model
func (TransaksiMasukDetail) TableName() string {
	return "transaksi_masuk_details"
}

// InvoiceItem converts the row for the computation engine.
func (d TransaksiMasukDetail) InvoiceItem() invoice.LineItem {
	return invoice.LineItem{
		Yard:        d.JmlYard,
		Rol:         float64(d.JmlRol),
		YardRetur:   d.JmlYardRetur,
		RolRetur:    float64(d.JmlRolRetur),
		HargaSatuan: float64(d.HargaSatuan),
	}
}

// BerjangkaMasuk is one installment slot of an incoming transaction.
type BerjangkaMasuk struct {
	ID            uint           `gorm:"primary_key" json:"id"`
	IDTransaksi   uuid.UUID      `gorm:"type:uuid;not null;index" json:"id_transaksi"`
	TglJatuhTempo time.Time      `gorm:"type:date;not null" json:"tgl_jatuh_tempo"`
	JmlBayar      int64          `gorm:"default:0" json:"jml_bayar"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Transaksi TransaksiMasuk `gorm:"foreignKey:IDTransaksi" json:"-"`
}

// TableName returns the table name for the BerjangkaMasuk model
func (BerjangkaMasuk) TableName() string {
	return "berjangka_masuk"
}
