package enum

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/andrisetiawan/tokokain-api/pkg/invoice"
)

// StatusPembayaran is the payment mode of a transaction, stored and sent
// with the wire values of the original API: "0" lunas, "1" berjangka.
type StatusPembayaran string

const (
	StatusPembayaranLunas     StatusPembayaran = "0"
	StatusPembayaranBerjangka StatusPembayaran = "1"
)

func (s StatusPembayaran) String() string {
	if s == StatusPembayaranBerjangka {
		return "Berjangka"
	}
	return "Lunas"
}

// Invoice converts the stored value to the computation engine's type.
func (s StatusPembayaran) Invoice() invoice.PaymentStatus {
	return invoice.PaymentStatus(s)
}

// Valid reports whether the value is a known payment mode.
func (s StatusPembayaran) Valid() bool {
	return s == StatusPembayaranLunas || s == StatusPembayaranBerjangka
}

func (s StatusPembayaran) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *StatusPembayaran) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = StatusPembayaran(str)
	return nil
}

func (s StatusPembayaran) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *StatusPembayaran) Scan(value interface{}) error {
	if value == nil {
		*s = StatusPembayaranLunas
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = StatusPembayaran(v)
	case []byte:
		*s = StatusPembayaran(string(v))
	}
	return nil
}
