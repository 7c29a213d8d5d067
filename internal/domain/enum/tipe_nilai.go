package enum

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/andrisetiawan/tokokain-api/pkg/invoice"
)

// TipeNilai is how a discount or PPN value on a transaction header is
// interpreted: "persen" as a percentage, "harga" as a flat rupiah amount.
type TipeNilai string

const (
	TipeNilaiPersen TipeNilai = "persen"
	TipeNilaiHarga  TipeNilai = "harga"
)

func (t TipeNilai) String() string {
	return string(t)
}

// Kind converts the stored value to the computation engine's type.
func (t TipeNilai) Kind() invoice.Kind {
	return invoice.Kind(t)
}

// Valid reports whether the value is a known tipe.
func (t TipeNilai) Valid() bool {
	return t == TipeNilaiPersen || t == TipeNilaiHarga
}

func (t TipeNilai) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *TipeNilai) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = TipeNilai(str)
	return nil
}

func (t TipeNilai) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *TipeNilai) Scan(value interface{}) error {
	if value == nil {
		*t = TipeNilaiPersen
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = TipeNilai(v)
	case []byte:
		*t = TipeNilai(string(v))
	}
	return nil
}
