// Package invoice derives the monetary figures of a transaction (gross,
// retur deduction, discount, PPN, grand total, settlement) from its line
// items. It is the single source of truth for this arithmetic: every screen
// and every persistence path must go through it so a list row, a detail
// view, a printed nota and the stored total can never disagree.
//
// The package performs no I/O and never fails: invalid numeric input is
// coerced to zero before arithmetic.
package invoice

import "math"

// Kind selects how a discount or PPN value is interpreted.
type Kind string

const (
	// KindPersen applies the value as a percentage of the amount it targets.
	KindPersen Kind = "persen"
	// KindHarga applies the value as a flat rupiah amount.
	KindHarga Kind = "harga"
)

// Spec is a discount or PPN configuration as stored on a transaction header.
type Spec struct {
	Kind  Kind
	Value float64
}

// LineItem is one detail row of a transaction. Quantities are in yards
// (length) and rol (packaging count, not independently priced). Retur
// quantities reduce the billable amount but not the displayed quantity
// totals.
type LineItem struct {
	Yard        float64
	Rol         float64
	YardRetur   float64
	RolRetur    float64
	HargaSatuan float64
}

// LineTotals aggregates the detail rows of a transaction before discount
// and PPN are applied.
type LineTotals struct {
	Gross          float64 `json:"gross"`
	ReturDeduction float64 `json:"retur_deduction"`
	Net            float64 `json:"net"`
	TotalYard      float64 `json:"total_yard"`
	TotalRol       float64 `json:"total_rol"`
	TotalYardRetur float64 `json:"total_yard_retur"`
	TotalRolRetur  float64 `json:"total_rol_retur"`
}

// Summary is the full derivation for a transaction. The stages build on
// each other in a fixed order: gross -> retur deduction -> net -> discount
// -> subtotal -> PPN -> grand total. Discount is computed against the
// retur-adjusted net, never against gross; PPN against the post-discount
// subtotal, never against net or gross. Changing this order changes the
// financial result.
type Summary struct {
	LineTotals
	Discount   float64 `json:"discount"`
	Subtotal   float64 `json:"subtotal"`
	PPN        float64 `json:"ppn"`
	GrandTotal float64 `json:"grand_total"`
}

// num coerces a missing or non-numeric input to zero so a total is always
// produced instead of propagating NaN into a displayed or persisted figure.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// EffectiveYard returns the billable yard quantity of an item: yard minus
// yard retur, clamped to zero when the retur exceeds the recorded quantity.
func EffectiveYard(item LineItem) float64 {
	eff := num(item.Yard) - math.Max(0, num(item.YardRetur))
	if eff < 0 {
		return 0
	}
	return eff
}

// LineNet returns the retur-adjusted amount of a single detail row, as
// shown per row on the nota.
func LineNet(item LineItem) float64 {
	return EffectiveYard(item) * num(item.HargaSatuan)
}

// ComputeLineTotals aggregates the detail rows. Gross is the pre-retur
// amount; retur only reduces money, quantity totals keep the ordered
// figures. An item with harga satuan zero contributes nothing to the money
// totals but still counts toward the quantity totals.
func ComputeLineTotals(items []LineItem) LineTotals {
	var t LineTotals
	for _, item := range items {
		yard := num(item.Yard)
		harga := num(item.HargaSatuan)
		yardRetur := math.Max(0, num(item.YardRetur))
		rolRetur := math.Max(0, num(item.RolRetur))

		t.Gross += yard * harga
		t.ReturDeduction += yardRetur * harga
		t.TotalYard += yard
		t.TotalRol += num(item.Rol)
		t.TotalYardRetur += yardRetur
		t.TotalRolRetur += rolRetur
	}
	t.Net = t.Gross - t.ReturDeduction
	if t.Net < 0 {
		t.Net = 0
	}
	return t
}

// ApplyDiscount returns the discount amount for the given retur-adjusted
// net. A flat (harga) discount is intentionally not clamped to net: the
// upstream system accepts discounts exceeding the goods value, so the
// subtotal may go negative. Validation gap, preserved until product says
// otherwise.
func ApplyDiscount(net float64, spec Spec) float64 {
	value := num(spec.Value)
	if spec.Kind == KindPersen {
		return num(net) * value / 100
	}
	return value
}

// ApplyPPN returns the PPN amount for the given post-discount subtotal.
func ApplyPPN(subtotal float64, spec Spec) float64 {
	value := num(spec.Value)
	if spec.Kind == KindPersen {
		return num(subtotal) * value / 100
	}
	return value
}

// Compute runs the whole derivation in its contractual order.
func Compute(items []LineItem, discount, ppn Spec) Summary {
	s := Summary{LineTotals: ComputeLineTotals(items)}
	s.Discount = ApplyDiscount(s.Net, discount)
	s.Subtotal = s.Net - s.Discount
	s.PPN = ApplyPPN(s.Subtotal, ppn)
	s.GrandTotal = s.Subtotal + s.PPN
	return s
}

// RoundRupiah rounds a monetary figure to whole rupiah, half up. It is the
// only rounding function in the system and is applied exactly once, at the
// persistence boundary; intermediate figures stay fractional so repeated
// computation from the same inputs always persists the same integer.
func RoundRupiah(v float64) int64 {
	return int64(math.Floor(num(v) + 0.5))
}
