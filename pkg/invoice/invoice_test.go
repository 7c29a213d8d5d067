package invoice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLineTotalsEmpty(t *testing.T) {
	got := ComputeLineTotals(nil)
	assert.Equal(t, LineTotals{}, got)

	got = ComputeLineTotals([]LineItem{})
	assert.Equal(t, LineTotals{}, got)
}

func TestComputeLineTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  LineTotals
	}{
		{
			name: "single item no retur",
			items: []LineItem{
				{Yard: 100, Rol: 4, HargaSatuan: 5000},
			},
			want: LineTotals{
				Gross: 500000, Net: 500000,
				TotalYard: 100, TotalRol: 4,
			},
		},
		{
			name: "retur reduces money but not quantity totals",
			items: []LineItem{
				{Yard: 100, Rol: 4, YardRetur: 10, RolRetur: 1, HargaSatuan: 5000},
			},
			want: LineTotals{
				Gross: 500000, ReturDeduction: 50000, Net: 450000,
				TotalYard: 100, TotalRol: 4, TotalYardRetur: 10, TotalRolRetur: 1,
			},
		},
		{
			name: "zero-price item counts toward quantities only",
			items: []LineItem{
				{Yard: 50, Rol: 2, HargaSatuan: 0},
				{Yard: 10, Rol: 1, HargaSatuan: 1000},
			},
			want: LineTotals{
				Gross: 10000, Net: 10000,
				TotalYard: 60, TotalRol: 3,
			},
		},
		{
			name: "retur deduction exceeding gross clamps net to zero",
			items: []LineItem{
				{Yard: 10, YardRetur: 12, HargaSatuan: 1000},
			},
			want: LineTotals{
				Gross: 10000, ReturDeduction: 12000, Net: 0,
				TotalYard: 10, TotalYardRetur: 12,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLineTotals(tt.items))
		})
	}
}

func TestEffectiveYardClampsToZero(t *testing.T) {
	item := LineItem{Yard: 10, YardRetur: 12, HargaSatuan: 1000}
	assert.Equal(t, 0.0, EffectiveYard(item))
	assert.Equal(t, 0.0, LineNet(item))
}

func TestApplyDiscount(t *testing.T) {
	assert.Equal(t, 45000.0, ApplyDiscount(450000, Spec{Kind: KindPersen, Value: 10}))
	assert.Equal(t, 20000.0, ApplyDiscount(450000, Spec{Kind: KindHarga, Value: 20000}))

	// A flat discount is not clamped to net; the subtotal may go negative.
	assert.Equal(t, 600000.0, ApplyDiscount(450000, Spec{Kind: KindHarga, Value: 600000}))
}

func TestComputeOrderIsDiscountThenPPN(t *testing.T) {
	items := []LineItem{{Yard: 100, HargaSatuan: 1000}}
	discount := Spec{Kind: KindPersen, Value: 10}
	ppn := Spec{Kind: KindPersen, Value: 10}

	s := Compute(items, discount, ppn)
	// discount-then-tax: (100000 - 10000) * 1.10 = 99000
	assert.Equal(t, 99000.0, s.GrandTotal)

	// The reversed order would yield (100000 * 1.10) - 11000 = 99000 too for
	// symmetric percentages, so use asymmetric specs to pin the order down.
	s = Compute(items, Spec{Kind: KindHarga, Value: 10000}, Spec{Kind: KindPersen, Value: 10})
	// (100000 - 10000) * 1.10 = 99000, whereas tax-then-discount would be
	// 100000*1.10 - 10000 = 100000.
	assert.Equal(t, 99000.0, s.GrandTotal)
}

func TestComputeEndToEndPercent(t *testing.T) {
	// Item {yard:100, price:5000, yard_retur:10}, discount 10%, PPN 11%.
	s := Compute(
		[]LineItem{{Yard: 100, YardRetur: 10, HargaSatuan: 5000}},
		Spec{Kind: KindPersen, Value: 10},
		Spec{Kind: KindPersen, Value: 11},
	)

	assert.Equal(t, 500000.0, s.Gross)
	assert.Equal(t, 50000.0, s.ReturDeduction)
	assert.Equal(t, 450000.0, s.Net)
	assert.Equal(t, 45000.0, s.Discount)
	assert.Equal(t, 405000.0, s.Subtotal)
	assert.Equal(t, 44550.0, s.PPN)
	assert.Equal(t, 449550.0, s.GrandTotal)
}

func TestComputeEndToEndFlat(t *testing.T) {
	// Same item without retur, discount Rp 20.000 flat, PPN Rp 15.000 flat.
	s := Compute(
		[]LineItem{{Yard: 100, HargaSatuan: 5000}},
		Spec{Kind: KindHarga, Value: 20000},
		Spec{Kind: KindHarga, Value: 15000},
	)

	assert.Equal(t, 500000.0, s.Net)
	assert.Equal(t, 480000.0, s.Subtotal)
	assert.Equal(t, 495000.0, s.GrandTotal)
}

func TestComputeCoercesInvalidInput(t *testing.T) {
	s := Compute(
		[]LineItem{
			{Yard: math.NaN(), HargaSatuan: 5000},
			{Yard: 10, HargaSatuan: math.Inf(1)},
			{Yard: 10, YardRetur: -5, HargaSatuan: 1000},
		},
		Spec{Kind: KindPersen, Value: math.NaN()},
		Spec{Kind: KindHarga, Value: math.Inf(-1)},
	)

	require.False(t, math.IsNaN(s.GrandTotal))
	require.False(t, math.IsInf(s.GrandTotal, 0))
	// Only the third item contributes; the negative retur is ignored.
	assert.Equal(t, 10000.0, s.Net)
	assert.Equal(t, 10000.0, s.GrandTotal)
}

func TestRoundRupiah(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{1999.4, 1999},
		{1999.5, 2000},
		{1999.6, 2000},
		{0, 0},
		{-0.4, 0},
		{449550, 449550},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundRupiah(tt.in), "RoundRupiah(%v)", tt.in)
	}
}

func TestRoundRupiahDeterministic(t *testing.T) {
	items := []LineItem{{Yard: 33.333, HargaSatuan: 5999}}
	discount := Spec{Kind: KindPersen, Value: 7.5}
	ppn := Spec{Kind: KindPersen, Value: 11}

	first := RoundRupiah(Compute(items, discount, ppn).GrandTotal)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, RoundRupiah(Compute(items, discount, ppn).GrandTotal))
	}
}
