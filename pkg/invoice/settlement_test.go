package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcilePaymentsLunas(t *testing.T) {
	got := ReconcilePayments(StatusLunas, 1000, nil)
	assert.Equal(t, Settlement{TotalPaid: 1000, Remaining: 0, Settled: true}, got)
}

func TestReconcilePaymentsBerjangka(t *testing.T) {
	tests := []struct {
		name     string
		payments []float64
		want     Settlement
	}{
		{
			name:     "exactly settled",
			payments: []float64{400, 600},
			want:     Settlement{TotalPaid: 1000, Remaining: 0, Settled: true},
		},
		{
			name:     "one rupiah short",
			payments: []float64{999},
			want:     Settlement{TotalPaid: 999, Remaining: 1, Settled: false},
		},
		{
			name:     "overpaid still settled, remaining never negative",
			payments: []float64{1001},
			want:     Settlement{TotalPaid: 1001, Remaining: 0, Settled: true},
		},
		{
			name:     "no payments yet",
			payments: nil,
			want:     Settlement{TotalPaid: 0, Remaining: 1000, Settled: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReconcilePayments(StatusBerjangka, 1000, tt.payments))
		})
	}
}

func TestState(t *testing.T) {
	assert.Equal(t, StateLunas, State(StatusLunas, 1000, nil))
	assert.Equal(t, StateBerjangkaUnsettled, State(StatusBerjangka, 1000, []float64{500}))
	assert.Equal(t, StateBerjangkaSettled, State(StatusBerjangka, 1000, []float64{500, 500}))
	assert.Equal(t, StateBerjangkaSettled, State(StatusBerjangka, 1000, []float64{1500}))
}

func TestPaymentStatusValid(t *testing.T) {
	assert.True(t, StatusLunas.Valid())
	assert.True(t, StatusBerjangka.Valid())
	assert.False(t, PaymentStatus("2").Valid())
	assert.False(t, PaymentStatus("").Valid())
}
