package invoice

// PaymentStatus is the payment mode recorded on a transaction header,
// using the wire values of the original system.
type PaymentStatus string

const (
	// StatusLunas marks a lump-sum transaction, settled at creation.
	StatusLunas PaymentStatus = "0"
	// StatusBerjangka marks an installment transaction.
	StatusBerjangka PaymentStatus = "1"
)

// Valid reports whether the status is one of the known wire values.
func (s PaymentStatus) Valid() bool {
	return s == StatusLunas || s == StatusBerjangka
}

// Settlement reconciles installment payments against a grand total.
type Settlement struct {
	TotalPaid float64 `json:"total_paid"`
	Remaining float64 `json:"remaining"`
	Settled   bool    `json:"settled"`
}

// ReconcilePayments derives the payment position of a transaction. Lump-sum
// transactions are settled by definition. For installment transactions the
// remaining amount never goes negative: an overpayment still reports
// remaining zero.
func ReconcilePayments(status PaymentStatus, grandTotal float64, payments []float64) Settlement {
	grandTotal = num(grandTotal)
	if status != StatusBerjangka {
		return Settlement{TotalPaid: grandTotal, Remaining: 0, Settled: true}
	}

	var paid float64
	for _, p := range payments {
		paid += num(p)
	}

	remaining := grandTotal - paid
	if remaining < 0 {
		remaining = 0
	}
	return Settlement{
		TotalPaid: paid,
		Remaining: remaining,
		Settled:   paid >= grandTotal,
	}
}

// LifecycleState is the payment lifecycle of a transaction. Lunas and
// BerjangkaSettled are terminal; settlement is never revoked because no
// payment-reversal operation exists.
type LifecycleState string

const (
	StateLunas              LifecycleState = "lunas"
	StateBerjangkaUnsettled LifecycleState = "berjangka_berjalan"
	StateBerjangkaSettled   LifecycleState = "berjangka_lunas"
)

// State classifies a transaction's payment lifecycle from its status,
// grand total and recorded payments.
func State(status PaymentStatus, grandTotal float64, payments []float64) LifecycleState {
	if status != StatusBerjangka {
		return StateLunas
	}
	if ReconcilePayments(status, grandTotal, payments).Settled {
		return StateBerjangkaSettled
	}
	return StateBerjangkaUnsettled
}
