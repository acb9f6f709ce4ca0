package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPaymentInstruction_RecomputesTotals(t *testing.T) {
	mustDecimal := func(s string) Decimal {
		d, err := NewDecimal(s)
		assert.NoError(t, err)
		return d
	}

	tests := []struct {
		name      string
		amounts   []string
		wantSum   string
		wantCount int
	}{
		{
			name:      "single transaction",
			amounts:   []string{"120.00"},
			wantSum:   "120.00",
			wantCount: 1,
		},
		{
			name:      "sums without float drift",
			amounts:   []string{"0.10", "0.20", "0.30"},
			wantSum:   "0.60",
			wantCount: 3,
		},
		{
			name:      "large batch",
			amounts:   []string{"999999.99", "0.01", "1234.56"},
			wantSum:   "1001234.56",
			wantCount: 3,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var txs []PaymentTransaction
			for _, a := range tt.amounts {
				txs = append(txs, PaymentTransaction{
					Amount:   mustDecimal(a),
					Currency: "EUR",
				})
			}

			instruction := NewPaymentInstruction(
				"0102030412345678deadbeef",
				"0102030412345678",
				time.Now(),
				Party{Name: "Debtor GmbH"},
				time.Now().AddDate(0, 0, 1),
				"EUR",
				txs,
			)

			assert.Equal(t, tt.wantSum, instruction.ControlSum().StringFixed(2))
			assert.Equal(t, tt.wantCount, instruction.NumberOfTransactions())
		})
	}
}
