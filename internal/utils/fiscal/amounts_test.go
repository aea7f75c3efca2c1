package fiscal_test

import (
	"testing"

	"github.com/kipubooks/kipu-backend/internal/utils/fiscal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTotal(t *testing.T) {
	tests := []struct {
		total    string
		wantBase string
		wantIGV  string
	}{
		{"118.00", "100.00", "18.00"},
		{"59.00", "50.00", "9.00"},
		{"35.00", "29.66", "5.34"},
		{"0.00", "0.00", "0.00"},
		{"1.00", "0.85", "0.15"},
		{"999.99", "847.45", "152.54"},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			base, igv := fiscal.SplitTotal(total)
			assert.True(t, base.Equal(decimal.RequireFromString(tt.wantBase)), "base = %s", base)
			assert.True(t, igv.Equal(decimal.RequireFromString(tt.wantIGV)), "igv = %s", igv)
		})
	}
}

// The parts must always reconstruct the total within a cent.
func TestSplitTotalReconstructs(t *testing.T) {
	tolerance := decimal.RequireFromString("0.01")
	for _, s := range []string{"35.00", "118.00", "0.01", "17.35", "123456.78", "2.50"} {
		total := decimal.RequireFromString(s)
		base, igv := fiscal.SplitTotal(total)
		diff := total.Sub(base.Add(igv)).Abs()
		require.True(t, diff.LessThanOrEqual(tolerance), "total %s: diff %s", s, diff)
	}
}
