package fiscal_test

import (
	"testing"
	"time"

	"github.com/kipubooks/kipu-backend/internal/utils/fiscal"
	"github.com/stretchr/testify/assert"
)

func TestTaxPeriod(t *testing.T) {
	now := time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		fecha string
		want  string
	}{
		{"regular date", "05/03/2024", "202403"},
		{"single digit month preserved", "01/01/2023", "202301"},
		{"december", "31/12/2022", "202212"},
		{"empty falls back to processing month", "", "202407"},
		{"garbage falls back to processing month", "pronto", "202407"},
		{"iso format is not accepted", "2024-03-05", "202407"},
		{"out of range day falls back", "32/01/2024", "202407"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fiscal.TaxPeriod(tt.fecha, now))
		})
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, fiscal.ValidDate("28/02/2023"))
	assert.False(t, fiscal.ValidDate("30/02/2023"))
	assert.False(t, fiscal.ValidDate(""))
}
