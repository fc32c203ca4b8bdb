package postgres

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peekport/planning-engine/internal/domain"
)

func valid(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name     string
		stock    sql.NullString
		bond     sql.NullString
		cash     sql.NullString
		expected *domain.AllocationTarget
		wantErr  bool
	}{
		{
			name:     "No stored target",
			expected: nil,
		},
		{
			name:     "Stock without cash is treated as unset",
			stock:    valid("70"),
			expected: nil,
		},
		{
			name:  "Two-way target",
			stock: valid("70.0000"),
			bond:  valid("0.0000"),
			cash:  valid("30.0000"),
			expected: func() *domain.AllocationTarget {
				t := domain.NewAllocationTarget(decimal.NewFromInt(70), decimal.NewFromInt(30))
				return &t
			}(),
		},
		{
			name:  "Three-way target",
			stock: valid("50"),
			bond:  valid("40"),
			cash:  valid("10"),
			expected: func() *domain.AllocationTarget {
				t := domain.NewThreeWayTarget(decimal.NewFromInt(50), decimal.NewFromInt(40), decimal.NewFromInt(10))
				return &t
			}(),
		},
		{
			name:    "Corrupt ratio",
			stock:   valid("seventy"),
			cash:    valid("30"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := parseTarget(tt.stock, tt.bond, tt.cash)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, target)
				return
			}
			require.NotNil(t, target)
			assert.ElementsMatch(t, tt.expected.Classes(), target.Classes())
			assert.True(t, tt.expected.Equal(*target, decimal.Zero))
		})
	}
}

func TestParseDecimals(t *testing.T) {
	values, err := parseDecimals("1.5", "0", "-2")
	require.NoError(t, err)
	assert.True(t, values[0].Equal(decimal.RequireFromString("1.5")))
	assert.True(t, values[2].IsNegative())

	_, err = parseDecimals("1", "x")
	assert.Error(t, err)
}
