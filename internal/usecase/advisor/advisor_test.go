package advisor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peekport/planning-engine/internal/domain"
)

func TestRecommend_BandBoundaries(t *testing.T) {
	bands := domain.DefaultHorizonBands()

	tests := []struct {
		months    int
		wantStock int64
		wantCash  int64
	}{
		{0, 20, 80},
		{12, 20, 80},
		{13, 50, 50},
		{60, 50, 50},
		{61, 70, 30},
		{360, 70, 30},
	}

	for _, tt := range tests {
		target, err := Recommend(tt.months, bands)
		require.NoError(t, err, "months=%d", tt.months)
		assert.True(t, target.Stock().Equal(decimal.NewFromInt(tt.wantStock)), "months=%d stock=%s", tt.months, target.Stock())
		assert.True(t, target.Cash().Equal(decimal.NewFromInt(tt.wantCash)), "months=%d cash=%s", tt.months, target.Cash())
		assert.NoError(t, target.Validate(domain.DefaultRatioTolerance))
	}
}

func TestRecommendDetailed_ThreeWay(t *testing.T) {
	bands := domain.DefaultHorizonBands()

	target, err := RecommendDetailed(24, bands)
	require.NoError(t, err)

	assert.True(t, target.Stock().Equal(decimal.NewFromInt(50)))
	assert.True(t, target.Ratio(domain.InstrumentBond).Equal(decimal.NewFromInt(40)))
	assert.True(t, target.Cash().Equal(decimal.NewFromInt(10)))
}

func TestHorizonFor(t *testing.T) {
	bands := domain.DefaultHorizonBands()

	band, err := HorizonFor(6, bands)
	require.NoError(t, err)
	assert.Equal(t, domain.HorizonShort, band.Horizon)

	band, err = HorizonFor(61, bands)
	require.NoError(t, err)
	assert.Equal(t, domain.HorizonLong, band.Horizon)
}

func TestRecommend_SameInputSameOutput(t *testing.T) {
	bands := domain.DefaultHorizonBands()

	first, err := Recommend(40, bands)
	require.NoError(t, err)
	second, err := Recommend(40, bands)
	require.NoError(t, err)

	assert.True(t, first.Equal(second, decimal.Zero))
}

func TestRecommend_InvalidInput(t *testing.T) {
	_, err := Recommend(-1, domain.DefaultHorizonBands())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Recommend(10, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Closed bands that do not cover the horizon
	closed := []domain.HorizonBand{{MaxMonths: 12, Horizon: domain.HorizonShort}}
	_, err = Recommend(24, closed)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "no horizon band covers 24 months")
}
