// Package advisor maps a goal horizon onto a target asset allocation.
package advisor

import (
	"github.com/peekport/planning-engine/internal/domain"
)

// HorizonFor returns the first band whose inclusive upper bound covers monthsToGoal.
// Bands are evaluated in order; the last band should be open-ended.
func HorizonFor(monthsToGoal int, bands []domain.HorizonBand) (domain.HorizonBand, error) {
	if monthsToGoal < 0 {
		return domain.HorizonBand{}, domain.InvalidInputf("months to goal cannot be negative")
	}
	if len(bands) == 0 {
		return domain.HorizonBand{}, domain.InvalidInputf("horizon bands cannot be empty")
	}

	for _, band := range bands {
		if band.Contains(monthsToGoal) {
			return band, nil
		}
	}

	return domain.HorizonBand{}, domain.InvalidInputf("no horizon band covers %d months", monthsToGoal)
}

// RecommendDetailed returns the band's full split (stock/bond/cash for the default glide path)
func RecommendDetailed(monthsToGoal int, bands []domain.HorizonBand) (domain.AllocationTarget, error) {
	band, err := HorizonFor(monthsToGoal, bands)
	if err != nil {
		return domain.AllocationTarget{}, err
	}
	return band.Split, nil
}

// Recommend returns the stock/cash target for a goal monthsToGoal away.
// Bonds count towards the cash side, so the default path yields 20/80, 50/50 and 70/30.
func Recommend(monthsToGoal int, bands []domain.HorizonBand) (domain.AllocationTarget, error) {
	split, err := RecommendDetailed(monthsToGoal, bands)
	if err != nil {
		return domain.AllocationTarget{}, err
	}
	return split.Collapse(), nil
}
