package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places projected values are rounded to each month
const MoneyScale int32 = 4

// MaxSimulationMonths caps every projection and goal horizon (100 years)
const MaxSimulationMonths = 1200

// ProjectionPoint is the projected portfolio value at a month offset.
// GoalMarker carries the goal amount from the goal month onward and is nil before it.
type ProjectionPoint struct {
	Month      int
	Value      decimal.Decimal
	GoalMarker *decimal.Decimal
}

// Outlook is the headline verdict attached to a goal probability
type Outlook string

const (
	OutlookPromising       Outlook = "promising"
	OutlookPossible        Outlook = "possible"
	OutlookNeedsAdjustment Outlook = "needs_adjustment"
)
