package domain

import "strings"

// RiskLevel selects the expected annual return used for growth projections
type RiskLevel string

const (
	RiskConservative RiskLevel = "conservative"
	RiskModerate     RiskLevel = "moderate"
	RiskAggressive   RiskLevel = "aggressive"
)

// ParseRiskLevel converts user input (case-insensitive) into a RiskLevel.
// An empty string selects RiskModerate.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RiskModerate, nil
	case string(RiskConservative):
		return RiskConservative, nil
	case string(RiskModerate):
		return RiskModerate, nil
	case string(RiskAggressive):
		return RiskAggressive, nil
	}
	return "", InvalidInputf("risk level must be conservative, moderate or aggressive, got %q", s)
}
