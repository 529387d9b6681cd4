package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRole   = errors.New("unknown role")
	ErrUnknownRegion = errors.New("unknown region")
	ErrUnknownTier   = errors.New("unknown tier")
)

type Role string

const (
	RoleDentist  Role = "dentist"
	RoleInvestor Role = "investor"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDentist, RoleInvestor:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) Label() string {
	if r == RoleInvestor {
		return "Investor"
	}
	return "Dentist"
}

type Region string

const (
	RegionDubai Region = "dubai"
	RegionParis Region = "paris"
)

// Regions lists the supported regions in display order.
var Regions = []Region{RegionDubai, RegionParis}

func ParseRegion(s string) (Region, error) {
	switch Region(s) {
	case RegionDubai, RegionParis:
		return Region(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, s)
	}
}

func (r Region) Label() string {
	if r == RegionParis {
		return "Paris / France"
	}
	return "Dubai / GCC"
}

// ScenarioInput is the user-editable tuple the calculator derives from.
// Numeric fields are expected to be clamped before Compute sees them.
type ScenarioInput struct {
	Role              Role
	Region            Region
	CasesPerMonth     int
	PatientFee        float64
	EcodentCost       float64 // paris only
	InitialInvestment float64 // investor only
}

// ScenarioResult is derived from a ScenarioInput and never stored.
type ScenarioResult struct {
	IncomePerCase      float64
	MonthlyIncome      float64
	YearlyIncome       float64
	PaybackMonths      *float64 // nil when payback is not meaningful
	HoursSavedPerMonth float64
}
