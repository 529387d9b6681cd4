package domain

import "fmt"

type Tier string

const (
	TierConservative Tier = "conservative"
	TierRealistic    Tier = "realistic"
	TierAmbitious    Tier = "ambitious"
)

// Tiers lists the preset tiers in display order.
var Tiers = []Tier{TierConservative, TierRealistic, TierAmbitious}

func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierConservative, TierRealistic, TierAmbitious:
		return Tier(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
}

type Preset struct {
	Tier          Tier
	CasesPerMonth int
	PatientFee    float64
}
