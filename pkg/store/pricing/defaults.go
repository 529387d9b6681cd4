package pricing

import "github.com/de-tools/ecodent-simulator/pkg/models/domain"

// DefaultTables returns the built-in market assumptions.
func DefaultTables() Tables {
	return Tables{
		Economics: domain.Economics{
			Investor: map[domain.Region]domain.RegionEconomics{
				domain.RegionDubai: {SharePct: 0.5, CostPerCase: 525},
				domain.RegionParis: {RevenuePerCase: 1370, CostPerCase: 480},
			},
			Dentist: domain.DentistAssumptions{
				SharePct:              0.5,
				TimeSavedPerCaseHours: 0.5,
				AvoidedInvestmentMin:  80000,
				AvoidedInvestmentMax:  100000,
			},
		},
		Presets: map[domain.Region]map[domain.Tier]domain.Preset{
			domain.RegionDubai: {
				domain.TierConservative: {Tier: domain.TierConservative, CasesPerMonth: 10, PatientFee: 2600},
				domain.TierRealistic:    {Tier: domain.TierRealistic, CasesPerMonth: 20, PatientFee: 2800},
				domain.TierAmbitious:    {Tier: domain.TierAmbitious, CasesPerMonth: 40, PatientFee: 3200},
			},
			domain.RegionParis: {
				domain.TierConservative: {Tier: domain.TierConservative, CasesPerMonth: 10, PatientFee: 2000},
				domain.TierRealistic:    {Tier: domain.TierRealistic, CasesPerMonth: 20, PatientFee: 2200},
				domain.TierAmbitious:    {Tier: domain.TierAmbitious, CasesPerMonth: 40, PatientFee: 2500},
			},
		},
	}
}
