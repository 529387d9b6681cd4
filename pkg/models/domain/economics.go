package domain

// RegionEconomics holds the investor-side model for one region. Dubai uses
// a revenue share of the patient fee, Paris a flat revenue per case.
type RegionEconomics struct {
	SharePct       float64
	RevenuePerCase float64
	CostPerCase    float64
}

type DentistAssumptions struct {
	SharePct              float64 // dubai 50/50 model
	TimeSavedPerCaseHours float64
	AvoidedInvestmentMin  float64
	AvoidedInvestmentMax  float64
}

type Economics struct {
	Investor map[Region]RegionEconomics
	Dentist  DentistAssumptions
}
