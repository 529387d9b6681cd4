package api

type Preset struct {
	Tier          string  `json:"tier"`
	CasesPerMonth int     `json:"cases_per_month"`
	PatientFee    float64 `json:"patient_fee"`
}

type RegionPresets struct {
	Region  string   `json:"region"`
	Label   string   `json:"label"`
	Presets []Preset `json:"presets"`
}

type RegionEconomics struct {
	Region         string  `json:"region"`
	SharePct       float64 `json:"share_pct,omitempty"`
	RevenuePerCase float64 `json:"revenue_per_case,omitempty"`
	CostPerCase    float64 `json:"cost_per_case"`
}

type DentistAssumptions struct {
	SharePct              float64 `json:"share_pct"`
	TimeSavedPerCaseHours float64 `json:"time_saved_per_case_hours"`
	AvoidedInvestmentMin  float64 `json:"avoided_investment_min"`
	AvoidedInvestmentMax  float64 `json:"avoided_investment_max"`
}

type Economics struct {
	Investor []RegionEconomics  `json:"investor"`
	Dentist  DentistAssumptions `json:"dentist"`
}

type WorkflowStep struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type Workflow struct {
	Steps        []WorkflowStep `json:"steps"`
	Included     []string       `json:"included"`
	AvoidedCosts []string       `json:"avoided_costs"`
}

type Profile struct {
	Name string `json:"name"`
}
