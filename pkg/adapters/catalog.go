package adapters

import (
	"github.com/de-tools/ecodent-simulator/pkg/models/api"
	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
)

func MapPresetDomainToApi(p domain.Preset) api.Preset {
	return api.Preset{
		Tier:          string(p.Tier),
		CasesPerMonth: p.CasesPerMonth,
		PatientFee:    p.PatientFee,
	}
}

func MapRegionPresetsDomainToApi(region domain.Region, presets []domain.Preset) api.RegionPresets {
	out := api.RegionPresets{
		Region:  string(region),
		Label:   region.Label(),
		Presets: make([]api.Preset, 0, len(presets)),
	}
	for _, p := range presets {
		out.Presets = append(out.Presets, MapPresetDomainToApi(p))
	}
	return out
}

// MapEconomicsDomainToApi lists investor regions in the fixed region order.
func MapEconomicsDomainToApi(econ domain.Economics) api.Economics {
	out := api.Economics{
		Investor: make([]api.RegionEconomics, 0, len(econ.Investor)),
		Dentist: api.DentistAssumptions{
			SharePct:              econ.Dentist.SharePct,
			TimeSavedPerCaseHours: econ.Dentist.TimeSavedPerCaseHours,
			AvoidedInvestmentMin:  econ.Dentist.AvoidedInvestmentMin,
			AvoidedInvestmentMax:  econ.Dentist.AvoidedInvestmentMax,
		},
	}
	for _, region := range domain.Regions {
		re, ok := econ.Investor[region]
		if !ok {
			continue
		}
		out.Investor = append(out.Investor, api.RegionEconomics{
			Region:         string(region),
			SharePct:       re.SharePct,
			RevenuePerCase: re.RevenuePerCase,
			CostPerCase:    re.CostPerCase,
		})
	}
	return out
}

func MapWorkflowDomainToApi(steps []domain.WorkflowStep, included, avoided []string) api.Workflow {
	out := api.Workflow{
		Steps:        make([]api.WorkflowStep, 0, len(steps)),
		Included:     included,
		AvoidedCosts: avoided,
	}
	for _, s := range steps {
		out.Steps = append(out.Steps, api.WorkflowStep{
			ID:      s.ID,
			Title:   s.Title,
			Bullets: s.Bullets,
		})
	}
	return out
}

func MapProfilesToApi(names []string) []api.Profile {
	out := make([]api.Profile, 0, len(names))
	for _, n := range names {
		out = append(out, api.Profile{Name: n})
	}
	return out
}
