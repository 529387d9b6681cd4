package adapters

import (
	"fmt"
	"time"

	"github.com/de-tools/ecodent-simulator/pkg/display"
	"github.com/de-tools/ecodent-simulator/pkg/models/api"
	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/services/scenario"
	"github.com/de-tools/ecodent-simulator/pkg/services/session"
)

func MapScenarioInputDomainToApi(in domain.ScenarioInput) api.ScenarioInput {
	return api.ScenarioInput{
		Role:              string(in.Role),
		Region:            string(in.Region),
		CasesPerMonth:     in.CasesPerMonth,
		PatientFee:        in.PatientFee,
		EcodentCost:       in.EcodentCost,
		InitialInvestment: in.InitialInvestment,
	}
}

// MapScenarioInputApiToDomain validates the enums; numbers are clamped later.
func MapScenarioInputApiToDomain(in api.ScenarioInput) (domain.ScenarioInput, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return domain.ScenarioInput{}, err
	}
	region, err := domain.ParseRegion(in.Region)
	if err != nil {
		return domain.ScenarioInput{}, err
	}
	return domain.ScenarioInput{
		Role:              role,
		Region:            region,
		CasesPerMonth:     in.CasesPerMonth,
		PatientFee:        in.PatientFee,
		EcodentCost:       in.EcodentCost,
		InitialInvestment: in.InitialInvestment,
	}, nil
}

func MapScenarioResultDomainToApi(res domain.ScenarioResult) api.ScenarioResult {
	out := api.ScenarioResult{
		IncomePerCase:      res.IncomePerCase,
		MonthlyIncome:      res.MonthlyIncome,
		YearlyIncome:       res.YearlyIncome,
		HoursSavedPerMonth: res.HoursSavedPerMonth,
	}
	if res.PaybackMonths != nil {
		payback := *res.PaybackMonths
		out.PaybackMonths = &payback
	}
	return out
}

func MapScenarioDisplayToApi(view display.Scenario) api.ScenarioDisplay {
	return api.ScenarioDisplay{
		IncomePerCase:      view.IncomePerCase,
		MonthlyIncome:      view.MonthlyIncome,
		YearlyIncome:       view.YearlyIncome,
		PaybackMonths:      view.PaybackMonths,
		HoursSavedPerMonth: view.HoursSavedPerMonth,
	}
}

func MapCalculation(
	id string,
	at time.Time,
	in domain.ScenarioInput,
	res domain.ScenarioResult,
	f *display.Formatter,
) api.Calculation {
	return api.Calculation{
		CalculationID: id,
		CalculatedAt:  at,
		Input:         MapScenarioInputDomainToApi(in),
		Result:        MapScenarioResultDomainToApi(res),
		Display:       MapScenarioDisplayToApi(f.Scenario(in, res)),
	}
}

func MapEventApiToDomain(ev api.Event) session.Event {
	return session.Event{Type: ev.Type, Value: ev.Value}
}

// ParseScenarioQuery reads raw form-style values; numeric fields that do
// not parse count as zero.
func ParseScenarioQuery(get func(string) string) (domain.ScenarioInput, error) {
	roleRaw := get("role")
	if roleRaw == "" {
		roleRaw = string(domain.RoleDentist)
	}
	regionRaw := get("region")
	if regionRaw == "" {
		regionRaw = string(domain.RegionDubai)
	}
	role, err := domain.ParseRole(roleRaw)
	if err != nil {
		return domain.ScenarioInput{}, fmt.Errorf("invalid 'role': %w", err)
	}
	region, err := domain.ParseRegion(regionRaw)
	if err != nil {
		return domain.ScenarioInput{}, fmt.Errorf("invalid 'region': %w", err)
	}
	return domain.ScenarioInput{
		Role:              role,
		Region:            region,
		CasesPerMonth:     scenario.ParseCases(get("cases_per_month")),
		PatientFee:        scenario.ParseAmount(get("patient_fee")),
		EcodentCost:       scenario.ParseAmount(get("ecodent_cost")),
		InitialInvestment: scenario.ParseAmount(get("initial_investment")),
	}, nil
}
