package adapters

import (
	"fmt"
	"time"

	"github.com/de-tools/ecodent-simulator/pkg/display"
	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/google/uuid"
)

// BuildReport lays out a computed scenario for the terminal reporters.
// Values are already formatted so reporters only handle layout.
func BuildReport(
	in domain.ScenarioInput,
	res domain.ScenarioResult,
	f *display.Formatter,
	econ domain.Economics,
	generatedAt time.Time,
) *domain.Report {
	view := f.Scenario(in, res)

	inputs := domain.ReportSection{
		Title: "Scenario",
		Details: []domain.ReportDetail{
			{Name: "Location", Value: in.Region.Label()},
			{Name: "Role", Value: in.Role.Label()},
			{Name: "Cases per month", Value: f.Integer(in.CasesPerMonth), Unit: "cases"},
			{Name: "Patient fee", Value: f.Currency(in.PatientFee), Description: "Average fee charged per case"},
		},
	}
	// Only the Paris model charges the workflow cost per case.
	if in.Region == domain.RegionParis {
		inputs.Details = append(inputs.Details, domain.ReportDetail{
			Name:        "Ecodent cost",
			Value:       f.Currency(in.EcodentCost),
			Description: "Digital workflow cost per case",
		})
	}
	if in.Role == domain.RoleInvestor {
		inputs.Details = append(inputs.Details, domain.ReportDetail{
			Name:        "Initial investment",
			Value:       f.Currency(in.InitialInvestment),
			Description: "Capital committed up front",
		})
	}

	income := domain.ReportSection{
		Title: "Income",
		Details: []domain.ReportDetail{
			{Name: "Net income per case", Value: view.IncomePerCase},
			{Name: "Monthly net income", Value: view.MonthlyIncome},
			{Name: "Yearly net income", Value: view.YearlyIncome},
		},
	}

	switch in.Role {
	case domain.RoleInvestor:
		if view.PaybackMonths != "" {
			income.Details = append(income.Details, domain.ReportDetail{
				Name:        "Payback period",
				Value:       view.PaybackMonths,
				Description: "Initial investment / monthly net income",
			})
		}
	case domain.RoleDentist:
		income.Details = append(income.Details,
			domain.ReportDetail{
				Name:        "Time saved",
				Value:       view.HoursSavedPerMonth,
				Unit:        "per month",
				Description: fmt.Sprintf("%s h saved per case", f.Decimal(econ.Dentist.TimeSavedPerCaseHours)),
			},
			domain.ReportDetail{
				Name:        "Avoided investment",
				Value:       f.Currency(econ.Dentist.AvoidedInvestmentMin) + " - " + f.Currency(econ.Dentist.AvoidedInvestmentMax),
				Description: "CBCT, scanner, printer and software you do not buy",
			},
		)
	}

	return &domain.Report{
		ID:          uuid.NewString(),
		Title:       fmt.Sprintf("Ecodent360 scenario: %s, %s", in.Role.Label(), in.Region.Label()),
		Role:        in.Role,
		Region:      in.Region,
		Currency:    f.CurrencySymbol(),
		GeneratedAt: generatedAt,
		Sections:    []domain.ReportSection{inputs, income},
	}
}
