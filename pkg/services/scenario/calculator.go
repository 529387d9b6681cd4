package scenario

import (
	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/store/pricing"
)

const monthsPerYear = 12

type incomeRule func(in domain.ScenarioInput, econ domain.Economics) float64

type ruleKey struct {
	role   domain.Role
	region domain.Region
}

// incomeRules maps every (role, region) pair to its income-per-case formula.
var incomeRules = map[ruleKey]incomeRule{
	{domain.RoleDentist, domain.RegionDubai}: func(in domain.ScenarioInput, econ domain.Economics) float64 {
		return in.PatientFee * econ.Dentist.SharePct
	},
	{domain.RoleDentist, domain.RegionParis}: func(in domain.ScenarioInput, _ domain.Economics) float64 {
		return in.PatientFee - in.EcodentCost
	},
	{domain.RoleInvestor, domain.RegionDubai}: func(in domain.ScenarioInput, econ domain.Economics) float64 {
		dubai := econ.Investor[domain.RegionDubai]
		return in.PatientFee*dubai.SharePct - dubai.CostPerCase
	},
	// Investor income in Paris is a fixed margin; fee and cost inputs are ignored.
	{domain.RoleInvestor, domain.RegionParis}: func(_ domain.ScenarioInput, econ domain.Economics) float64 {
		paris := econ.Investor[domain.RegionParis]
		return paris.RevenuePerCase - paris.CostPerCase
	},
}

// Calculator derives a ScenarioResult from a ScenarioInput. It holds an
// immutable snapshot of the economics and is safe for concurrent use.
type Calculator struct {
	economics domain.Economics
}

func NewCalculator(store pricing.Store) *Calculator {
	return &Calculator{economics: store.GetEconomics()}
}

func (c *Calculator) Economics() domain.Economics {
	return c.economics
}

// Compute is total and side-effect free. Inputs must already be clamped.
func (c *Calculator) Compute(in domain.ScenarioInput) domain.ScenarioResult {
	var perCase float64
	if rule, ok := incomeRules[ruleKey{in.Role, in.Region}]; ok {
		perCase = rule(in, c.economics)
	}

	monthly := perCase * float64(in.CasesPerMonth)
	res := domain.ScenarioResult{
		IncomePerCase: perCase,
		MonthlyIncome: monthly,
		YearlyIncome:  monthly * monthsPerYear,
	}

	if in.Role == domain.RoleInvestor && monthly > 0 && in.InitialInvestment > 0 {
		payback := in.InitialInvestment / monthly
		res.PaybackMonths = &payback
	}

	if in.Role == domain.RoleDentist {
		res.HoursSavedPerMonth = float64(in.CasesPerMonth) * c.economics.Dentist.TimeSavedPerCaseHours
	}

	return res
}
