package scenario

import (
	"testing"

	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/store/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator() *Calculator {
	return NewCalculator(pricing.NewDefaultStore())
}

func TestCalculator_IncomePerCase(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name     string
		input    domain.ScenarioInput
		expected float64
	}{
		{
			name:     "dentist dubai takes half the fee",
			input:    domain.ScenarioInput{Role: domain.RoleDentist, Region: domain.RegionDubai, PatientFee: 2800},
			expected: 1400,
		},
		{
			name: "dentist paris pays the ecodent cost",
			input: domain.ScenarioInput{
				Role: domain.RoleDentist, Region: domain.RegionParis, PatientFee: 2200, EcodentCost: 800,
			},
			expected: 1400,
		},
		{
			name:     "investor dubai share minus cost",
			input:    domain.ScenarioInput{Role: domain.RoleInvestor, Region: domain.RegionDubai, PatientFee: 2800},
			expected: 875,
		},
		{
			name: "investor paris fixed margin",
			input: domain.ScenarioInput{
				Role: domain.RoleInvestor, Region: domain.RegionParis, PatientFee: 2200, EcodentCost: 800,
			},
			expected: 890,
		},
		{
			name: "investor paris ignores fee and cost",
			input: domain.ScenarioInput{
				Role: domain.RoleInvestor, Region: domain.RegionParis, PatientFee: 99999, EcodentCost: 12345,
			},
			expected: 890,
		},
		{
			name:     "investor dubai can go negative",
			input:    domain.ScenarioInput{Role: domain.RoleInvestor, Region: domain.RegionDubai, PatientFee: 800},
			expected: -125,
		},
		{
			name:     "unknown pair yields zero",
			input:    domain.ScenarioInput{Role: "owner", Region: domain.RegionDubai, PatientFee: 2800},
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := calc.Compute(tc.input)
			assert.Equal(t, tc.expected, res.IncomePerCase)
		})
	}
}

func TestCalculator_MonthlyAndYearly(t *testing.T) {
	calc := newTestCalculator()

	for _, role := range []domain.Role{domain.RoleDentist, domain.RoleInvestor} {
		for _, region := range domain.Regions {
			for _, cases := range []int{0, 1, 20, 137, 200} {
				in := domain.ScenarioInput{
					Role: role, Region: region, CasesPerMonth: cases,
					PatientFee: 2600, EcodentCost: 700, InitialInvestment: 150000,
				}
				res := calc.Compute(in)
				assert.Equal(t, res.IncomePerCase*float64(cases), res.MonthlyIncome)
				assert.Equal(t, res.MonthlyIncome*12, res.YearlyIncome)
			}
		}
	}
}

func TestCalculator_Payback(t *testing.T) {
	calc := newTestCalculator()

	t.Run("investor with positive income", func(t *testing.T) {
		res := calc.Compute(domain.ScenarioInput{
			Role: domain.RoleInvestor, Region: domain.RegionDubai,
			CasesPerMonth: 20, PatientFee: 2800, InitialInvestment: 150000,
		})
		require.NotNil(t, res.PaybackMonths)
		assert.Equal(t, 17500.0, res.MonthlyIncome)
		assert.InDelta(t, 8.571, *res.PaybackMonths, 0.001)
	})

	tests := []struct {
		name  string
		input domain.ScenarioInput
	}{
		{
			name: "dentist never has payback",
			input: domain.ScenarioInput{
				Role: domain.RoleDentist, Region: domain.RegionDubai,
				CasesPerMonth: 20, PatientFee: 2800, InitialInvestment: 150000,
			},
		},
		{
			name: "zero cases means zero income",
			input: domain.ScenarioInput{
				Role: domain.RoleInvestor, Region: domain.RegionParis, InitialInvestment: 150000,
			},
		},
		{
			name: "negative income",
			input: domain.ScenarioInput{
				Role: domain.RoleInvestor, Region: domain.RegionDubai,
				CasesPerMonth: 20, PatientFee: 100, InitialInvestment: 150000,
			},
		},
		{
			name: "no investment",
			input: domain.ScenarioInput{
				Role: domain.RoleInvestor, Region: domain.RegionParis, CasesPerMonth: 20,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, calc.Compute(tc.input).PaybackMonths)
		})
	}
}

func TestCalculator_HoursSaved(t *testing.T) {
	calc := newTestCalculator()

	for cases := 0; cases <= MaxCasesPerMonth; cases++ {
		dentist := calc.Compute(domain.ScenarioInput{
			Role: domain.RoleDentist, Region: domain.RegionParis, CasesPerMonth: cases,
		})
		investor := calc.Compute(domain.ScenarioInput{
			Role: domain.RoleInvestor, Region: domain.RegionParis, CasesPerMonth: cases,
		})
		assert.Equal(t, float64(cases)*0.5, dentist.HoursSavedPerMonth)
		assert.Zero(t, investor.HoursSavedPerMonth)
	}
}

func TestCalculator_Deterministic(t *testing.T) {
	calc := newTestCalculator()
	in := domain.ScenarioInput{
		Role: domain.RoleInvestor, Region: domain.RegionDubai,
		CasesPerMonth: 33, PatientFee: 3100, InitialInvestment: 90000,
	}

	first := calc.Compute(in)
	second := calc.Compute(in)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.ScenarioInput{
		Role: domain.RoleInvestor, Region: domain.RegionDubai,
		CasesPerMonth: 33, PatientFee: 3100, InitialInvestment: 90000,
	}, in)
}

func TestCalculator_UsesInjectedEconomics(t *testing.T) {
	tables := pricing.DefaultTables()
	tables.Economics.Investor[domain.RegionParis] = domain.RegionEconomics{RevenuePerCase: 1500, CostPerCase: 500}
	store, err := pricing.NewStore(tables)
	require.NoError(t, err)

	res := NewCalculator(store).Compute(domain.ScenarioInput{
		Role: domain.RoleInvestor, Region: domain.RegionParis, CasesPerMonth: 2,
	})

	assert.Equal(t, 1000.0, res.IncomePerCase)
	assert.Equal(t, 2000.0, res.MonthlyIncome)
}
