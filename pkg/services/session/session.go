package session

import (
	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/services/preset"
	"github.com/de-tools/ecodent-simulator/pkg/services/scenario"
)

const (
	defaultEcodentCost       = 800
	defaultInitialInvestment = 150000
)

// Session holds the editable input tuple and recomputes the result after
// every accepted mutation. A failed mutation leaves the session unchanged.
// Not safe for concurrent use.
type Session struct {
	calc    *scenario.Calculator
	presets preset.Service
	input   domain.ScenarioInput
	result  domain.ScenarioResult
}

// New starts a dentist session in Dubai seeded with the realistic preset.
func New(calc *scenario.Calculator, presets preset.Service) (*Session, error) {
	p, err := presets.GetPreset(domain.RegionDubai, domain.TierRealistic)
	if err != nil {
		return nil, err
	}
	return Restore(calc, presets, domain.ScenarioInput{
		Role:              domain.RoleDentist,
		Region:            domain.RegionDubai,
		CasesPerMonth:     p.CasesPerMonth,
		PatientFee:        p.PatientFee,
		EcodentCost:       defaultEcodentCost,
		InitialInvestment: defaultInitialInvestment,
	}), nil
}

// Restore rebuilds a session from client-held input. Numeric fields are clamped.
func Restore(calc *scenario.Calculator, presets preset.Service, input domain.ScenarioInput) *Session {
	s := &Session{calc: calc, presets: presets}
	s.commit(scenario.ClampInput(input))
	return s
}

func (s *Session) Input() domain.ScenarioInput {
	return s.input
}

func (s *Session) Result() domain.ScenarioResult {
	return s.result
}

// SelectRole changes the perspective only; no field is reset.
func (s *Session) SelectRole(role domain.Role) domain.ScenarioResult {
	next := s.input
	next.Role = role
	s.commit(next)
	return s.result
}

// SelectRegion switches market and resets cases and fee to the region's
// realistic preset.
func (s *Session) SelectRegion(region domain.Region) (domain.ScenarioResult, error) {
	p, err := s.presets.GetPreset(region, domain.TierRealistic)
	if err != nil {
		return s.result, err
	}
	next := s.input
	next.Region = region
	next.CasesPerMonth = p.CasesPerMonth
	next.PatientFee = p.PatientFee
	s.commit(next)
	return s.result, nil
}

func (s *Session) ApplyPreset(tier domain.Tier) (domain.ScenarioResult, error) {
	p, err := s.presets.GetPreset(s.input.Region, tier)
	if err != nil {
		return s.result, err
	}
	next := s.input
	next.CasesPerMonth = p.CasesPerMonth
	next.PatientFee = p.PatientFee
	s.commit(next)
	return s.result, nil
}

func (s *Session) SetCasesPerMonth(n int) domain.ScenarioResult {
	next := s.input
	next.CasesPerMonth = n
	s.commit(next)
	return s.result
}

func (s *Session) SetPatientFee(v float64) domain.ScenarioResult {
	next := s.input
	next.PatientFee = v
	s.commit(next)
	return s.result
}

func (s *Session) SetEcodentCost(v float64) domain.ScenarioResult {
	next := s.input
	next.EcodentCost = v
	s.commit(next)
	return s.result
}

func (s *Session) SetInitialInvestment(v float64) domain.ScenarioResult {
	next := s.input
	next.InitialInvestment = v
	s.commit(next)
	return s.result
}

func (s *Session) commit(next domain.ScenarioInput) {
	next = scenario.ClampInput(next)
	s.input = next
	s.result = s.calc.Compute(next)
}
