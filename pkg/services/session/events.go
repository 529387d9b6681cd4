package session

import (
	"errors"
	"fmt"

	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/services/scenario"
)

var ErrUnknownEvent = errors.New("unknown event")

const (
	EventSelectRole           = "select_role"
	EventSelectRegion         = "select_region"
	EventApplyPreset          = "apply_preset"
	EventSetCasesPerMonth     = "set_cases_per_month"
	EventSetPatientFee        = "set_patient_fee"
	EventSetEcodentCost       = "set_ecodent_cost"
	EventSetInitialInvestment = "set_initial_investment"
)

// Event is a raw user edit as it arrives from a form, a request or a terminal.
type Event struct {
	Type  string
	Value string
}

type eventHandler func(s *Session, value string) error

var registry = map[string]eventHandler{
	EventSelectRole: func(s *Session, value string) error {
		role, err := domain.ParseRole(value)
		if err != nil {
			return err
		}
		s.SelectRole(role)
		return nil
	},
	EventSelectRegion: func(s *Session, value string) error {
		region, err := domain.ParseRegion(value)
		if err != nil {
			return err
		}
		_, err = s.SelectRegion(region)
		return err
	},
	EventApplyPreset: func(s *Session, value string) error {
		_, err := s.ApplyPreset(domain.Tier(value))
		return err
	},
	EventSetCasesPerMonth: func(s *Session, value string) error {
		s.SetCasesPerMonth(scenario.ParseCases(value))
		return nil
	},
	EventSetPatientFee: func(s *Session, value string) error {
		s.SetPatientFee(scenario.ParseAmount(value))
		return nil
	},
	EventSetEcodentCost: func(s *Session, value string) error {
		s.SetEcodentCost(scenario.ParseAmount(value))
		return nil
	},
	EventSetInitialInvestment: func(s *Session, value string) error {
		s.SetInitialInvestment(scenario.ParseAmount(value))
		return nil
	},
}

// EventTypes lists the accepted event names.
func EventTypes() []string {
	return []string{
		EventSelectRole, EventSelectRegion, EventApplyPreset,
		EventSetCasesPerMonth, EventSetPatientFee, EventSetEcodentCost, EventSetInitialInvestment,
	}
}

// Apply dispatches a named event and returns the recomputed result.
func (s *Session) Apply(ev Event) (domain.ScenarioResult, error) {
	handler, ok := registry[ev.Type]
	if !ok {
		return s.result, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	if err := handler(s, ev.Value); err != nil {
		return s.result, fmt.Errorf("%s: %w", ev.Type, err)
	}
	return s.result, nil
}
