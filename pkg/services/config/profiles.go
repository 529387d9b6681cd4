package config

import (
	"context"
	"errors"
	"fmt"
	"os/user"
	"path/filepath"

	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/services/scenario"
	"gopkg.in/ini.v1"
)

var ErrProfileNotFound = errors.New("profile not found")

const profilesFileName = ".ecodentcfg"

// DefaultProfilesPath is $HOME/.ecodentcfg.
func DefaultProfilesPath() string {
	usr, err := user.Current()
	if err != nil {
		return profilesFileName
	}
	return filepath.Join(usr.HomeDir, profilesFileName)
}

// Registry exposes saved scenario profiles, one ini section per profile:
//
//	[clinic-dubai]
//	role = dentist
//	region = dubai
//	cases_per_month = 20
//	patient_fee = 2800
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*domain.ScenarioProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles file: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

// NewEmptyRegistry is used when no profiles file is configured.
func NewEmptyRegistry() Registry {
	return &cfgRegistry{cfg: ini.Empty()}
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*domain.ScenarioProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	role, err := domain.ParseRole(section.Key("role").MustString(string(domain.RoleDentist)))
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", name, err)
	}
	region, err := domain.ParseRegion(section.Key("region").MustString(string(domain.RegionDubai)))
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", name, err)
	}

	return &domain.ScenarioProfile{
		Name: name,
		Input: scenario.ClampInput(domain.ScenarioInput{
			Role:              role,
			Region:            region,
			CasesPerMonth:     scenario.ParseCases(section.Key("cases_per_month").String()),
			PatientFee:        scenario.ParseAmount(section.Key("patient_fee").String()),
			EcodentCost:       scenario.ParseAmount(section.Key("ecodent_cost").String()),
			InitialInvestment: scenario.ParseAmount(section.Key("initial_investment").String()),
		}),
	}, nil
}
