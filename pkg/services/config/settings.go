package config

import (
	"fmt"
	"strings"

	"github.com/de-tools/ecodent-simulator/pkg/display"
	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/store/pricing"
	"github.com/spf13/viper"
)

const envPrefix = "ECODENT"

type Settings struct {
	Server    ServerSettings                       `mapstructure:"server"`
	Display   DisplaySettings                      `mapstructure:"display"`
	Economics map[string]RegionEconomicsSettings   `mapstructure:"economics"`
	Dentist   DentistSettings                      `mapstructure:"dentist"`
	Presets   map[string]map[string]PresetSettings `mapstructure:"presets"`
}

type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type DisplaySettings struct {
	Locale   string `mapstructure:"locale"`
	Currency string `mapstructure:"currency"`
}

type RegionEconomicsSettings struct {
	SharePct       float64 `mapstructure:"share_pct"`
	RevenuePerCase float64 `mapstructure:"revenue_per_case"`
	CostPerCase    float64 `mapstructure:"cost_per_case"`
}

type DentistSettings struct {
	SharePct              float64 `mapstructure:"share_pct"`
	TimeSavedPerCaseHours float64 `mapstructure:"time_saved_per_case_hours"`
	AvoidedInvestmentMin  float64 `mapstructure:"avoided_investment_min"`
	AvoidedInvestmentMax  float64 `mapstructure:"avoided_investment_max"`
}

type PresetSettings struct {
	Cases int     `mapstructure:"cases"`
	Fee   float64 `mapstructure:"fee"`
}

// LoadSettings reads an optional YAML settings file over the built-in
// defaults. An empty path yields defaults plus ECODENT_* environment overrides.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("display.locale", display.DefaultLocale)
	v.SetDefault("display.currency", display.DefaultCurrency)

	defaults := pricing.DefaultTables()
	for region, econ := range defaults.Economics.Investor {
		prefix := "economics." + string(region)
		v.SetDefault(prefix+".share_pct", econ.SharePct)
		v.SetDefault(prefix+".revenue_per_case", econ.RevenuePerCase)
		v.SetDefault(prefix+".cost_per_case", econ.CostPerCase)
	}

	d := defaults.Economics.Dentist
	v.SetDefault("dentist.share_pct", d.SharePct)
	v.SetDefault("dentist.time_saved_per_case_hours", d.TimeSavedPerCaseHours)
	v.SetDefault("dentist.avoided_investment_min", d.AvoidedInvestmentMin)
	v.SetDefault("dentist.avoided_investment_max", d.AvoidedInvestmentMax)

	for region, tiers := range defaults.Presets {
		for tier, p := range tiers {
			prefix := "presets." + string(region) + "." + string(tier)
			v.SetDefault(prefix+".cases", p.CasesPerMonth)
			v.SetDefault(prefix+".fee", p.PatientFee)
		}
	}
}

// Tables converts the settings into validated pricing tables.
func (s *Settings) Tables() (pricing.Tables, error) {
	tables := pricing.Tables{
		Economics: domain.Economics{
			Investor: make(map[domain.Region]domain.RegionEconomics, len(s.Economics)),
			Dentist: domain.DentistAssumptions{
				SharePct:              s.Dentist.SharePct,
				TimeSavedPerCaseHours: s.Dentist.TimeSavedPerCaseHours,
				AvoidedInvestmentMin:  s.Dentist.AvoidedInvestmentMin,
				AvoidedInvestmentMax:  s.Dentist.AvoidedInvestmentMax,
			},
		},
		Presets: make(map[domain.Region]map[domain.Tier]domain.Preset, len(s.Presets)),
	}

	for name, econ := range s.Economics {
		region, err := domain.ParseRegion(name)
		if err != nil {
			return pricing.Tables{}, fmt.Errorf("economics: %w", err)
		}
		tables.Economics.Investor[region] = domain.RegionEconomics{
			SharePct:       econ.SharePct,
			RevenuePerCase: econ.RevenuePerCase,
			CostPerCase:    econ.CostPerCase,
		}
	}

	for name, tiers := range s.Presets {
		region, err := domain.ParseRegion(name)
		if err != nil {
			return pricing.Tables{}, fmt.Errorf("presets: %w", err)
		}
		presets := make(map[domain.Tier]domain.Preset, len(tiers))
		for tierName, p := range tiers {
			tier, err := domain.ParseTier(tierName)
			if err != nil {
				return pricing.Tables{}, fmt.Errorf("presets.%s: %w", name, err)
			}
			presets[tier] = domain.Preset{Tier: tier, CasesPerMonth: p.Cases, PatientFee: p.Fee}
		}
		tables.Presets[region] = presets
	}

	return tables, nil
}

// PricingStore builds the read-only pricing store from the settings.
func (s *Settings) PricingStore() (pricing.Store, error) {
	tables, err := s.Tables()
	if err != nil {
		return nil, err
	}
	return pricing.NewStore(tables)
}

func (s *Settings) Formatter() (*display.Formatter, error) {
	return display.NewFormatter(s.Display.Locale, s.Display.Currency)
}
