package pricing

import (
	"fmt"

	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
)

// Tables holds the constant economics and preset data. It is loaded once at
// startup and read-only afterwards.
type Tables struct {
	Economics domain.Economics
	Presets   map[domain.Region]map[domain.Tier]domain.Preset
}

type Store interface {
	GetEconomics() domain.Economics
	GetRegionEconomics(region domain.Region) (domain.RegionEconomics, bool)
	GetPresets(region domain.Region) (map[domain.Tier]domain.Preset, bool)
}

type pricingStore struct {
	tables Tables
}

// NewStore validates the tables and returns a read-only store. Every region
// must define investor economics and all three preset tiers.
func NewStore(tables Tables) (Store, error) {
	for _, region := range domain.Regions {
		if _, ok := tables.Economics.Investor[region]; !ok {
			return nil, fmt.Errorf("missing investor economics for region %q", region)
		}
		presets, ok := tables.Presets[region]
		if !ok {
			return nil, fmt.Errorf("missing presets for region %q", region)
		}
		for _, tier := range domain.Tiers {
			p, ok := presets[tier]
			if !ok {
				return nil, fmt.Errorf("missing %q preset for region %q", tier, region)
			}
			if p.CasesPerMonth < 0 || p.PatientFee < 0 {
				return nil, fmt.Errorf("negative %q preset for region %q", tier, region)
			}
		}
	}
	return &pricingStore{tables: cloneTables(tables)}, nil
}

// NewDefaultStore returns a store over DefaultTables.
func NewDefaultStore() Store {
	return &pricingStore{tables: DefaultTables()}
}

func (p *pricingStore) GetEconomics() domain.Economics {
	return cloneTables(p.tables).Economics
}

func (p *pricingStore) GetRegionEconomics(region domain.Region) (domain.RegionEconomics, bool) {
	econ, ok := p.tables.Economics.Investor[region]
	return econ, ok
}

func (p *pricingStore) GetPresets(region domain.Region) (map[domain.Tier]domain.Preset, bool) {
	presets, ok := p.tables.Presets[region]
	if !ok {
		return nil, false
	}
	out := make(map[domain.Tier]domain.Preset, len(presets))
	for k, v := range presets {
		out[k] = v
	}
	return out, true
}

func cloneTables(t Tables) Tables {
	out := Tables{
		Economics: domain.Economics{
			Investor: make(map[domain.Region]domain.RegionEconomics, len(t.Economics.Investor)),
			Dentist:  t.Economics.Dentist,
		},
		Presets: make(map[domain.Region]map[domain.Tier]domain.Preset, len(t.Presets)),
	}
	for region, econ := range t.Economics.Investor {
		out.Economics.Investor[region] = econ
	}
	for region, presets := range t.Presets {
		tiers := make(map[domain.Tier]domain.Preset, len(presets))
		for tier, p := range presets {
			tiers[tier] = p
		}
		out.Presets[region] = tiers
	}
	return out
}
