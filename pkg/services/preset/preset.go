package preset

import (
	"fmt"

	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/store/pricing"
)

// Service resolves region/tier presets from the pricing tables.
type Service interface {
	GetPreset(region domain.Region, tier domain.Tier) (domain.Preset, error)
	ListPresets(region domain.Region) ([]domain.Preset, error)
}

type presetService struct {
	store pricing.Store
}

func NewService(store pricing.Store) Service {
	return &presetService{store: store}
}

func (s *presetService) GetPreset(region domain.Region, tier domain.Tier) (domain.Preset, error) {
	presets, ok := s.store.GetPresets(region)
	if !ok {
		return domain.Preset{}, fmt.Errorf("%w: %q", domain.ErrUnknownRegion, region)
	}
	p, ok := presets[tier]
	if !ok {
		return domain.Preset{}, fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}
	return p, nil
}

// ListPresets returns the region's presets in tier display order.
func (s *presetService) ListPresets(region domain.Region) ([]domain.Preset, error) {
	presets, ok := s.store.GetPresets(region)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRegion, region)
	}
	out := make([]domain.Preset, 0, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		if p, ok := presets[tier]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
