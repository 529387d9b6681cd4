package pricing

import (
	"testing"

	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_DefaultTables(t *testing.T) {
	store, err := NewStore(DefaultTables())
	require.NoError(t, err)

	dubai, ok := store.GetRegionEconomics(domain.RegionDubai)
	require.True(t, ok)
	assert.Equal(t, 0.5, dubai.SharePct)
	assert.Equal(t, 525.0, dubai.CostPerCase)

	paris, ok := store.GetRegionEconomics(domain.RegionParis)
	require.True(t, ok)
	assert.Equal(t, 1370.0, paris.RevenuePerCase)
	assert.Equal(t, 480.0, paris.CostPerCase)

	presets, ok := store.GetPresets(domain.RegionParis)
	require.True(t, ok)
	assert.Equal(t, domain.Preset{Tier: domain.TierRealistic, CasesPerMonth: 20, PatientFee: 2200},
		presets[domain.TierRealistic])
}

func TestNewStore_MissingTier_ReturnsError(t *testing.T) {
	tables := DefaultTables()
	delete(tables.Presets[domain.RegionDubai], domain.TierAmbitious)

	_, err := NewStore(tables)

	assert.EqualError(t, err, `missing "ambitious" preset for region "dubai"`)
}

func TestNewStore_MissingEconomics_ReturnsError(t *testing.T) {
	tables := DefaultTables()
	delete(tables.Economics.Investor, domain.RegionParis)

	_, err := NewStore(tables)

	assert.Error(t, err)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := NewDefaultStore()

	presets, _ := store.GetPresets(domain.RegionDubai)
	presets[domain.TierRealistic] = domain.Preset{CasesPerMonth: 999}

	econ := store.GetEconomics()
	econ.Investor[domain.RegionDubai] = domain.RegionEconomics{}

	again, _ := store.GetPresets(domain.RegionDubai)
	assert.Equal(t, 20, again[domain.TierRealistic].CasesPerMonth)
	dubai, _ := store.GetRegionEconomics(domain.RegionDubai)
	assert.Equal(t, 525.0, dubai.CostPerCase)
}

func TestStore_UnknownRegion(t *testing.T) {
	store := NewDefaultStore()

	_, ok := store.GetPresets(domain.Region("tokyo"))
	assert.False(t, ok)
	_, ok = store.GetRegionEconomics(domain.Region("tokyo"))
	assert.False(t, ok)
}
