package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetsINI = `
[consulting-eu]
currency = EUR
language = en
inflation_rate = 0.02
transformation_cost_factor = 0.25
implementation_days = 120
breakdown_people = 50
breakdown_process = 25
breakdown_tech = 25

[startup-pl]
est_transformation_cost = 80000

[empty]
`

func TestPresets_GetProfiles(t *testing.T) {
	presets, err := LoadPresets([]byte(presetsINI))
	require.NoError(t, err)

	profiles, err := presets.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"consulting-eu", "startup-pl"}, profiles)
}

func TestPresets_GetPreset(t *testing.T) {
	ctx := context.Background()
	presets, err := LoadPresets([]byte(presetsINI))
	require.NoError(t, err)

	t.Run("full preset", func(t *testing.T) {
		p, err := presets.GetPreset(ctx, "consulting-eu")
		require.NoError(t, err)

		require.NotNil(t, p.Currency)
		assert.Equal(t, "EUR", *p.Currency)
		require.NotNil(t, p.Settings.Language)
		assert.Equal(t, "en", *p.Settings.Language)
		assert.Equal(t, 0.02, *p.Settings.InflationRate)
		assert.Equal(t, 0.25, *p.Settings.TransformationCostFactor)
		assert.Equal(t, 120, *p.Settings.ImplementationDays)
		assert.Equal(t, &domain.CostBreakdown{People: 50, Process: 25, Tech: 25}, p.Settings.Breakdown)
		assert.Nil(t, p.Settings.EstTransformationCost)
	})

	t.Run("partial preset leaves other settings untouched", func(t *testing.T) {
		p, err := presets.GetPreset(ctx, "startup-pl")
		require.NoError(t, err)

		assert.Nil(t, p.Currency)
		assert.Nil(t, p.Settings.Language)
		assert.Nil(t, p.Settings.Breakdown)
		assert.Equal(t, 80000.0, *p.Settings.EstTransformationCost)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := presets.GetPreset(ctx, "empty")
		assert.ErrorIs(t, err, ErrUnknownPreset)
	})

	t.Run("malformed number", func(t *testing.T) {
		bad, err := LoadPresets([]byte("[broken]\ninflation_rate = lots\n"))
		require.NoError(t, err)
		_, err = bad.GetPreset(ctx, "broken")
		assert.ErrorContains(t, err, "inflation_rate")
	})
}

func TestNewPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.ini")
	require.NoError(t, os.WriteFile(path, []byte(presetsINI), 0o600))

	presets, err := NewPresets(path)
	require.NoError(t, err)
	profiles, err := presets.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 2)

	_, err = NewPresets(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
