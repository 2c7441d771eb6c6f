package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/roi-atlas/pkg/services/config"
	"github.com/de-tools/roi-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("ROI_STORAGE_BACKEND", config.BackendMemory)
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, memoryConfig(t))
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.Store)
	assert.Nil(t, a.Presets)
	assert.Empty(t, a.Store.Report().Operations)
}

func TestOpen_DuckDBSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)
	cfg.Storage.Backend = config.BackendDuckDB
	cfg.Storage.DuckDBPath = filepath.Join(t.TempDir(), "roi.db")
	cfg.Storage.DuckDBThreads = 2

	first, err := Open(ctx, cfg)
	require.NoError(t, err)

	var threads int64
	require.NoError(t, first.db.QueryRow(`SELECT current_setting('threads')`).Scan(&threads))
	assert.Equal(t, int64(2), threads)

	name := "Fakturowanie"
	op := first.Store.AddOperation(ctx, report.OperationChanges{Name: &name})
	require.NoError(t, first.Close())

	second, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer second.Close()

	ops := second.Store.Report().Operations
	require.Len(t, ops, 1)
	assert.Equal(t, op.ID, ops[0].ID)
	assert.Equal(t, "Fakturowanie", ops[0].Name)
}

func TestApp_NewReport(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)
	cfg.PresetsPath = filepath.Join(t.TempDir(), "presets.ini")
	require.NoError(t, os.WriteFile(cfg.PresetsPath, []byte("[eu]\ncurrency = EUR\nlanguage = en\n"), 0o600))

	a, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer a.Close()

	t.Run("with preset", func(t *testing.T) {
		created, err := a.NewReport(ctx, "eu", report.ClientInfo{}, report.SettingsChanges{})
		require.NoError(t, err)
		assert.Equal(t, "EUR", created.Currency)
		assert.Equal(t, "en", created.Settings.Language)
	})

	t.Run("explicit currency wins over preset", func(t *testing.T) {
		usd := "USD"
		created, err := a.NewReport(ctx, "eu", report.ClientInfo{Currency: &usd}, report.SettingsChanges{})
		require.NoError(t, err)
		assert.Equal(t, "USD", created.Currency)
	})

	t.Run("explicit settings win over preset", func(t *testing.T) {
		pl := "pl"
		rate := 0.04
		created, err := a.NewReport(ctx, "eu", report.ClientInfo{}, report.SettingsChanges{
			Language:      &pl,
			InflationRate: &rate,
		})
		require.NoError(t, err)
		assert.Equal(t, "EUR", created.Currency)
		assert.Equal(t, "pl", created.Settings.Language)
		assert.Equal(t, 0.04, created.Settings.InflationRate)
	})

	t.Run("without preset", func(t *testing.T) {
		created, err := a.NewReport(ctx, "", report.ClientInfo{}, report.SettingsChanges{})
		require.NoError(t, err)
		assert.Equal(t, report.DefaultCurrency, created.Currency)
		assert.Equal(t, report.DefaultLanguage, created.Settings.Language)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := a.NewReport(ctx, "mars", report.ClientInfo{}, report.SettingsChanges{})
		assert.ErrorIs(t, err, config.ErrUnknownPreset)
	})
}

func TestOpen_BadPresetsPath(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.PresetsPath = filepath.Join(t.TempDir(), "missing.ini")

	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)
}
