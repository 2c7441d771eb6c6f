package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/roi-atlas/pkg/services/roi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "roi-report-store", cfg.Namespace)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, BackendDuckDB, cfg.Storage.Backend)
	assert.Equal(t, "roi-atlas.db", cfg.Storage.DuckDBPath)
	assert.Equal(t, 4, cfg.Storage.DuckDBThreads)
	assert.Equal(t, roi.DefaultParams(), cfg.Calculation.Params())
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "roi.yaml", `
namespace: acme
log_level: debug
presets_path: /etc/roi/presets.ini
storage:
  backend: s3
  s3_bucket: roi-reports
  s3_region: eu-central-1
calculation:
  employer_cost_multiplier: 1.25
  input_token_share: 0.6
server:
  port: 9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Namespace)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/roi/presets.ini", cfg.PresetsPath)
	assert.Equal(t, StorageConfig{
		Backend:       BackendS3,
		DuckDBPath:    "roi-atlas.db",
		DuckDBThreads: 4,
		S3Bucket:      "roi-reports",
		S3Prefix:      "roi-atlas",
		S3Region:      "eu-central-1",
	}, cfg.Storage)
	assert.Equal(t, roi.Params{EmployerCostMultiplier: 1.25, InputTokenShare: 0.6}, cfg.Calculation.Params())
	assert.Equal(t, "localhost:9090", cfg.Server.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "roi.yaml", "storage:\n  backend: duckdb\n")
	t.Setenv("ROI_STORAGE_BACKEND", "memory")
	t.Setenv("ROI_SERVER_PORT", "7000")
	t.Setenv("ROI_STORAGE_DUCKDB_THREADS", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Storage.DuckDBThreads)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown backend",
			content: "storage:\n  backend: floppy\n",
			wantErr: "unknown storage backend",
		},
		{
			name:    "s3 without bucket",
			content: "storage:\n  backend: s3\n",
			wantErr: "s3_bucket is required",
		},
		{
			name:    "duckdb without path",
			content: "storage:\n  backend: duckdb\n  duckdb_path: \"\"\n",
			wantErr: "duckdb_path is required",
		},
		{
			name:    "duckdb without threads",
			content: "storage:\n  backend: duckdb\n  duckdb_threads: 0\n",
			wantErr: "duckdb_threads must be at least 1",
		},
		{
			name:    "bad port",
			content: "server:\n  port: 70000\n",
			wantErr: "invalid server port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "roi.yaml", tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorContains(t, err, "failed to read config file")
	})
}
