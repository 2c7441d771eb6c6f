package app

import (
	"context"
	"database/sql"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/services/config"
	"github.com/de-tools/roi-atlas/pkg/services/report"
	"github.com/de-tools/roi-atlas/pkg/services/roi"
	"github.com/de-tools/roi-atlas/pkg/store/duckdb"
	duckdbstate "github.com/de-tools/roi-atlas/pkg/store/duckdb/state"
	"github.com/de-tools/roi-atlas/pkg/store/memory"
	s3state "github.com/de-tools/roi-atlas/pkg/store/s3/state"
	"github.com/rs/zerolog"
)

// App bundles the services a front end (CLI or web) works with.
type App struct {
	Config  *config.Config
	Store   *report.Store
	Presets config.Presets

	db *sql.DB
}

// Load reads the configuration at path and opens the app on top of it.
func Load(ctx context.Context, path string) (*App, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return Open(ctx, cfg)
}

func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := zerolog.Ctx(ctx)
	a := &App{Config: cfg}

	persister, err := a.openPersister(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.PresetsPath != "" {
		a.Presets, err = config.NewPresets(cfg.PresetsPath)
		if err != nil {
			a.Close()
			return nil, err
		}
	}

	a.Store, err = report.NewStore(ctx, report.Options{
		Namespace:  cfg.Namespace,
		Persister:  persister,
		Calculator: roi.NewCalculator(cfg.Calculation.Params()),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to open report store: %w", err)
	}

	logger.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("namespace", cfg.Namespace).
		Msg("report store ready")
	return a, nil
}

func (a *App) openPersister(ctx context.Context) (report.Persister, error) {
	storage := a.Config.Storage
	switch storage.Backend {
	case config.BackendDuckDB:
		db, err := duckdb.NewDB(duckdb.Settings{
			DbPath:  storage.DuckDBPath,
			Threads: storage.DuckDBThreads,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		a.db = db
		st, err := duckdbstate.NewStore(db)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create report state store: %w", err)
		}
		return st, nil

	case config.BackendS3:
		var opts []func(*awsconfig.LoadOptions) error
		if storage.S3Region != "" {
			opts = append(opts, awsconfig.WithRegion(storage.S3Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return s3state.NewFromConfig(awsCfg, s3state.Settings{
			Bucket: storage.S3Bucket,
			Prefix: storage.S3Prefix,
		})

	case config.BackendMemory:
		return memory.NewStore(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", storage.Backend)
}

// Preset returns the named preset. An empty name yields an empty preset.
func (a *App) Preset(ctx context.Context, name string) (*config.Preset, error) {
	if name == "" {
		return &config.Preset{}, nil
	}
	if a.Presets == nil {
		return nil, fmt.Errorf("%w: %s (no presets file configured)", config.ErrUnknownPreset, name)
	}
	return a.Presets.GetPreset(ctx, name)
}

// NewReport starts a fresh working report with the named preset applied. Non-nil fields
// of overrides take precedence over the preset's settings.
func (a *App) NewReport(ctx context.Context, preset string, info report.ClientInfo, overrides report.SettingsChanges) (domain.Report, error) {
	p, err := a.Preset(ctx, preset)
	if err != nil {
		return domain.Report{}, err
	}
	if info.Currency == nil {
		info.Currency = p.Currency
	}
	return a.Store.CreateNewReportWith(ctx, info, p.Settings.Merge(overrides)), nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
