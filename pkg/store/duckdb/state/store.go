package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/roi-atlas/pkg/adapters"
	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/models/store"
	"github.com/de-tools/roi-atlas/pkg/store/duckdb"
	"github.com/rs/zerolog"
)

// Store keeps one serialized report state per namespace in DuckDB.
type Store interface {
	Load(ctx context.Context, namespace string) (*domain.ReportState, error)
	Save(ctx context.Context, namespace string, state domain.ReportState) error
}

type stateStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &stateStore{
		db:  db,
		now: time.Now,
	}, nil
}

func (s *stateStore) Load(ctx context.Context, namespace string) (*domain.ReportState, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT CAST(payload AS VARCHAR) FROM report_state WHERE namespace = ?`,
		namespace,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query report state: %w", err)
	}

	var record store.ReportState
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("unmarshal report state: %w", err)
	}
	return adapters.MapStoreStateToDomain(&record), nil
}

func (s *stateStore) Save(ctx context.Context, namespace string, st domain.ReportState) error {
	payload, err := json.Marshal(adapters.MapDomainStateToStore(st))
	if err != nil {
		return fmt.Errorf("marshal report state: %w", err)
	}

	return duckdb.InTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO report_state (namespace, payload, saved_reports, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (namespace) DO UPDATE SET
				payload = excluded.payload,
				saved_reports = excluded.saved_reports,
				updated_at = excluded.updated_at`,
			namespace, string(payload), len(st.SavedReports), s.now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("upsert report state: %w", err)
		}

		zerolog.Ctx(ctx).Debug().
			Str("namespace", namespace).
			Int("bytes", len(payload)).
			Msg("report state persisted")
		return nil
	})
}
