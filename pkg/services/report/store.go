package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/services/roi"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const DefaultNamespace = "roi-report-store"

var ErrReportNotFound = errors.New("report not found")

// Persister mirrors the store state to durable storage under a namespace key.
type Persister interface {
	Load(ctx context.Context, namespace string) (*domain.ReportState, error)
	Save(ctx context.Context, namespace string, state domain.ReportState) error
}

type Options struct {
	Namespace  string
	Persister  Persister
	Calculator *roi.Calculator
	Clock      func() time.Time
	NewID      func() string
}

// Store holds the working report and the saved reports. Mutations replace the whole state
// and are written through to the persister; the in-memory state stays authoritative when
// persisting fails.
type Store struct {
	mu      sync.RWMutex
	state   domain.ReportState
	version uint64

	// saveMu orders writes to the persister; persisted is the newest version written.
	saveMu    sync.Mutex
	persisted uint64

	namespace string
	persister Persister
	calc      *roi.Calculator
	now       func() time.Time
	newID     func() string
}

// NewStore rehydrates from the persister, starting with a fresh report when nothing is stored.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	s := &Store{
		namespace: opts.Namespace,
		persister: opts.Persister,
		calc:      opts.Calculator,
		now:       opts.Clock,
		newID:     opts.NewID,
	}
	if s.namespace == "" {
		s.namespace = DefaultNamespace
	}
	if s.calc == nil {
		s.calc = roi.NewCalculator(roi.DefaultParams())
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}

	if s.persister != nil {
		loaded, err := s.persister.Load(ctx, s.namespace)
		if err != nil {
			return nil, fmt.Errorf("load report state %q: %w", s.namespace, err)
		}
		if loaded != nil {
			s.state = loaded.Clone()
			zerolog.Ctx(ctx).Debug().
				Str("namespace", s.namespace).
				Str("report_id", s.state.Report.ID).
				Int("saved_reports", len(s.state.SavedReports)).
				Msg("report state rehydrated")
			return s, nil
		}
	}

	s.state = domain.ReportState{Report: s.blankReport(0)}
	return s, nil
}

func (s *Store) blankReport(savedCount int) domain.Report {
	now := s.now()
	return domain.Report{
		ID:           s.newID(),
		ReportNumber: fmt.Sprintf("%d/%03d", now.Year(), savedCount+1),
		ReportDate:   now,
		Currency:     DefaultCurrency,
		Settings:     DefaultSettings(now),
		Operations:   []domain.Operation{},
	}
}

func (s *Store) Calculator() *roi.Calculator {
	return s.calc
}

// Report returns a copy of the working report.
func (s *Store) Report() domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Report.Clone()
}

func (s *Store) SavedReports() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone().SavedReports
}

func (s *Store) State() domain.ReportState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// mutate applies fn to a copy of the state and swaps it in. The write-through happens
// after the lock is released, so readers never wait on the persister.
func (s *Store) mutate(ctx context.Context, action string, fn func(st *domain.ReportState)) {
	s.mu.Lock()
	next := s.state.Clone()
	fn(&next)
	s.state = next
	s.version++
	version := s.version
	s.mu.Unlock()

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("action", action).
		Str("report_id", next.Report.ID).
		Int("operations", len(next.Report.Operations)).
		Msg("report state updated")

	s.persist(ctx, action, version, next.Clone())
}

func (s *Store) persist(ctx context.Context, action string, version uint64, st domain.ReportState) {
	if s.persister == nil {
		return
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if version <= s.persisted {
		// a newer state already reached the persister
		return
	}
	if err := s.persister.Save(ctx, s.namespace, st); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("action", action).
			Str("namespace", s.namespace).
			Msg("failed to persist report state")
		return
	}
	s.persisted = version
}

func (s *Store) SetClientInfo(ctx context.Context, info ClientInfo) {
	s.mutate(ctx, "set_client_info", func(st *domain.ReportState) {
		info.apply(&st.Report)
	})
}

// LoadReport replaces the working report wholesale.
func (s *Store) LoadReport(ctx context.Context, r domain.Report) {
	s.mutate(ctx, "load_report", func(st *domain.ReportState) {
		st.Report = r.Clone()
	})
}

// LoadSavedReport copies a saved report into the working slot.
func (s *Store) LoadSavedReport(ctx context.Context, id string) error {
	var saved *domain.Report
	s.mu.RLock()
	for _, r := range s.state.SavedReports {
		if r.ID == id {
			c := r.Clone()
			saved = &c
			break
		}
	}
	s.mu.RUnlock()

	if saved == nil {
		return fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	s.LoadReport(ctx, *saved)
	return nil
}

// SaveCurrentReport upserts the working report into the saved reports by id.
func (s *Store) SaveCurrentReport(ctx context.Context) {
	s.mutate(ctx, "save_current_report", func(st *domain.ReportState) {
		current := st.Report.Clone()
		for i, r := range st.SavedReports {
			if r.ID == current.ID {
				st.SavedReports[i] = current
				return
			}
		}
		st.SavedReports = append(st.SavedReports, current)
	})
}

// DeleteSavedReport drops a report from the save history. Unknown ids are ignored.
func (s *Store) DeleteSavedReport(ctx context.Context, id string) {
	s.mutate(ctx, "delete_saved_report", func(st *domain.ReportState) {
		kept := make([]domain.Report, 0, len(st.SavedReports))
		for _, r := range st.SavedReports {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		st.SavedReports = kept
	})
}

// CreateNewReport starts a blank working report. The sequence part of the report number
// follows the number of saved reports, so discarding unsaved reports reuses numbers.
func (s *Store) CreateNewReport(ctx context.Context) domain.Report {
	return s.CreateNewReportWith(ctx, ClientInfo{}, SettingsChanges{})
}

// CreateNewReportWith starts a blank working report with info and settings applied on top
// of the defaults.
func (s *Store) CreateNewReportWith(ctx context.Context, info ClientInfo, settings SettingsChanges) domain.Report {
	var created domain.Report
	s.mutate(ctx, "create_new_report", func(st *domain.ReportState) {
		st.Report = s.blankReport(len(st.SavedReports))
		info.apply(&st.Report)
		settings.apply(&st.Report.Settings)
		created = st.Report.Clone()
	})
	return created
}

func (s *Store) UpdateSettings(ctx context.Context, changes SettingsChanges) {
	s.mutate(ctx, "update_settings", func(st *domain.ReportState) {
		changes.apply(&st.Report.Settings)
	})
}

// AddOperation appends a new operation built from the default template and changes.
func (s *Store) AddOperation(ctx context.Context, changes OperationChanges) domain.Operation {
	op := DefaultOperation()
	changes.apply(&op)
	op.ID = s.newID()

	s.mutate(ctx, "add_operation", func(st *domain.ReportState) {
		st.Report.Operations = append(st.Report.Operations, op.Clone())
	})
	return op
}

// UpdateOperation merges changes into the operation with the given id, if any.
func (s *Store) UpdateOperation(ctx context.Context, id string, changes OperationChanges) {
	s.mutate(ctx, "update_operation", func(st *domain.ReportState) {
		if i := st.Report.FindOperation(id); i >= 0 {
			changes.apply(&st.Report.Operations[i])
		}
	})
}

func (s *Store) RemoveOperation(ctx context.Context, id string) {
	s.mutate(ctx, "remove_operation", func(st *domain.ReportState) {
		kept := make([]domain.Operation, 0, len(st.Report.Operations))
		for _, op := range st.Report.Operations {
			if op.ID != id {
				kept = append(kept, op)
			}
		}
		st.Report.Operations = kept
	})
}

// DuplicateOperation appends a copy of the operation under a new id. It reports false
// when no operation has the given id.
func (s *Store) DuplicateOperation(ctx context.Context, id string) (domain.Operation, bool) {
	var (
		dup   domain.Operation
		found bool
	)
	s.mutate(ctx, "duplicate_operation", func(st *domain.ReportState) {
		i := st.Report.FindOperation(id)
		if i < 0 {
			return
		}
		dup = st.Report.Operations[i].Clone()
		dup.ID = s.newID()
		dup.Name += duplicateSuffix(st.Report.Settings.Language)
		st.Report.Operations = append(st.Report.Operations, dup.Clone())
		found = true
	})
	return dup, found
}

func (s *Store) OperationROI(id string) (domain.ROIResult, bool) {
	r := s.Report()
	i := r.FindOperation(id)
	if i < 0 {
		return domain.ROIResult{}, false
	}
	return s.calc.ROI(r.Operations[i], r), true
}

func (s *Store) Summary() domain.Summary {
	return s.calc.Summary(s.Report())
}

func (s *Store) Results() []domain.OperationResult {
	return s.calc.Results(s.Report())
}
