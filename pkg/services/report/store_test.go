package report

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPersister struct {
	mock.Mock
}

func (m *mockPersister) Load(ctx context.Context, namespace string) (*domain.ReportState, error) {
	args := m.Called(ctx, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportState), args.Error(1)
}

func (m *mockPersister) Save(ctx context.Context, namespace string, state domain.ReportState) error {
	args := m.Called(ctx, namespace, state)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), Options{
		Clock: func() time.Time { return fixedNow },
		NewID: sequentialIDs(),
	})
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string { return &s }

func TestNewStore(t *testing.T) {
	t.Run("fresh report without persister", func(t *testing.T) {
		s := newTestStore(t)
		r := s.Report()

		assert.Equal(t, "id-1", r.ID)
		assert.Equal(t, "2026/001", r.ReportNumber)
		assert.Equal(t, DefaultCurrency, r.Currency)
		assert.Equal(t, DefaultLanguage, r.Settings.Language)
		assert.Empty(t, r.Operations)
		assert.Empty(t, s.SavedReports())
	})

	t.Run("rehydrates persisted state", func(t *testing.T) {
		persisted := &domain.ReportState{
			Report:       domain.Report{ID: "stored", ClientName: "Acme"},
			SavedReports: []domain.Report{{ID: "older"}},
		}
		p := new(mockPersister)
		p.On("Load", mock.Anything, "custom-ns").Return(persisted, nil)

		s, err := NewStore(context.Background(), Options{Namespace: "custom-ns", Persister: p})
		require.NoError(t, err)
		assert.Equal(t, "Acme", s.Report().ClientName)
		assert.Len(t, s.SavedReports(), 1)
		p.AssertExpectations(t)
	})

	t.Run("nothing persisted", func(t *testing.T) {
		p := new(mockPersister)
		p.On("Load", mock.Anything, DefaultNamespace).Return(nil, nil)

		s, err := NewStore(context.Background(), Options{Persister: p})
		require.NoError(t, err)
		assert.NotEmpty(t, s.Report().ID)
	})

	t.Run("load failure", func(t *testing.T) {
		p := new(mockPersister)
		p.On("Load", mock.Anything, DefaultNamespace).Return(nil, errors.New("disk gone"))

		s, err := NewStore(context.Background(), Options{Persister: p})
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestStore_WriteThrough(t *testing.T) {
	ctx := context.Background()

	t.Run("every mutation is saved", func(t *testing.T) {
		p := new(mockPersister)
		p.On("Load", mock.Anything, DefaultNamespace).Return(nil, nil)
		p.On("Save", mock.Anything, DefaultNamespace, mock.MatchedBy(func(st domain.ReportState) bool {
			return st.Report.ClientName == "Acme"
		})).Return(nil).Once()

		s, err := NewStore(ctx, Options{Persister: p})
		require.NoError(t, err)

		s.SetClientInfo(ctx, ClientInfo{ClientName: strPtr("Acme")})
		p.AssertExpectations(t)
	})

	t.Run("save failure keeps in-memory state", func(t *testing.T) {
		p := new(mockPersister)
		p.On("Load", mock.Anything, DefaultNamespace).Return(nil, nil)
		p.On("Save", mock.Anything, DefaultNamespace, mock.Anything).Return(errors.New("read-only"))

		s, err := NewStore(ctx, Options{Persister: p})
		require.NoError(t, err)

		op := s.AddOperation(ctx, OperationChanges{Name: strPtr("Raportowanie")})
		require.Len(t, s.Report().Operations, 1)
		assert.Equal(t, op.ID, s.Report().Operations[0].ID)
	})

	t.Run("reads do not wait for a slow save", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		p := new(mockPersister)
		p.On("Load", mock.Anything, DefaultNamespace).Return(nil, nil)
		p.On("Save", mock.Anything, DefaultNamespace, mock.Anything).
			Run(func(mock.Arguments) {
				close(entered)
				<-release
			}).
			Return(nil).Once()

		s, err := NewStore(ctx, Options{Persister: p})
		require.NoError(t, err)

		done := make(chan struct{})
		go func() {
			defer close(done)
			s.SetClientInfo(ctx, ClientInfo{ClientName: strPtr("Acme")})
		}()
		<-entered

		read := make(chan string, 1)
		go func() { read <- s.Report().ClientName }()
		select {
		case name := <-read:
			assert.Equal(t, "Acme", name)
		case <-time.After(2 * time.Second):
			t.Fatal("report read blocked while the state was being saved")
		}

		close(release)
		<-done
		p.AssertExpectations(t)
	})
}

func TestStore_ClientInfoAndSettings(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.SetClientInfo(ctx, ClientInfo{ClientName: strPtr("Acme"), Currency: strPtr("EUR")})
	r := s.Report()
	assert.Equal(t, "Acme", r.ClientName)
	assert.Equal(t, "EUR", r.Currency)
	assert.Equal(t, "2026/001", r.ReportNumber)

	est := 100000.0
	s.UpdateSettings(ctx, SettingsChanges{EstTransformationCost: &est})
	settings := s.Report().Settings
	assert.Equal(t, est, settings.EstTransformationCost)
	assert.Equal(t, 0.3, settings.TransformationCostFactor)
	assert.Equal(t, DefaultLanguage, settings.Language)
}

func TestStore_Operations(t *testing.T) {
	ctx := context.Background()

	t.Run("add merges template and assigns a fresh id", func(t *testing.T) {
		s := newTestStore(t)
		category := domain.CategoryFinance
		op := s.AddOperation(ctx, OperationChanges{Name: strPtr("Fakturowanie"), Category: &category})

		assert.Equal(t, "id-2", op.ID)
		assert.Equal(t, "Fakturowanie", op.Name)
		assert.Equal(t, domain.CategoryFinance, op.Category)
		assert.Equal(t, DefaultOperation().AvgHourlyRate, op.AvgHourlyRate)
		assert.NotNil(t, op.TokenCosts)
		assert.NotNil(t, op.Hiring)
		assert.Equal(t, []domain.Operation{op}, s.Report().Operations)
	})

	t.Run("update merges into the matching operation", func(t *testing.T) {
		s := newTestStore(t)
		op := s.AddOperation(ctx, OperationChanges{})
		other := s.AddOperation(ctx, OperationChanges{Name: strPtr("other")})

		gain := 0.9
		s.UpdateOperation(ctx, op.ID, OperationChanges{EfficiencyGain: &gain})

		ops := s.Report().Operations
		assert.Equal(t, 0.9, ops[0].EfficiencyGain)
		assert.Equal(t, op.Name, ops[0].Name)
		assert.Equal(t, other, ops[1])
	})

	t.Run("update unknown id is a no-op", func(t *testing.T) {
		s := newTestStore(t)
		s.AddOperation(ctx, OperationChanges{})
		before := s.Report()

		s.UpdateOperation(ctx, "missing", OperationChanges{Name: strPtr("x")})
		assert.Equal(t, before, s.Report())
	})

	t.Run("remove", func(t *testing.T) {
		s := newTestStore(t)
		a := s.AddOperation(ctx, OperationChanges{Name: strPtr("a")})
		b := s.AddOperation(ctx, OperationChanges{Name: strPtr("b")})

		s.RemoveOperation(ctx, "missing")
		assert.Len(t, s.Report().Operations, 2)

		s.RemoveOperation(ctx, a.ID)
		assert.Equal(t, []domain.Operation{b}, s.Report().Operations)
	})

	t.Run("duplicate", func(t *testing.T) {
		s := newTestStore(t)
		original := s.AddOperation(ctx, OperationChanges{Name: strPtr("Fakturowanie")})

		dup, ok := s.DuplicateOperation(ctx, original.ID)
		require.True(t, ok)
		assert.Equal(t, "Fakturowanie (kopia)", dup.Name)
		assert.NotEqual(t, original.ID, dup.ID)

		ops := s.Report().Operations
		require.Len(t, ops, 2)
		assert.Equal(t, original, ops[0])
		assert.Equal(t, dup, ops[1])

		// the copy does not share extension records with the original
		ops[1].TokenCosts.ModelName = "changed"
		assert.NotEqual(t, "changed", s.Report().Operations[0].TokenCosts.ModelName)
	})

	t.Run("duplicate uses the report language", func(t *testing.T) {
		s := newTestStore(t)
		s.UpdateSettings(ctx, SettingsChanges{Language: strPtr("en")})
		original := s.AddOperation(ctx, OperationChanges{Name: strPtr("Invoicing")})

		dup, ok := s.DuplicateOperation(ctx, original.ID)
		require.True(t, ok)
		assert.Equal(t, "Invoicing (copy)", dup.Name)
	})

	t.Run("duplicate unknown id", func(t *testing.T) {
		s := newTestStore(t)
		_, ok := s.DuplicateOperation(ctx, "missing")
		assert.False(t, ok)
		assert.Empty(t, s.Report().Operations)
	})

	t.Run("returned reports are copies", func(t *testing.T) {
		s := newTestStore(t)
		s.AddOperation(ctx, OperationChanges{})

		r := s.Report()
		r.Operations[0].Name = "mutated"
		assert.NotEqual(t, "mutated", s.Report().Operations[0].Name)
	})
}

func TestStore_SavedReports(t *testing.T) {
	ctx := context.Background()

	t.Run("save is idempotent", func(t *testing.T) {
		s := newTestStore(t)
		s.AddOperation(ctx, OperationChanges{})

		s.SaveCurrentReport(ctx)
		first := s.SavedReports()
		s.SaveCurrentReport(ctx)
		second := s.SavedReports()

		require.Len(t, second, 1)
		assert.Equal(t, first, second)
		assert.Equal(t, s.Report(), second[0])
	})

	t.Run("save replaces the entry with the same id", func(t *testing.T) {
		s := newTestStore(t)
		s.SaveCurrentReport(ctx)
		s.SetClientInfo(ctx, ClientInfo{ClientName: strPtr("Acme")})
		s.SaveCurrentReport(ctx)

		saved := s.SavedReports()
		require.Len(t, saved, 1)
		assert.Equal(t, "Acme", saved[0].ClientName)
	})

	t.Run("load then save round-trips", func(t *testing.T) {
		s := newTestStore(t)
		r := domain.Report{
			ID:           "external",
			ReportNumber: "2025/007",
			ReportDate:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			ClientName:   "Globex",
			Currency:     "USD",
			Settings:     DefaultSettings(fixedNow),
			Operations: []domain.Operation{
				{ID: "op", Name: "Onboarding", LOCEnabled: true, LOCActions: []domain.LOCAction{{Name: "delay", EventsPerMonth: 1, AvgCostPerEvent: 10}}},
			},
		}

		s.LoadReport(ctx, r)
		s.SaveCurrentReport(ctx)

		saved := s.SavedReports()
		require.Len(t, saved, 1)
		assert.Equal(t, r, saved[0])
	})

	t.Run("new report numbering follows saved count", func(t *testing.T) {
		s := newTestStore(t)
		s.SaveCurrentReport(ctx)
		s.AddOperation(ctx, OperationChanges{})

		created := s.CreateNewReport(ctx)
		assert.Equal(t, "2026/002", created.ReportNumber)
		assert.Empty(t, created.Operations)
		assert.Len(t, s.SavedReports(), 1)
		assert.Equal(t, created, s.Report())

		// discarded without saving, so the number is reused
		again := s.CreateNewReport(ctx)
		assert.Equal(t, "2026/002", again.ReportNumber)
		assert.NotEqual(t, created.ID, again.ID)
	})

	t.Run("new report with client info and settings", func(t *testing.T) {
		s := newTestStore(t)
		factor := 0.25
		created := s.CreateNewReportWith(ctx,
			ClientInfo{Currency: strPtr("EUR")},
			SettingsChanges{Language: strPtr("en"), TransformationCostFactor: &factor},
		)

		assert.Equal(t, "EUR", created.Currency)
		assert.Equal(t, "en", created.Settings.Language)
		assert.Equal(t, 0.25, created.Settings.TransformationCostFactor)
		assert.Equal(t, 90, created.Settings.ImplementationDays)
		assert.Equal(t, created, s.Report())
	})

	t.Run("load and delete saved report", func(t *testing.T) {
		s := newTestStore(t)
		s.SetClientInfo(ctx, ClientInfo{ClientName: strPtr("Acme")})
		s.SaveCurrentReport(ctx)
		savedID := s.Report().ID
		s.CreateNewReport(ctx)

		require.NoError(t, s.LoadSavedReport(ctx, savedID))
		assert.Equal(t, "Acme", s.Report().ClientName)

		err := s.LoadSavedReport(ctx, "missing")
		assert.ErrorIs(t, err, ErrReportNotFound)

		s.DeleteSavedReport(ctx, savedID)
		assert.Empty(t, s.SavedReports())
	})
}

func TestStore_Aggregations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.Equal(t, domain.Summary{}, s.Summary())

	op := s.AddOperation(ctx, OperationChanges{})
	result, ok := s.OperationROI(op.ID)
	require.True(t, ok)
	assert.GreaterOrEqual(t, result.PaybackMonths, 0.0)

	_, ok = s.OperationROI("missing")
	assert.False(t, ok)

	summary := s.Summary()
	assert.Greater(t, summary.CurrentCost, summary.FutureCost)
	assert.Len(t, s.Results(), 1)
}

func TestSettingsChanges_Merge(t *testing.T) {
	en, pl := "en", "pl"
	preset := SettingsChanges{
		Language:  &en,
		Breakdown: &domain.CostBreakdown{People: 40, Process: 40, Tech: 20},
	}
	rate := 0.05

	merged := preset.Merge(SettingsChanges{Language: &pl, InflationRate: &rate})
	require.NotNil(t, merged.Language)
	assert.Equal(t, "pl", *merged.Language)
	assert.Equal(t, &rate, merged.InflationRate)
	assert.Equal(t, preset.Breakdown, merged.Breakdown)
	assert.Equal(t, "en", *preset.Language)

	assert.Equal(t, preset, preset.Merge(SettingsChanges{}))
}
