package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/de-tools/roi-atlas/pkg/models/api"
	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/services/config"
	"github.com/de-tools/roi-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCreator struct {
	mock.Mock
}

func (m *mockCreator) NewReport(ctx context.Context, preset string, info report.ClientInfo, overrides report.SettingsChanges) (domain.Report, error) {
	args := m.Called(ctx, preset, info, overrides)
	return args.Get(0).(domain.Report), args.Error(1)
}

type fixture struct {
	store   *report.Store
	creator *mockCreator
	router  *chi.Mux
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := report.NewStore(context.Background(), report.Options{})
	require.NoError(t, err)

	creator := &mockCreator{}
	h := NewHandler(store, creator, nil)

	router := chi.NewRouter()
	router.Put("/report", h.ReplaceReport)
	router.Post("/reports", h.CreateReport)
	router.Post("/operations", h.AddOperation)
	router.Patch("/operations/{operation}", h.UpdateOperation)
	router.Delete("/operations/{operation}", h.RemoveOperation)
	router.Get("/presets", h.ListPresets)

	return &fixture{store: store, creator: creator, router: router}
}

func (f *fixture) serve(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_AddOperation(t *testing.T) {
	t.Run("empty body uses the template", func(t *testing.T) {
		f := setupFixture(t)
		rec := f.serve(http.MethodPost, "/operations", "")

		require.Equal(t, http.StatusCreated, rec.Code)
		var op api.Operation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &op))
		assert.Equal(t, "Nowa operacja", op.Name)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"name":`, "invalid request body"},
		{"unknown category", `{"category":"Legal"}`, "invalid category"},
		{"unknown frequency unit", `{"frequency_unit":"hour"}`, "invalid frequency unit"},
		{"unknown time unit", `{"time_unit":"days"}`, "invalid time unit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupFixture(t)
			rec := f.serve(http.MethodPost, "/operations", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.Empty(t, f.store.Report().Operations)
		})
	}
}

func TestHandler_UpdateOperation(t *testing.T) {
	f := setupFixture(t)
	op := f.store.AddOperation(context.Background(), report.OperationChanges{})

	rec := f.serve(http.MethodPatch, "/operations/"+op.ID, `{"avg_hourly_rate": 80, "loc_enabled": true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated api.Operation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 80.0, updated.AvgHourlyRate)
	assert.True(t, updated.LOCEnabled)
	assert.Equal(t, op.Name, updated.Name)

	rec = f.serve(http.MethodPatch, "/operations/missing", `{"avg_hourly_rate": 1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.serve(http.MethodDelete, "/operations/"+op.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, f.store.Report().Operations)
}

func TestHandler_ReplaceReport(t *testing.T) {
	f := setupFixture(t)

	rec := f.serve(http.MethodPut, "/report", `{"client_name":"no id"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.serve(http.MethodPut, "/report", `{"id":"imported","report_number":"2025/010","currency":"USD","operations":[{"id":"op-x","name":"Import","category":"Sales"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	current := f.store.Report()
	assert.Equal(t, "imported", current.ID)
	assert.Equal(t, "USD", current.Currency)
	require.Len(t, current.Operations, 1)
	assert.Equal(t, domain.CategorySales, current.Operations[0].Category)
}

func TestHandler_CreateReport(t *testing.T) {
	t.Run("passes preset and client info", func(t *testing.T) {
		f := setupFixture(t)
		client := "Acme"
		f.creator.On("NewReport", mock.Anything, "eu", report.ClientInfo{ClientName: &client}, report.SettingsChanges{}).
			Return(domain.Report{ID: "new", Currency: "EUR"}, nil)

		rec := f.serve(http.MethodPost, "/reports", `{"preset":"eu","client_name":"Acme"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var created api.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, "new", created.ID)
		f.creator.AssertExpectations(t)
	})

	t.Run("passes settings overrides", func(t *testing.T) {
		f := setupFixture(t)
		f.creator.On("NewReport", mock.Anything, "eu", report.ClientInfo{},
			mock.MatchedBy(func(c report.SettingsChanges) bool {
				return c.Language != nil && *c.Language == "en" &&
					c.InflationRate != nil && *c.InflationRate == 0.05 &&
					c.Breakdown == nil
			})).
			Return(domain.Report{ID: "new"}, nil)

		rec := f.serve(http.MethodPost, "/reports", `{"preset":"eu","settings":{"language":"en","inflation_rate":0.05}}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		f.creator.AssertExpectations(t)
	})

	t.Run("unknown preset", func(t *testing.T) {
		f := setupFixture(t)
		f.creator.On("NewReport", mock.Anything, "mars", mock.Anything, mock.Anything).
			Return(domain.Report{}, fmt.Errorf("%w: mars", config.ErrUnknownPreset))

		rec := f.serve(http.MethodPost, "/reports", `{"preset":"mars"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("creator failure", func(t *testing.T) {
		f := setupFixture(t)
		f.creator.On("NewReport", mock.Anything, "", mock.Anything, mock.Anything).
			Return(domain.Report{}, assert.AnError)

		rec := f.serve(http.MethodPost, "/reports", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_ListPresets_NoneConfigured(t *testing.T) {
	f := setupFixture(t)
	rec := f.serve(http.MethodGet, "/presets", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
