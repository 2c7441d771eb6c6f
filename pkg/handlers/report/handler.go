package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/de-tools/roi-atlas/pkg/adapters"
	"github.com/de-tools/roi-atlas/pkg/models/api"
	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/services/config"
	"github.com/de-tools/roi-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Creator starts new working reports, applying a named preset.
type Creator interface {
	NewReport(ctx context.Context, preset string, info report.ClientInfo, overrides report.SettingsChanges) (domain.Report, error)
}

type Handler struct {
	store   *report.Store
	creator Creator
	presets config.Presets
}

func NewHandler(store *report.Store, creator Creator, presets config.Presets) *Handler {
	return &Handler{
		store:   store,
		creator: creator,
		presets: presets,
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, adapters.MapReportDomainToApi(h.store.Report()))
}

func (h *Handler) ReplaceReport(w http.ResponseWriter, r *http.Request) {
	var body api.Report
	if !decode(w, r, &body) {
		return
	}
	if body.ID == "" {
		http.Error(w, "report id is required", http.StatusBadRequest)
		return
	}
	h.store.LoadReport(r.Context(), adapters.MapReportApiToDomain(body))
	h.GetReport(w, r)
}

func (h *Handler) UpdateClientInfo(w http.ResponseWriter, r *http.Request) {
	var body api.ClientInfoPatch
	if !decode(w, r, &body) {
		return
	}
	h.store.SetClientInfo(r.Context(), adapters.MapClientInfoPatchApiToCommand(body))
	h.GetReport(w, r)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var body api.SettingsPatch
	if !decode(w, r, &body) {
		return
	}
	h.store.UpdateSettings(r.Context(), adapters.MapSettingsPatchApiToChanges(body))
	h.GetReport(w, r)
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var body api.NewReportRequest
	if r.ContentLength != 0 && !decode(w, r, &body) {
		return
	}

	var overrides report.SettingsChanges
	if body.Settings != nil {
		overrides = adapters.MapSettingsPatchApiToChanges(*body.Settings)
	}
	created, err := h.creator.NewReport(ctx, body.Preset, report.ClientInfo{
		ClientName: body.ClientName,
		Currency:   body.Currency,
	}, overrides)
	if errors.Is(err, config.ErrUnknownPreset) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to create report")
		http.Error(w, "failed to create report", http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, adapters.MapReportDomainToApi(created))
}

func (h *Handler) SaveReport(w http.ResponseWriter, r *http.Request) {
	h.store.SaveCurrentReport(r.Context())
	h.GetReport(w, r)
}

func (h *Handler) ListSavedReports(w http.ResponseWriter, r *http.Request) {
	saved := h.store.SavedReports()
	response := make([]api.ReportListItem, 0, len(saved))
	for _, s := range saved {
		response = append(response, adapters.MapReportListItemDomainToApi(s))
	}
	writeJSON(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) LoadSavedReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "report")
	err := h.store.LoadSavedReport(r.Context(), id)
	if errors.Is(err, report.ErrReportNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.GetReport(w, r)
}

func (h *Handler) DeleteSavedReport(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteSavedReport(r.Context(), chi.URLParam(r, "report"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddOperation(w http.ResponseWriter, r *http.Request) {
	var body api.OperationPatch
	if r.ContentLength != 0 && !decode(w, r, &body) {
		return
	}
	if err := validateOperationPatch(body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	op := h.store.AddOperation(r.Context(), adapters.MapOperationPatchApiToChanges(body))
	writeJSON(r.Context(), w, http.StatusCreated, adapters.MapOperationDomainToApi(op))
}

func (h *Handler) UpdateOperation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "operation")
	if h.store.Report().FindOperation(id) < 0 {
		http.Error(w, fmt.Sprintf("operation %s not found", id), http.StatusNotFound)
		return
	}

	var body api.OperationPatch
	if !decode(w, r, &body) {
		return
	}
	if err := validateOperationPatch(body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.store.UpdateOperation(ctx, id, adapters.MapOperationPatchApiToChanges(body))

	updated := h.store.Report()
	i := updated.FindOperation(id)
	if i < 0 {
		http.Error(w, fmt.Sprintf("operation %s not found", id), http.StatusNotFound)
		return
	}
	writeJSON(ctx, w, http.StatusOK, adapters.MapOperationDomainToApi(updated.Operations[i]))
}

func (h *Handler) RemoveOperation(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveOperation(r.Context(), chi.URLParam(r, "operation"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DuplicateOperation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "operation")
	dup, ok := h.store.DuplicateOperation(r.Context(), id)
	if !ok {
		http.Error(w, fmt.Sprintf("operation %s not found", id), http.StatusNotFound)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, adapters.MapOperationDomainToApi(dup))
}

func (h *Handler) GetOperationROI(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "operation")
	result, ok := h.store.OperationROI(id)
	if !ok {
		http.Error(w, fmt.Sprintf("operation %s not found", id), http.StatusNotFound)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, adapters.MapROIResultDomainToApi(result))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, adapters.MapSummaryDomainToApi(h.store.Summary()))
}

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	current := h.store.Report()
	calc := h.store.Calculator()

	results := calc.Results(current)
	response := api.ReportResults{
		Currency:   current.Currency,
		Operations: make([]api.OperationResult, 0, len(results)),
		Summary:    adapters.MapSummaryDomainToApi(calc.Summary(current)),
	}
	for _, res := range results {
		response.Operations = append(response.Operations, adapters.MapOperationResultDomainToApi(res))
	}
	writeJSON(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profiles := []string{}
	if h.presets != nil {
		var err error
		profiles, err = h.presets.GetProfiles(ctx)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list presets")
			http.Error(w, "failed to list presets", http.StatusInternalServerError)
			return
		}
	}
	writeJSON(ctx, w, http.StatusOK, profiles)
}

func validateOperationPatch(p api.OperationPatch) error {
	if p.Category != nil && !domain.Category(*p.Category).Valid() {
		return fmt.Errorf("invalid category %q", *p.Category)
	}
	if p.FrequencyUnit != nil && domain.FrequencyUnit(*p.FrequencyUnit).PerYear() == 0 {
		return fmt.Errorf("invalid frequency unit %q", *p.FrequencyUnit)
	}
	if p.TimeUnit != nil {
		unit := domain.TimeUnit(*p.TimeUnit)
		if unit != domain.TimeMinutes && unit != domain.TimeHours {
			return fmt.Errorf("invalid time unit %q", *p.TimeUnit)
		}
	}
	return nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
