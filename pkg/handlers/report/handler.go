package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/fiscal-atlas/pkg/adapters"
	"github.com/de-tools/fiscal-atlas/pkg/models/api"
	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	reportsvc "github.com/de-tools/fiscal-atlas/pkg/services/report"
)

// Service is the pipeline surface the HTTP layer needs.
type Service interface {
	ListReportTypes(ctx context.Context) []reportsvc.Definition
	ListFilings(ctx context.Context, reportType string) ([]domain.Filing, error)
	BuildSeries(ctx context.Context, reportType string) (domain.TimeSeries, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListReportTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	defs := h.service.ListReportTypes(ctx)
	response := make([]api.ReportType, 0, len(defs))
	for _, def := range defs {
		response = append(response, api.ReportType{
			Name:   def.Name,
			Kind:   string(def.Kind),
			Anchor: def.Anchor,
		})
	}

	writeJSON(ctx, w, http.StatusOK, response)
}

func (h *Handler) ListFilings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reportType := chi.URLParam(r, "report")

	filings, err := h.service.ListFilings(ctx, reportType)
	if err != nil {
		writeError(ctx, w, statusFor(err), err)
		return
	}

	response := make([]api.Filing, 0, len(filings))
	for _, filing := range filings {
		response = append(response, adapters.MapDomainFilingToApi(filing))
	}
	writeJSON(ctx, w, http.StatusOK, response)
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reportType := chi.URLParam(r, "report")

	series, err := h.service.BuildSeries(ctx, reportType)
	if err != nil {
		writeError(ctx, w, statusFor(err), err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, adapters.MapDomainSeriesToApi(series))
}

// statusFor maps the pipeline's terminal error taxonomy onto HTTP statuses:
// an unregistered report type is the caller naming a resource that does not
// exist, config drift and shape problems are the server's data being broken,
// and anything else (store I/O included) is an internal failure.
func statusFor(err error) int {
	var unknown *domain.UnknownReportTypeError
	if errors.As(err, &unknown) {
		return http.StatusNotFound
	}
	var drift *domain.ConfigurationDriftError
	var shape *domain.ShapeMismatchError
	var reconcile *domain.ReconciliationError
	var conflict *domain.MergeConflictError
	if errors.As(err, &drift) || errors.As(err, &shape) ||
		errors.As(err, &reconcile) || errors.As(err, &conflict) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
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

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	zerolog.Ctx(ctx).Error().
		Err(err).
		Msg("request failed")
	writeJSON(ctx, w, status, map[string]string{"error": err.Error()})
}
