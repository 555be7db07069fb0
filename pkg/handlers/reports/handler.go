package reports

import (
	"context"
	"errors"
	"net/http"

	"github.com/de-tools/astro-atlas/pkg/adapters"
	"github.com/de-tools/astro-atlas/pkg/handlers"
	"github.com/de-tools/astro-atlas/pkg/models/api"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/de-tools/astro-atlas/pkg/services/report"
	"github.com/de-tools/astro-atlas/pkg/store/archive"
	"github.com/de-tools/astro-atlas/pkg/store/duckdb/reports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Handler struct {
	service  *report.Service
	store    reports.Store
	archiver archive.Archiver
}

// NewHandler wires report generation. store and archiver are optional:
// without a store reports are rendered but not kept, without an archiver the
// archive endpoint answers 501.
func NewHandler(service *report.Service, store reports.Store, archiver archive.Archiver) *Handler {
	return &Handler{service: service, store: store, archiver: archiver}
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ReportRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	chart, err := adapters.MapChartApiToDomain(req.Chart)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	reportReq := adapters.MapReportRequestApiToDomain(req)

	if h.store != nil {
		if err := h.persist(ctx, &chart, &reportReq); err != nil {
			logger.Error().Err(err).Msg("failed to store report")
			http.Error(w, "failed to store report", http.StatusInternalServerError)
			return
		}
	} else {
		reportReq.ID = uuid.NewString()
	}

	rendered, err := h.service.Generate(ctx, chart, reportReq)
	if err != nil {
		logger.Error().Err(err).Msg("failed to render report")
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	handlers.WriteJSON(w, r, http.StatusCreated, adapters.MapReportDomainToApi(*rendered))
}

func (h *Handler) persist(ctx context.Context, chart *domain.BirthChart, req *domain.AstrologyReport) error {
	chartRow, err := adapters.MapChartDomainToStore(*chart)
	if err != nil {
		return err
	}
	reportRow := adapters.MapReportDomainToStore(*req)
	if err := h.store.SaveChartReport(ctx, &chartRow, &reportRow); err != nil {
		return err
	}
	chart.ID = chartRow.ID
	req.ChartID = chartRow.ID
	req.ID = reportRow.ID
	req.CreatedAt = reportRow.CreatedAt
	return nil
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	rendered, ok := h.load(w, r)
	if !ok {
		return
	}
	handlers.WriteJSON(w, r, http.StatusOK, adapters.MapReportDomainToApi(*rendered))
}

func (h *Handler) ArchiveReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.archiver == nil {
		http.Error(w, "report archive is not configured", http.StatusNotImplemented)
		return
	}

	rendered, ok := h.load(w, r)
	if !ok {
		return
	}

	uri, err := h.archiver.Archive(ctx, *rendered)
	if err != nil {
		logger.Error().Err(err).Str("report", rendered.ID).Msg("failed to archive report")
		http.Error(w, "failed to archive report", http.StatusBadGateway)
		return
	}

	logger.Info().Str("report", rendered.ID).Str("uri", uri).Msg("report archived")
	handlers.WriteJSON(w, r, http.StatusOK, api.Archive{ReportID: rendered.ID, URI: uri})
}

func (h *Handler) ListChartReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	chartID := chi.URLParam(r, "chart")

	if h.store == nil {
		http.Error(w, "report storage is not configured", http.StatusNotFound)
		return
	}

	rows, err := h.store.ListReports(ctx, chartID)
	if err != nil {
		logger.Error().Err(err).Str("chart", chartID).Msg("failed to list reports")
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	response := make([]api.ReportSummary, 0, len(rows))
	for _, row := range rows {
		response = append(response, api.ReportSummary{
			ID:         row.ID,
			ChartID:    row.ChartID,
			ReportType: row.ReportType,
			Title:      row.Title,
			IsPremium:  row.IsPremium,
			CreatedAt:  row.CreatedAt,
		})
	}
	handlers.WriteJSON(w, r, http.StatusOK, response)
}

// load re-renders a stored report. It writes the error response itself and
// reports whether the caller should continue.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*domain.Report, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	if h.store == nil {
		http.Error(w, "report storage is not configured", http.StatusNotFound)
		return nil, false
	}

	row, err := h.store.GetReport(ctx, id)
	if errors.Is(err, reports.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to load report")
		http.Error(w, "failed to load report", http.StatusInternalServerError)
		return nil, false
	}

	chartRow, err := h.store.GetChart(ctx, row.ChartID)
	if err != nil {
		logger.Error().Err(err).Str("chart", row.ChartID).Msg("failed to load chart")
		http.Error(w, "failed to load chart", http.StatusInternalServerError)
		return nil, false
	}
	chart, err := adapters.MapChartStoreToDomain(*chartRow)
	if err != nil {
		logger.Error().Err(err).Str("chart", row.ChartID).Msg("failed to decode chart")
		http.Error(w, "failed to load chart", http.StatusInternalServerError)
		return nil, false
	}

	rendered, err := h.service.Generate(ctx, chart, adapters.MapReportStoreToDomain(*row))
	if err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to render report")
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return nil, false
	}
	return rendered, true
}
