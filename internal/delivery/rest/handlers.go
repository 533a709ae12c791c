// Path: internal/delivery/rest/handlers.go
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hf-datasets/internal/domain"
	"hf-datasets/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// maxLimit bounds the result size a single request may ask for.
const maxLimit = 500

// datasetService defines the interface required by the handlers from the
// core service. This keeps the delivery layer decoupled from the full
// manager implementation.
type datasetService interface {
	GetPopularDatasets(ctx context.Context, q service.Query) ([]domain.DatasetRecord, error)
	GetDatasetDetail(ctx context.Context, id string) (*domain.DatasetRecord, error)
}

// DatasetHandlers holds dependencies for dataset-related HTTP handlers.
type DatasetHandlers struct {
	service datasetService
	log     zerolog.Logger
}

// NewDatasetHandlers creates a new handler struct.
func NewDatasetHandlers(s datasetService, log zerolog.Logger) *DatasetHandlers {
	return &DatasetHandlers{service: s, log: log}
}

// ListDatasets handles the popularity query.
// Path: /api/datasets?window=7d&limit=50&sort=downloads&refresh=true
func (h *DatasetHandlers) ListDatasets(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.service.GetPopularDatasets(r.Context(), q)
	if err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			writeError(w, http.StatusServiceUnavailable, "upstream data unavailable")
			return
		}
		h.log.Error().Err(err).Msg("popularity query failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// GetDataset handles the request for a single dataset.
// Path: /api/datasets/{namespace}/{name}
func (h *DatasetHandlers) GetDataset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "namespace") + "/" + chi.URLParam(r, "name")

	record, err := h.service.GetDatasetDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "dataset not found")
			return
		}
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			writeError(w, http.StatusServiceUnavailable, "upstream data unavailable")
			return
		}
		h.log.Error().Err(err).Str("id", id).Msg("detail lookup failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// parseQuery maps URL parameters onto a service query, rejecting anything
// the core would silently misread.
func parseQuery(r *http.Request) (service.Query, error) {
	q := service.Query{
		Window:  domain.WindowAllTime,
		Limit:   50,
		SortKey: domain.SortDownloads,
	}
	params := r.URL.Query()

	if s := params.Get("window"); s != "" {
		window, err := domain.ParseWindow(s)
		if err != nil {
			return service.Query{}, err
		}
		q.Window = window
	}
	if s := params.Get("sort"); s != "" {
		key, err := domain.ParseSortKey(s)
		if err != nil {
			return service.Query{}, err
		}
		q.SortKey = key
	}
	if s := params.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 || limit > maxLimit {
			return service.Query{}, errors.New("limit must be an integer between 1 and 500")
		}
		q.Limit = limit
	}
	if s := params.Get("refresh"); s == "1" || s == "true" {
		q.ForceRefresh = true
	}

	return q, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
