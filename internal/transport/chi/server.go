// Package chi implements the HTTP transport for the record-store API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/strdex/strdex/internal/db"
	"github.com/strdex/strdex/internal/domain"
	"github.com/strdex/strdex/internal/domain/filter"
	healthuc "github.com/strdex/strdex/internal/usecase/health"
	queryuc "github.com/strdex/strdex/internal/usecase/query"
	recorduc "github.com/strdex/strdex/internal/usecase/record"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server hosts the /strings API handlers.
type Server struct {
	records       *recorduc.Service
	queries       *queryuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	records *recorduc.Service,
	queries *queryuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		records: records,
		queries: queries,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		storageErrorHandler,
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeConflict),
		sentinelHandler(domain.ErrUnrecognizedQuery, http.StatusBadRequest, codeUnrecognizedQuery),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Routes mounts the API on r. The natural-language route is registered as a
// static path, so chi matches it before the {value} wildcard.
func (s *Server) Routes(r chi.Router) {
	r.Post("/strings", s.createString)
	r.Get("/strings", s.listStrings)
	r.Get("/strings/filter-by-natural-language", s.filterByNaturalLanguage)
	r.Get("/strings/{value}", s.getString)
	r.Delete("/strings/{value}", s.deleteString)
	r.Get("/health", s.healthCheck)
	r.Get("/metrics", s.metrics)
}

// createString handles POST /strings.
func (s *Server) createString(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value *string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Missing 'value' field")
		return
	}

	rec, err := s.records.Create(r.Context(), *req.Value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, recordToResponse(&rec))
}

// getString handles GET /strings/{value}.
func (s *Server) getString(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")

	rec, err := s.records.GetByValue(r.Context(), value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordToResponse(&rec))
}

// deleteString handles DELETE /strings/{value}.
func (s *Server) deleteString(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")

	if err := s.records.DeleteByValue(r.Context(), value); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listStrings handles GET /strings.
func (s *Server) listStrings(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	records, err := s.queries.ListFiltered(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Data:           recordsToResponse(records),
		Count:          len(records),
		FiltersApplied: f.Applied(),
	})
}

// filterByNaturalLanguage handles GET /strings/filter-by-natural-language.
func (s *Server) filterByNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Missing 'query' parameter")
		return
	}

	records, f, err := s.queries.ListByPhrase(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NaturalLanguageResponse{
		Data:  recordsToResponse(records),
		Count: len(records),
		InterpretedQuery: InterpretedQuery{
			Original:      query,
			ParsedFilters: f.Applied(),
		},
	})
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// metrics handles GET /metrics.
func (s *Server) metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// listFilterParams enumerates the supported filter fields; anything else is
// rejected rather than silently ignored.
var listFilterParams = map[string]struct{}{
	"is_palindrome":      {},
	"min_length":         {},
	"max_length":         {},
	"word_count":         {},
	"contains_character": {},
}

// filterFromQuery builds a structured filter from query parameters with
// explicit per-field validation.
func filterFromQuery(q url.Values) (filter.Filter, error) {
	for key := range q {
		if _, ok := listFilterParams[key]; !ok {
			return filter.Filter{}, errors.New("unsupported filter parameter: " + key)
		}
	}

	var isPalindrome *bool
	if raw := q.Get("is_palindrome"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return filter.Filter{}, errors.New("is_palindrome must be a boolean, got " + strconv.Quote(raw))
		}
		isPalindrome = &b
	}

	minLength, err := intParam(q, "min_length")
	if err != nil {
		return filter.Filter{}, err
	}
	maxLength, err := intParam(q, "max_length")
	if err != nil {
		return filter.Filter{}, err
	}
	wordCount, err := intParam(q, "word_count")
	if err != nil {
		return filter.Filter{}, err
	}

	f, err := filter.New(isPalindrome, minLength, maxLength, wordCount, q.Get("contains_character"))
	if err != nil {
		return filter.Filter{}, err
	}
	return f, nil
}

func intParam(q url.Values, name string) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer, got " + strconv.Quote(raw))
	}
	return &n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrUnrecognizedQuery,
		domain.ErrValidation,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// storageErrorHandler maps backing-storage failures to a distinct storage
// error, never an empty result.
func storageErrorHandler(w http.ResponseWriter, err error, _ string) bool {
	var dbErr *db.Error
	if !errors.As(err, &dbErr) {
		return false
	}
	writeError(w, http.StatusInternalServerError, codeStorageError, "storage failure")
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
