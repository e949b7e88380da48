package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/OwaisQuadri/Musharakaat/internal/application/dto"
	"github.com/OwaisQuadri/Musharakaat/internal/application/usecase"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/model"
)

const maxBodyBytes = 1 << 20

// FinancingHandler serves quotes and statements as JSON.
type FinancingHandler struct {
	quote     *usecase.QuoteFinancingUseCase
	statement *usecase.GenerateStatementUseCase
	logger    *slog.Logger
}

// NewFinancingHandler creates the REST handler.
func NewFinancingHandler(
	quote *usecase.QuoteFinancingUseCase,
	statement *usecase.GenerateStatementUseCase,
	logger *slog.Logger,
) *FinancingHandler {
	return &FinancingHandler{quote: quote, statement: statement, logger: logger}
}

// RegisterRoutes attaches the financing routes to the given mux.
func (h *FinancingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/quotes", h.createQuote)
	mux.HandleFunc("POST /v1/statements", h.createStatement)
}

func (h *FinancingHandler) createQuote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.quote.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "quote financing failed", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancingHandler) createStatement(w http.ResponseWriter, r *http.Request) {
	var req dto.StatementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.statement.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "generate statement failed", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body: " + err.Error()})
		return false
	}
	return true
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *FinancingHandler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), msg, "path", r.URL.Path, "error", err)
	} else {
		h.logger.InfoContext(r.Context(), msg, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrInvalidTerm),
		errors.Is(err, model.ErrInvalidListing):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrScheduleDiverges):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
