package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OwaisQuadri/Musharakaat/internal/application/dto"
	"github.com/OwaisQuadri/Musharakaat/internal/application/usecase"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/event"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/port"
	"github.com/OwaisQuadri/Musharakaat/pkg/testutil"
)

type stubPublisher struct {
	err error
}

func (p stubPublisher) Publish(context.Context, ...event.DomainEvent) error { return p.err }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(publisher port.EventPublisher, checks map[string]ReadinessCheck) http.Handler {
	logger := discardLogger()
	validate := validator.New()
	financing := NewFinancingHandler(
		usecase.NewQuoteFinancingUseCase(publisher, testutil.FixedClock{Time: testutil.TestQuoteTime}, validate),
		usecase.NewGenerateStatementUseCase(publisher, validate),
		logger,
	)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "# metrics\n")
	})
	return NewRouter(NewHealthHandler("musharakahd", checks, logger), financing, metrics)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const condoQuoteJSON = `{
	"title": "Two bedroom condo",
	"value": "1,000",
	"currency": "CAD",
	"rent_rate": "0.01",
	"term_count": 12,
	"term_unit": "months"
}`

func TestHealth(t *testing.T) {
	router := newTestRouter(stubPublisher{}, nil)

	rec := do(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"musharakahd"}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","service":"musharakahd"}`, rec.Body.String())
}

func TestReadinessFailure(t *testing.T) {
	router := newTestRouter(stubPublisher{}, map[string]ReadinessCheck{
		"kafka": func(context.Context) error { return errors.New("no brokers reachable") },
	})

	rec := do(t, router, http.MethodGet, "/readyz", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "no brokers reachable")
}

func TestMetricsRoute(t *testing.T) {
	rec := do(t, newTestRouter(stubPublisher{}, nil), http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics\n", rec.Body.String())
}

func TestCreateQuote(t *testing.T) {
	rec := do(t, newTestRouter(stubPublisher{}, nil), http.MethodPost, "/v1/quotes", condoQuoteJSON)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	testutil.AssertDecimalEqual(t, "88.33", resp.LevelPayment)
	assert.Equal(t, 13, resp.Periods)
	assert.Equal(t, "12 months", resp.Term)
	assert.Contains(t, resp.Summary, "13 payments of 88.33 CAD")
}

func TestCreateQuote_Errors(t *testing.T) {
	tests := []struct {
		name      string
		publisher port.EventPublisher
		body      string
		status    int
	}{
		{"malformed json", stubPublisher{}, `{"title":`, http.StatusBadRequest},
		{"unknown field", stubPublisher{}, `{"title":"x","colour":"red"}`, http.StatusBadRequest},
		{"invalid input", stubPublisher{}, strings.Replace(condoQuoteJSON, `"1,000"`, `"-5"`, 1), http.StatusBadRequest},
		{"diverging schedule", stubPublisher{}, `{
			"title": "Farm", "value": "1000", "currency": "CAD", "rent_rate": "0.05",
			"term_count": 100, "term_unit": "years"
		}`, http.StatusUnprocessableEntity},
		{"publisher failure", stubPublisher{err: errors.New("broker down")}, condoQuoteJSON, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestRouter(tt.publisher, nil), http.MethodPost, "/v1/quotes", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestCreateStatement(t *testing.T) {
	body := `{
		"title": "Two bedroom condo",
		"value": "1000",
		"currency": "CAD",
		"rent_rate": "0.01",
		"start_date": "2024-03-01T10:00:00Z",
		"operations": [
			{"kind": "invoice", "date": "2024-04-05T10:00:00Z"},
			{"kind": "payment", "amount": "80", "date": "2024-04-05T10:00:00Z"}
		]
	}`

	rec := do(t, newTestRouter(stubPublisher{}, nil), http.MethodPost, "/v1/statements", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.StatementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	testutil.AssertDecimalEqual(t, "60", resp.HeldAmount)
	require.Len(t, resp.Invoices, 2)
	assert.Equal(t, "LATE", resp.Invoices[0].Standing)
	assert.Equal(t, "RENT_ONLY", resp.Invoices[1].Standing)
}

func TestCreateStatement_RejectsUnknownOperation(t *testing.T) {
	body := `{
		"title": "Two bedroom condo", "value": "1000", "currency": "CAD", "rent_rate": "0.01",
		"start_date": "2024-03-01T10:00:00Z",
		"operations": [{"kind": "refund", "date": "2024-04-05T10:00:00Z"}]
	}`

	rec := do(t, newTestRouter(stubPublisher{}, nil), http.MethodPost, "/v1/statements", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestRouter(stubPublisher{}, nil), http.MethodGet, "/v1/quotes", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
