package grpc

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/OwaisQuadri/Musharakaat/internal/application/dto"
	"github.com/OwaisQuadri/Musharakaat/internal/application/usecase"
	"github.com/OwaisQuadri/Musharakaat/internal/infrastructure/messaging"
	"github.com/OwaisQuadri/Musharakaat/pkg/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler() *FinancingHandler {
	logger := discardLogger()
	publisher := messaging.NewLogEventPublisher(logger, slog.LevelDebug)
	validate := validator.New()
	return NewFinancingHandler(
		usecase.NewQuoteFinancingUseCase(publisher, testutil.FixedClock{Time: testutil.TestQuoteTime}, validate),
		usecase.NewGenerateStatementUseCase(publisher, validate),
		logger,
	)
}

func dialTestServer(t *testing.T, cfg ServerConfig) *grpclib.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewServer(newTestHandler(), discardLogger(), cfg)
	go func() { _ = srv.ServeListener(lis) }()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpclib.NewClient("passthrough:///bufnet",
		grpclib.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpclib.WithTransportCredentials(insecure.NewCredentials()),
		grpclib.WithDefaultCallOptions(grpclib.CallContentSubtype(codecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func condoQuote() *dto.QuoteRequest {
	return &dto.QuoteRequest{
		FinancingTerms: dto.FinancingTerms{
			Title:    "Two bedroom condo",
			Value:    "1000",
			Currency: "CAD",
			RentRate: "0.01",
		},
		TermCount: 12,
		TermUnit:  "month",
	}
}

func TestServer_QuoteFinancing(t *testing.T) {
	conn := dialTestServer(t, ServerConfig{})

	var resp dto.QuoteResponse
	err := conn.Invoke(context.Background(), QuoteFinancingMethod, condoQuote(), &resp)

	require.NoError(t, err)
	testutil.AssertDecimalEqual(t, "88.33", resp.LevelPayment)
	assert.Equal(t, 13, resp.Periods)
	require.Len(t, resp.Schedule, 13)
	testutil.AssertDecimalEqual(t, "1", resp.Schedule[12].EquityRetired)
}

func TestServer_GenerateStatement(t *testing.T) {
	conn := dialTestServer(t, ServerConfig{})
	start := testutil.TestQuoteTime
	terms := condoQuote().FinancingTerms
	terms.SellerID = testutil.TestSellerID.String()
	req := &dto.StatementRequest{
		FinancingTerms: terms,
		BuyerID:        testutil.TestBuyerID.String(),
		StartDate:      start,
		Operations: []dto.LedgerOperation{
			{Kind: dto.OperationPayment, Amount: "110", Date: start.AddDate(0, 0, 1)},
		},
	}

	var resp dto.StatementResponse
	err := conn.Invoke(context.Background(), GenerateStatementMethod, req, &resp)

	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", resp.Status)
	testutil.AssertDecimalEqual(t, "100", resp.EquityPaid)
	testutil.AssertDecimalEqual(t, "0.9", resp.SellerEquityPercent)
	require.Len(t, resp.Invoices, 1)
	assert.Equal(t, "CLOSED", resp.Invoices[0].Status)
}

func TestServer_ErrorCodes(t *testing.T) {
	conn := dialTestServer(t, ServerConfig{})

	tests := []struct {
		name   string
		mutate func(*dto.QuoteRequest)
		code   codes.Code
	}{
		{"non numeric value", func(r *dto.QuoteRequest) { r.Value = "lots" }, codes.InvalidArgument},
		{"unsupported currency", func(r *dto.QuoteRequest) { r.Currency = "EUR" }, codes.InvalidArgument},
		{"unknown unit", func(r *dto.QuoteRequest) { r.TermUnit = "fortnight" }, codes.InvalidArgument},
		{"never converges", func(r *dto.QuoteRequest) {
			r.RentRate = "0.05"
			r.TermCount = 100
			r.TermUnit = "years"
		}, codes.FailedPrecondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := condoQuote()
			tt.mutate(req)

			var resp dto.QuoteResponse
			err := conn.Invoke(context.Background(), QuoteFinancingMethod, req, &resp)

			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestServer_Health(t *testing.T) {
	conn := dialTestServer(t, ServerConfig{Reflection: true})

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: ServiceName},
		grpclib.CallContentSubtype("proto"),
	)

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestUnimplementedFinancingServiceServer(t *testing.T) {
	var srv UnimplementedFinancingServiceServer

	_, err := srv.QuoteFinancing(context.Background(), &dto.QuoteRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))

	_, err = srv.GenerateStatement(context.Background(), &dto.StatementRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
