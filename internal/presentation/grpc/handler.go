package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/OwaisQuadri/Musharakaat/internal/application/dto"
	"github.com/OwaisQuadri/Musharakaat/internal/application/usecase"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/model"
)

// FinancingHandler exposes the quote and statement use cases over gRPC.
type FinancingHandler struct {
	UnimplementedFinancingServiceServer

	quote     *usecase.QuoteFinancingUseCase
	statement *usecase.GenerateStatementUseCase
	logger    *slog.Logger
}

// NewFinancingHandler creates a new handler with all use-case dependencies.
func NewFinancingHandler(
	quote *usecase.QuoteFinancingUseCase,
	statement *usecase.GenerateStatementUseCase,
	logger *slog.Logger,
) *FinancingHandler {
	return &FinancingHandler{
		quote:     quote,
		statement: statement,
		logger:    logger,
	}
}

// QuoteFinancing estimates a level payment and its schedule.
func (h *FinancingHandler) QuoteFinancing(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	resp, err := h.quote.Execute(ctx, *req)
	if err != nil {
		h.logger.WarnContext(ctx, "quote financing failed", "title", req.Title, "error", err)
		return nil, toStatus(err)
	}
	return &resp, nil
}

// GenerateStatement replays a ledger against a fresh listing.
func (h *FinancingHandler) GenerateStatement(ctx context.Context, req *dto.StatementRequest) (*dto.StatementResponse, error) {
	resp, err := h.statement.Execute(ctx, *req)
	if err != nil {
		h.logger.WarnContext(ctx, "generate statement failed",
			"title", req.Title,
			"operations", len(req.Operations),
			"error", err,
		)
		return nil, toStatus(err)
	}
	return &resp, nil
}

// toStatus maps domain errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrInvalidTerm),
		errors.Is(err, model.ErrInvalidListing):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrScheduleDiverges):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
