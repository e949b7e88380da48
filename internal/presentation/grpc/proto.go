package grpc

// proto.go hand-writes the service descriptor for musharakaat.financing.v1.FinancingService.
// Messages are the application DTOs carried by the JSON codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/OwaisQuadri/Musharakaat/internal/application/dto"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "musharakaat.financing.v1.FinancingService"

// Full method names, as seen by interceptors and clients.
const (
	QuoteFinancingMethod    = "/" + ServiceName + "/QuoteFinancing"
	GenerateStatementMethod = "/" + ServiceName + "/GenerateStatement"
)

// FinancingServiceServer is the server API for FinancingService.
type FinancingServiceServer interface {
	QuoteFinancing(context.Context, *dto.QuoteRequest) (*dto.QuoteResponse, error)
	GenerateStatement(context.Context, *dto.StatementRequest) (*dto.StatementResponse, error)
	mustEmbedUnimplementedFinancingServiceServer()
}

// UnimplementedFinancingServiceServer provides forward-compatible default implementations.
type UnimplementedFinancingServiceServer struct{}

func (UnimplementedFinancingServiceServer) QuoteFinancing(context.Context, *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteFinancing not implemented")
}
func (UnimplementedFinancingServiceServer) GenerateStatement(context.Context, *dto.StatementRequest) (*dto.StatementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateStatement not implemented")
}
func (UnimplementedFinancingServiceServer) mustEmbedUnimplementedFinancingServiceServer() {}

// RegisterFinancingServiceServer registers the FinancingServiceServer with the gRPC server.
func RegisterFinancingServiceServer(s grpclib.ServiceRegistrar, srv FinancingServiceServer) {
	s.RegisterService(&_FinancingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _FinancingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FinancingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "QuoteFinancing", Handler: _FinancingService_QuoteFinancing_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "GenerateStatement", Handler: _FinancingService_GenerateStatement_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "musharakaat/financing/v1/financing.proto",
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_QuoteFinancing_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(dto.QuoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).QuoteFinancing(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuoteFinancingMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FinancingServiceServer).QuoteFinancing(ctx, req.(*dto.QuoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_GenerateStatement_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(dto.StatementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).GenerateStatement(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: GenerateStatementMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FinancingServiceServer).GenerateStatement(ctx, req.(*dto.StatementRequest))
	}
	return interceptor(ctx, in, info, handler)
}
