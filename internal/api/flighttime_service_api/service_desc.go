package flighttime_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName = "flighttime.v1.FlightTimeService"

	GetWelcomeMessageMethod = "/" + ServiceName + "/GetWelcomeMessage"
	GetFlightTimeMethod     = "/" + ServiceName + "/GetFlightTime"
)

// FlightTimeServiceServer is the server API for flighttime.v1.FlightTimeService.
// Messages are protobuf well-known types, so no generated stubs are needed.
type FlightTimeServiceServer interface {
	GetWelcomeMessage(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetFlightTime(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterFlightTimeServiceServer(s grpc.ServiceRegistrar, srv FlightTimeServiceServer) {
	s.RegisterService(&FlightTimeService_ServiceDesc, srv)
}

var FlightTimeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FlightTimeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetWelcomeMessage",
			Handler:    getWelcomeMessageHandler,
		},
		{
			MethodName: "GetFlightTime",
			Handler:    getFlightTimeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "flighttime/v1/flighttime.proto",
}

func getWelcomeMessageHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightTimeServiceServer).GetWelcomeMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetWelcomeMessageMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FlightTimeServiceServer).GetWelcomeMessage(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getFlightTimeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightTimeServiceServer).GetFlightTime(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetFlightTimeMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FlightTimeServiceServer).GetFlightTime(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
