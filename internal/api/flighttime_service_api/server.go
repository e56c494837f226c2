package flighttime_service_api

import (
	"context"
	"errors"

	"github.com/Domenick1991/flighttime/internal/domain"
	"github.com/Domenick1991/flighttime/internal/service/flights"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Server implements FlightTimeServiceServer on top of the flight use case.
type Server struct {
	flights flights.FlightUseCase
}

func NewServer(flights flights.FlightUseCase) *Server {
	return &Server{flights: flights}
}

func (s *Server) GetWelcomeMessage(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{"message": s.flights.GetWelcomeMessage()})
}

func (s *Server) GetFlightTime(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	flight, err := s.flights.GetFlightTime(ctx, toLookupRequest(req))
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			return nil, status.Error(codes.NotFound, "Flight not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return structpb.NewStruct(map[string]any{
		"flight_id": flight.ID,
		"time":      flight.ScheduledTime,
	})
}

// toLookupRequest keeps only a string flight_id; anything else is absent.
func toLookupRequest(req *structpb.Struct) flights.LookupRequest {
	v, ok := req.GetFields()["flight_id"]
	if !ok {
		return flights.LookupRequest{}
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return flights.LookupRequest{}
	}
	id := sv.StringValue
	return flights.LookupRequest{FlightID: &id}
}

var _ FlightTimeServiceServer = (*Server)(nil)
