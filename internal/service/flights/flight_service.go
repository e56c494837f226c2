package flights

import (
	"context"
	"log"
	"time"

	"github.com/Domenick1991/flighttime/internal/domain"
	"github.com/Domenick1991/flighttime/internal/kafka"
	"github.com/Domenick1991/flighttime/internal/requestid"
)

const WelcomeMessage = "Welcome to the Flight Timing API"

type FlightUseCase interface {
	GetWelcomeMessage() string
	GetFlightTime(ctx context.Context, req LookupRequest) (*domain.Flight, error)
}

// LookupRequest is the transport-neutral lookup input. A nil FlightID is
// treated as the empty identifier.
type LookupRequest struct {
	FlightID *string `json:"flight_id"`
}

func (r LookupRequest) ID() string {
	if r.FlightID == nil {
		return ""
	}
	return *r.FlightID
}

type EventProducer interface {
	Publish(ctx context.Context, key string, payload interface{}) error
}

type FlightService struct {
	table    *domain.FlightTimeTable
	producer EventProducer
	now      func() time.Time
}

type FlightServiceOption func(*FlightService)

func WithEventProducer(producer EventProducer) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
	}
}

func NewFlightService(table *domain.FlightTimeTable, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{table: table, now: time.Now}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *FlightService) GetWelcomeMessage() string {
	return WelcomeMessage
}

func (s *FlightService) GetFlightTime(ctx context.Context, req LookupRequest) (*domain.Flight, error) {
	flight, err := s.table.Lookup(req.ID())
	s.publish(ctx, domain.NormalizeFlightID(req.ID()), flight)
	if err != nil {
		return nil, err
	}
	return flight, nil
}

func (s *FlightService) publish(ctx context.Context, flightID string, flight *domain.Flight) {
	if s.producer == nil {
		return
	}
	event := kafka.LookupEvent{
		Type:       kafka.LookupEventType,
		RequestID:  requestid.FromContext(ctx),
		FlightID:   flightID,
		Found:      flight != nil,
		OccurredAt: s.now().UTC(),
	}
	if flight != nil {
		event.Time = flight.ScheduledTime
	}
	if err := s.producer.Publish(ctx, flightID, event); err != nil {
		log.Printf("WARNING: failed to publish lookup event for %q: %v", flightID, err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
