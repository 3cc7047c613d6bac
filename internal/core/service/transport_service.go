package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
	"github.com/familyhub/dashboard/internal/core/validation"
)

// TransportService owns the day's routes, the fleet, and its maintenance list.
type TransportService struct {
	routes      []domain.Route
	vehicles    []domain.Vehicle
	maintenance []domain.MaintenanceReminder
	now         func() time.Time
	log         zerolog.Logger
}

// NewTransportService returns an empty board.
func NewTransportService(log zerolog.Logger) *TransportService {
	return &TransportService{
		now: func() time.Time { return time.Now().UTC() },
		log: log,
	}
}

// Seed loads the board. Routes and vehicles without an id get one.
func (s *TransportService) Seed(routes []domain.Route, vehicles []domain.Vehicle, maintenance []domain.MaintenanceReminder) {
	for _, r := range routes {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if r.Status == "" {
			r.Status = domain.RouteScheduled
		}
		r.History = append([]domain.RouteHistoryEntry{}, domain.RouteHistoryEntry{Status: r.Status, Timestamp: s.now()})
		s.routes = append(s.routes, r)
	}
	for _, v := range vehicles {
		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		s.vehicles = append(s.vehicles, v)
	}
	s.maintenance = append(s.maintenance, maintenance...)
}

// Routes returns the routes in insertion order, history included.
func (s *TransportService) Routes() []domain.Route {
	out := make([]domain.Route, len(s.routes))
	for i, r := range s.routes {
		out[i] = cloneRoute(r)
	}
	return out
}

// AddRoute schedules a new route.
func (s *TransportService) AddRoute(_ context.Context, input ports.AddRouteInput) (domain.Route, error) {
	if err := validation.Struct(input); err != nil {
		return domain.Route{}, err
	}
	route := domain.Route{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Passenger:     input.Passenger,
		Time:          input.Time,
		Destination:   input.Destination,
		DistanceMiles: input.DistanceMiles,
		Status:        domain.RouteScheduled,
		History:       []domain.RouteHistoryEntry{{Status: domain.RouteScheduled, Timestamp: s.now()}},
	}
	s.routes = append(s.routes, route)
	s.log.Info().Str("route_id", route.ID).Str("title", route.Title).Msg("route scheduled")
	return cloneRoute(route), nil
}

// Advance moves a route along its status machine and records the change.
func (s *TransportService) Advance(_ context.Context, id string, next domain.RouteStatus) (domain.Route, error) {
	for i := range s.routes {
		route := &s.routes[i]
		if route.ID != id {
			continue
		}
		if !route.Status.CanTransitionTo(next) {
			return domain.Route{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, route.Status, next)
		}
		route.Status = next
		route.History = append(route.History, domain.RouteHistoryEntry{Status: next, Timestamp: s.now()})
		s.log.Info().Str("route_id", id).Str("status", string(next)).Msg("route status updated")
		return cloneRoute(*route), nil
	}
	return domain.Route{}, domain.ErrNotFound
}

// Vehicles returns the family fleet.
func (s *TransportService) Vehicles() []domain.Vehicle {
	out := make([]domain.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Maintenance returns the upcoming service reminders.
func (s *TransportService) Maintenance() []domain.MaintenanceReminder {
	out := make([]domain.MaintenanceReminder, len(s.maintenance))
	copy(out, s.maintenance)
	return out
}

// Summary counts live routes. Cancelled routes do not add to the mileage.
func (s *TransportService) Summary() domain.TransportSummary {
	sum := domain.TransportSummary{Routes: len(s.routes)}
	for _, r := range s.routes {
		switch r.Status {
		case domain.RouteScheduled, domain.RouteEnRoute:
			sum.Scheduled++
		case domain.RouteCompleted:
			sum.Completed++
		}
		if r.Status != domain.RouteCancelled {
			sum.TotalMiles += r.DistanceMiles
		}
	}
	for _, v := range s.vehicles {
		if v.Status == domain.VehicleAvailable {
			sum.VehiclesAvailable++
		}
	}
	return sum
}

func cloneRoute(r domain.Route) domain.Route {
	r.History = append([]domain.RouteHistoryEntry(nil), r.History...)
	return r
}
