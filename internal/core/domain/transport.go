package domain

import "time"

// RouteStatus represents the lifecycle state of a driving route.
type RouteStatus string

const (
	RouteScheduled RouteStatus = "scheduled"
	RouteEnRoute   RouteStatus = "en_route"
	RouteCompleted RouteStatus = "completed"
	RouteCancelled RouteStatus = "cancelled"
)

// routeTransitions defines the allowed state machine transitions.
var routeTransitions = map[RouteStatus][]RouteStatus{
	RouteScheduled: {RouteEnRoute, RouteCancelled},
	RouteEnRoute:   {RouteCompleted, RouteCancelled},
}

// ParseRouteStatus maps a raw token onto a known status.
func ParseRouteStatus(s string) (RouteStatus, bool) {
	switch st := RouteStatus(s); st {
	case RouteScheduled, RouteEnRoute, RouteCompleted, RouteCancelled:
		return st, true
	}
	return "", false
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s RouteStatus) CanTransitionTo(next RouteStatus) bool {
	for _, allowed := range routeTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RouteHistoryEntry records a single status transition on a route.
type RouteHistoryEntry struct {
	Status    RouteStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// Route is one pickup or drop-off the household drivers handle.
type Route struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Passenger     string              `json:"passenger"`
	Time          string              `json:"time"`
	Destination   string              `json:"destination"`
	DistanceMiles float64             `json:"distance_miles"`
	Status        RouteStatus         `json:"status"`
	History       []RouteHistoryEntry `json:"history"`
}

// VehicleStatus is the availability of a family vehicle.
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "available"
	VehicleInUse     VehicleStatus = "in-use"
)

// Vehicle is a family car.
type Vehicle struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Model       string        `json:"model"`
	FuelLevel   int           `json:"fuel_level"`
	Status      VehicleStatus `json:"status"`
	LastService string        `json:"last_service"`
}

// MaintenanceReminder is an upcoming vehicle service.
type MaintenanceReminder struct {
	Vehicle string `json:"vehicle"`
	Service string `json:"service"`
	Due     string `json:"due"`
	Mileage string `json:"mileage"`
}

// TransportSummary holds the transport board's headline numbers.
type TransportSummary struct {
	Scheduled         int     `json:"scheduled"`
	Completed         int     `json:"completed"`
	Routes            int     `json:"routes"`
	TotalMiles        float64 `json:"total_miles"`
	VehiclesAvailable int     `json:"vehicles_available"`
}
