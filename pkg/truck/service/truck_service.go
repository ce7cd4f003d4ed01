package service

import "github.com/RW482/vora/entities"

type RegisterTruckInput struct {
	DriverName     string  `json:"driver_name"`
	DriverMobile   string  `json:"driver_mobile"`
	FromStation    string  `json:"from_station"`
	ToStation      string  `json:"to_station"`
	WeightCapacity float64 `json:"weight_capacity"`
	CurrentRoute   string  `json:"current_route"`
	VehicleNo      string  `json:"vehicle_no"`
}

// TruckWithLoad pairs a truck with its live load: the summed weight of
// non-delivered orders assigned to its vehicle number. Capacity is
// informational only; nothing decrements availableWeight.
type TruckWithLoad struct {
	entities.Truck
	LiveLoad float64 `json:"live_load"`
}

type TruckService interface {
	Register(in RegisterTruckInput) (*entities.Truck, error)
	ListByRoute(route string) ([]TruckWithLoad, error)
	UpdateStatus(id, status string) (*entities.Truck, error)
	Manifest(id string) ([]entities.Order, error)
}
