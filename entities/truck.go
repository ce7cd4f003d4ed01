package entities

import "time"

const (
	TruckAvailable = "Available"
	TruckOnRoute   = "On Route"
	TruckCompleted = "Completed"
)

type Truck struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	DriverName     string    `json:"driver_name"`
	DriverMobile   string    `json:"driver_mobile"`
	FromStation    string    `json:"from_station"`
	ToStation      string    `json:"to_station"`
	WeightCapacity float64   `json:"weight_capacity"`
	AvailableWeight float64  `json:"available_weight"`
	Status         string    `gorm:"index" json:"status"` // Available|On Route|Completed
	CurrentRoute   string    `gorm:"index" json:"current_route"`
	VehicleNo      string    `gorm:"index" json:"vehicle_no"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
