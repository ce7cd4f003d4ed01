package repository

import "github.com/RW482/vora/entities"

type TruckRepository interface {
	Create(t *entities.Truck) error
	Update(t *entities.Truck) error
	FindByID(id string) (*entities.Truck, error)
	List() ([]entities.Truck, error)
	ListByRoute(route string) ([]entities.Truck, error)
}
