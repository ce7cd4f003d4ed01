package repository

import "github.com/RW482/vora/entities"

type OrderRepository interface {
	Create(o *entities.Order) error
	Update(o *entities.Order) error
	FindByID(id string) (*entities.Order, error)
	Delete(id string) error
	List() ([]entities.Order, error)
}
