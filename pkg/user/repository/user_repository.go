package repository

import "github.com/RW482/vora/entities"

type UserRepository interface {
	Create(u *entities.User) error
	Update(u *entities.User) error
	FindByID(id string) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	Delete(id string) error
	List() ([]entities.User, error)
}
