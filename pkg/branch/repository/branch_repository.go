package repository

import "github.com/RW482/vora/entities"

type BranchRepository interface {
	Create(b *entities.Branch) error
	List() ([]entities.Branch, error)
}
