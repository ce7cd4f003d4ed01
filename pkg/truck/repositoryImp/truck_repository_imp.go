package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/RW482/vora/entities"
	"github.com/RW482/vora/pkg/truck/repository"
)

type truckRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TruckRepository { return &truckRepo{db} }

func (r *truckRepo) Create(t *entities.Truck) error { return r.db.Create(t).Error }

func (r *truckRepo) Update(t *entities.Truck) error { return r.db.Save(t).Error }

func (r *truckRepo) FindByID(id string) (*entities.Truck, error) {
	var t entities.Truck
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *truckRepo) List() ([]entities.Truck, error) {
	var list []entities.Truck
	return list, r.db.Order("created_at asc").Find(&list).Error
}

func (r *truckRepo) ListByRoute(route string) ([]entities.Truck, error) {
	var list []entities.Truck
	return list, r.db.Where("current_route = ?", route).Order("created_at asc").Find(&list).Error
}
