package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/RW482/vora/entities"
	"github.com/RW482/vora/pkg/order/repository"
)

type orderRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OrderRepository { return &orderRepo{db} }

func (r *orderRepo) Create(o *entities.Order) error { return r.db.Create(o).Error }

func (r *orderRepo) Update(o *entities.Order) error { return r.db.Save(o).Error }

func (r *orderRepo) FindByID(id string) (*entities.Order, error) {
	var o entities.Order
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) Delete(id string) error {
	return r.db.Delete(&entities.Order{}, "id = ?", id).Error
}

func (r *orderRepo) List() ([]entities.Order, error) {
	var list []entities.Order
	return list, r.db.Order("booking_date asc, created_at asc").Find(&list).Error
}
