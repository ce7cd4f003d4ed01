package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"github.com/RW482/vora/entities"
	"github.com/RW482/vora/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) Update(u *entities.User) error { return r.db.Save(u).Error }

func (r *userRepo) FindByID(id string) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByUsername matches case-insensitively, as logins always have.
func (r *userRepo) FindByUsername(username string) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, "lower(username) = ?", strings.ToLower(username)).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Delete(id string) error {
	return r.db.Delete(&entities.User{}, "id = ?", id).Error
}

func (r *userRepo) List() ([]entities.User, error) {
	var list []entities.User
	return list, r.db.Order("created_at asc").Find(&list).Error
}
