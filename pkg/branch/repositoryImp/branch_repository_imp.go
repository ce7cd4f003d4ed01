package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/RW482/vora/entities"
	"github.com/RW482/vora/pkg/branch/repository"
)

type branchRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BranchRepository { return &branchRepo{db} }

func (r *branchRepo) Create(b *entities.Branch) error { return r.db.Create(b).Error }

func (r *branchRepo) List() ([]entities.Branch, error) {
	var list []entities.Branch
	return list, r.db.Order("created_at asc").Find(&list).Error
}
