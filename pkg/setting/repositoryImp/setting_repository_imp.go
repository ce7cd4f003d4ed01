package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RW482/vora/entities"
	"github.com/RW482/vora/pkg/setting/repository"
)

type settingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SettingRepository { return &settingRepo{db} }

// Get returns "" (no error) for a missing key.
func (r *settingRepo) Get(key string) (string, error) {
	var s entities.Setting
	if err := r.db.First(&s, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return s.Value, nil
}

func (r *settingRepo) Set(key, value string) error {
	s := entities.Setting{Key: key, Value: value}
	return r.db.Save(&s).Error
}
