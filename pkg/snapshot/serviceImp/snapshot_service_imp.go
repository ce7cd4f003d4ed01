package serviceImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RW482/vora/entities"
	svc "github.com/RW482/vora/pkg/snapshot/service"
)

var ErrNilSnapshot = errors.New("nil snapshot")

type snapSvc struct{ db *gorm.DB }

func New(db *gorm.DB) svc.SnapshotService { return &snapSvc{db: db} }

func (s *snapSvc) Load() (*entities.Snapshot, error) {
	snap := &entities.Snapshot{
		Users:    []entities.User{},
		Branches: []entities.Branch{},
		Trucks:   []entities.Truck{},
		Orders:   []entities.Order{},
	}
	if err := s.db.Order("created_at asc").Find(&snap.Users).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("created_at asc").Find(&snap.Branches).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("created_at asc").Find(&snap.Trucks).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("booking_date asc, created_at asc").Find(&snap.Orders).Error; err != nil {
		return nil, err
	}
	return snap, nil
}

// Replace swaps the full contents of all four collections in one
// transaction. Vehicle numbers are normalized on the way in because
// imported or remote data may predate normalization.
func (s *snapSvc) Replace(snap *entities.Snapshot) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	for i := range snap.Trucks {
		snap.Trucks[i].VehicleNo = entities.NormalizeVehicleNo(snap.Trucks[i].VehicleNo)
	}
	for i := range snap.Orders {
		snap.Orders[i].VehicleAssignedNo = entities.NormalizeVehicleNo(snap.Orders[i].VehicleAssignedNo)
	}
	for i := range snap.Users {
		snap.Users[i].LinkedVehicleNo = entities.NormalizeVehicleNo(snap.Users[i].LinkedVehicleNo)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entities.Order{}, &entities.Truck{}, &entities.Branch{}, &entities.User{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		if len(snap.Users) > 0 {
			if err := tx.Create(&snap.Users).Error; err != nil {
				return err
			}
		}
		if len(snap.Branches) > 0 {
			if err := tx.Create(&snap.Branches).Error; err != nil {
				return err
			}
		}
		if len(snap.Trucks) > 0 {
			if err := tx.Create(&snap.Trucks).Error; err != nil {
				return err
			}
		}
		if len(snap.Orders) > 0 {
			if err := tx.Create(&snap.Orders).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
