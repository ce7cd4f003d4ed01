package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RW482/vora/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Branch{},
		&entities.Truck{},
		&entities.Order{},
		&entities.User{},
		&entities.Setting{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// SeedDefaults installs the first-run dataset: one admin login and the two
// corridor branches. Runs only when the users table is empty, so a restored
// or synced database is never overwritten.
func SeedDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := entities.User{
		ID:       uuid.NewString(),
		Username: "admin",
		Password: "admin123",
		Role:     entities.RoleAdmin,
		FullName: "System Administrator",
	}
	branches := []entities.Branch{
		{ID: uuid.NewString(), Name: "Mumbai Main", Location: "Mumbai"},
		{ID: uuid.NewString(), Name: "Kolhapur Hub", Location: "Kolhapur"},
	}
	truck := entities.Truck{
		ID:              uuid.NewString(),
		DriverName:      "Rahul Shinde",
		DriverMobile:    "9876543210",
		FromStation:     "Mumbai",
		ToStation:       "Kolhapur",
		WeightCapacity:  12,
		AvailableWeight: 12,
		Status:          entities.TruckAvailable,
		CurrentRoute:    entities.RouteMumToKop,
		VehicleNo:       entities.NormalizeVehicleNo("MH-09-CQ-1234"),
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		if err := tx.Create(&branches).Error; err != nil {
			return err
		}
		if err := tx.Create(&truck).Error; err != nil {
			return err
		}
		log.Printf("[db] seeded defaults (admin user, %d branches, 1 truck)", len(branches))
		return nil
	})
}
