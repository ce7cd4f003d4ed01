package entities

import "time"

const (
	RoleAdmin  = "Admin"
	RoleStaff  = "Staff"
	RoleDriver = "Driver"
)

type User struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	Username           string    `gorm:"index" json:"username"`
	Password           string    `json:"password"`
	Role               string    `json:"role"` // Admin|Staff|Driver
	FullName           string    `json:"full_name"`
	LinkedVehicleNo    string    `json:"linked_vehicle_no"` // drivers only
	ThemePreference    string    `json:"theme_preference"`  // dark|light
	LanguagePreference string    `json:"language_preference"` // en|mr
	CreatedAt          time.Time `json:"created_at"`
}
