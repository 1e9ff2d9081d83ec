package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clinic model
type Clinic struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name;unique;not null" json:"name"`
	Address     string    `gorm:"column:address" json:"address"`
	Phone       string    `gorm:"column:phone" json:"phone"`
	Email       string    `gorm:"column:email" json:"email"`
	Description string    `gorm:"column:description" json:"description"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	StaffUsers   []StaffUser   `gorm:"foreignKey:ClinicID;references:ID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:ClinicID;references:ID" json:"-"`
}

func (Clinic) TableName() string {
	return "clinic"
}

func (c *Clinic) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// SeedClinics inserts the initial clinics into the database
func SeedClinics(db *gorm.DB) error {
	initialClinics := []Clinic{
		{
			Name:        "Main Medical Center",
			Address:     "123 Healthcare Ave, Medical District",
			Phone:       "+1-555-123-4567",
			Email:       "info@mainmedical.com",
			Description: "Primary healthcare facility providing comprehensive medical services",
			IsActive:    true,
		},
		{
			Name:        "Downtown Clinic",
			Address:     "456 Business Blvd, Downtown",
			Phone:       "+1-555-987-6543",
			Email:       "contact@downtownclinic.com",
			Description: "Specialized clinic serving the downtown community",
			IsActive:    true,
		},
		{
			Name:        "Community Health Center",
			Address:     "789 Community St, Suburbia",
			Phone:       "+1-555-456-7890",
			Email:       "hello@communityhealth.com",
			Description: "Community-focused healthcare center",
			IsActive:    true,
		},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, clinic := range initialClinics {
			if err := tx.FirstOrCreate(&clinic, Clinic{Name: clinic.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
