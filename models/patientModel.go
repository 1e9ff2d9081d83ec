package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient model. The phone number doubles as the login identifier and
// must stay unique across patients.
type Patient struct {
	ID                 string    `gorm:"primaryKey;column:id" json:"id"`
	Name               string    `gorm:"column:name;not null;index" json:"name"`
	Phone              string    `gorm:"column:phone;not null;uniqueIndex" json:"phone"`
	Password           string    `gorm:"column:password" json:"-"`
	DateOfBirth        string    `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender             string    `gorm:"column:gender;check:gender IN ('male', 'female', 'other') OR gender = ''" json:"gender"`
	Address            string    `gorm:"column:address" json:"address"`
	EmergencyContact   string    `gorm:"column:emergency_contact" json:"emergency_contact"`
	MedicalHistory     string    `gorm:"column:medical_history" json:"medical_history"`
	Allergies          string    `gorm:"column:allergies" json:"allergies"`
	IsActive           bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	RegisteredClinicID string    `gorm:"column:registered_clinic_id;index" json:"registered_clinic_id"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Appointments  []Appointment  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	XRays         []XRay         `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
