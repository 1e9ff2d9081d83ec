package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sharing audiences for prescriptions and x-rays. The two flags on a record
// are independent: sharing with the pharmacy says nothing about laboratory
// visibility and vice versa.
const (
	AudiencePharmacy   = "pharmacy"
	AudienceLaboratory = "laboratory"
)

// IsValidAudience reports whether audience names a sharing flag.
func IsValidAudience(audience string) bool {
	return audience == AudiencePharmacy || audience == AudienceLaboratory
}

// Prescription model
type Prescription struct {
	ID                   string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID            string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Medication           string    `gorm:"column:medication;not null" json:"medication"`
	Dosage               string    `gorm:"column:dosage;not null" json:"dosage"`
	Instructions         string    `gorm:"column:instructions" json:"instructions"`
	DateIssued           time.Time `gorm:"column:date_issued;not null" json:"date_issued"`
	IssuingDoctorID      string    `gorm:"column:issuing_doctor_id;not null;index" json:"issuing_doctor_id"`
	SharedWithPharmacy   bool      `gorm:"column:shared_with_pharmacy;not null;default:false" json:"shared_with_pharmacy"`
	SharedWithLaboratory bool      `gorm:"column:shared_with_laboratory;not null;default:false" json:"shared_with_laboratory"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Patient Patient `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Prescription) TableName() string {
	return "prescription"
}

func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// XRay model. CreatedByID is the staff user who recorded the image, a doctor
// or a laboratory technician.
type XRay struct {
	ID                   string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID            string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Description          string    `gorm:"column:description;not null" json:"description"`
	DateTaken            time.Time `gorm:"column:date_taken;not null" json:"date_taken"`
	ImageURL             string    `gorm:"column:image_url;not null" json:"image_url"`
	Notes                string    `gorm:"column:notes" json:"notes"`
	CreatedByID          string    `gorm:"column:created_by_id;not null;index" json:"created_by_id"`
	SharedWithPharmacy   bool      `gorm:"column:shared_with_pharmacy;not null;default:false" json:"shared_with_pharmacy"`
	SharedWithLaboratory bool      `gorm:"column:shared_with_laboratory;not null;default:false" json:"shared_with_laboratory"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Patient Patient `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (XRay) TableName() string {
	return "xray"
}

func (x *XRay) BeforeCreate(tx *gorm.DB) error {
	if x.ID == "" {
		x.ID = uuid.NewString()
	}
	return nil
}
