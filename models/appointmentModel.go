package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses. Only scheduled and confirmed appointments block
// slots during availability computation.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// IsValidAppointmentStatus reports whether status is one of the four
// appointment states.
func IsValidAppointmentStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// BlocksSlot reports whether an appointment with the given status occupies
// its time slot.
func BlocksSlot(status string) bool {
	return status == StatusScheduled || status == StatusConfirmed
}

// Appointment model. PatientName, ClinicName and DoctorName are snapshots of
// the referenced entities taken when the appointment is written; renaming a
// clinic or doctor afterwards does not rewrite existing rows.
type Appointment struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID       string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	PatientName     string    `gorm:"column:patient_name;not null" json:"patient_name"`
	ClinicID        string    `gorm:"column:clinic_id;not null;index" json:"clinic_id"`
	ClinicName      string    `gorm:"column:clinic_name" json:"clinic_name"`
	DoctorID        *string   `gorm:"column:doctor_id;index" json:"doctor_id"`
	DoctorName      string    `gorm:"column:doctor_name" json:"doctor_name"`
	DateTime        time.Time `gorm:"column:date_time;not null;index" json:"date_time"`
	DurationMinutes int       `gorm:"column:duration_minutes;not null" json:"duration_minutes"`
	Reason          string    `gorm:"column:reason" json:"reason"`
	Status          string    `gorm:"column:status;check:status IN ('scheduled', 'confirmed', 'cancelled', 'completed');not null" json:"status"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Patient Patient `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Clinic  Clinic  `gorm:"foreignKey:ClinicID;references:ID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointment"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// End returns the appointment's exclusive end time.
func (a *Appointment) End() time.Time {
	return a.DateTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
