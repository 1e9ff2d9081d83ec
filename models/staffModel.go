package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff roles. RolePatient never appears on a StaffUser row; it exists for
// token claims and profile shaping only.
const (
	RoleDoctor     = "doctor"
	RolePharmacist = "pharmacist"
	RoleLaboratory = "laboratory"
	RoleAdmin      = "admin"
	RolePatient    = "patient"
)

// StaffRoles lists the roles a StaffUser row may carry.
var StaffRoles = []string{RoleDoctor, RolePharmacist, RoleLaboratory, RoleAdmin}

// IsStaffRole reports whether role is a valid StaffUser role.
func IsStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

// StaffUser model. The access code is the staff login identifier. ClinicID is
// required for doctor/pharmacist/laboratory roles and optional for admins.
type StaffUser struct {
	ID             string     `gorm:"primaryKey;column:id" json:"id"`
	Name           string     `gorm:"column:name;not null" json:"name"`
	AccessCode     string     `gorm:"column:access_code;not null;uniqueIndex" json:"access_code"`
	AccessPassword string     `gorm:"column:access_password;not null" json:"-"`
	Role           string     `gorm:"column:role;check:role IN ('doctor', 'pharmacist', 'laboratory', 'admin');not null;index" json:"role"`
	ClinicID       *string    `gorm:"column:clinic_id;index" json:"clinic_id"`
	Email          string     `gorm:"column:email" json:"email"`
	Phone          string     `gorm:"column:phone" json:"phone"`
	Specialization string     `gorm:"column:specialization" json:"specialization"`
	LicenseNumber  string     `gorm:"column:license_number" json:"license_number"`
	IsActive       bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	LastLoginAt    *time.Time `gorm:"column:last_login_at" json:"last_login_at"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Clinic *Clinic `gorm:"foreignKey:ClinicID;references:ID" json:"-"`
}

func (StaffUser) TableName() string {
	return "staff_user"
}

func (u *StaffUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// SeedStaffUsers inserts the initial staff roster into the database. The
// access passwords arrive pre-hashed from the caller.
func SeedStaffUsers(db *gorm.DB, adminPassword, staffPassword string) error {
	var mainClinic, downtownClinic, communityClinic Clinic
	if err := db.First(&mainClinic, "name = ?", "Main Medical Center").Error; err != nil {
		return err
	}
	if err := db.First(&downtownClinic, "name = ?", "Downtown Clinic").Error; err != nil {
		return err
	}
	if err := db.First(&communityClinic, "name = ?", "Community Health Center").Error; err != nil {
		return err
	}

	initialStaff := []StaffUser{
		{
			Name:           "Admin User",
			AccessCode:     "ADMIN123",
			AccessPassword: adminPassword,
			Role:           RoleAdmin,
			ClinicID:       &mainClinic.ID,
			Email:          "admin@mainmedical.com",
			Phone:          "+15551111111",
			IsActive:       true,
		},
		{
			Name:           "Dr. Sarah Johnson",
			AccessCode:     "DOCTOR123",
			AccessPassword: staffPassword,
			Role:           RoleDoctor,
			ClinicID:       &mainClinic.ID,
			Email:          "dr.johnson@mainmedical.com",
			Phone:          "+15552222222",
			Specialization: "Internal Medicine",
			LicenseNumber:  "MD123456",
			IsActive:       true,
		},
		{
			Name:           "Dr. Michael Chen",
			AccessCode:     "DOCTOR456",
			AccessPassword: staffPassword,
			Role:           RoleDoctor,
			ClinicID:       &downtownClinic.ID,
			Email:          "dr.chen@downtownclinic.com",
			Phone:          "+15553333333",
			Specialization: "Cardiology",
			LicenseNumber:  "MD789012",
			IsActive:       true,
		},
		{
			Name:           "Pharm. Lisa Rodriguez",
			AccessCode:     "PHARM123",
			AccessPassword: staffPassword,
			Role:           RolePharmacist,
			ClinicID:       &mainClinic.ID,
			Email:          "pharm.rodriguez@mainmedical.com",
			Phone:          "+15554444444",
			LicenseNumber:  "PH123456",
			IsActive:       true,
		},
		{
			Name:           "Pharm. David Kim",
			AccessCode:     "PHARM456",
			AccessPassword: staffPassword,
			Role:           RolePharmacist,
			ClinicID:       &communityClinic.ID,
			Email:          "pharm.kim@communityhealth.com",
			Phone:          "+15555555555",
			LicenseNumber:  "PH789012",
			IsActive:       true,
		},
		{
			Name:           "Lab Tech. Emily Brown",
			AccessCode:     "LAB123",
			AccessPassword: staffPassword,
			Role:           RoleLaboratory,
			ClinicID:       &mainClinic.ID,
			Email:          "lab.brown@mainmedical.com",
			Phone:          "+15556666666",
			LicenseNumber:  "LT123456",
			IsActive:       true,
		},
		{
			Name:           "Lab Tech. Robert Wilson",
			AccessCode:     "LAB456",
			AccessPassword: staffPassword,
			Role:           RoleLaboratory,
			ClinicID:       &downtownClinic.ID,
			Email:          "lab.wilson@downtownclinic.com",
			Phone:          "+15557777777",
			LicenseNumber:  "LT789012",
			IsActive:       true,
		},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, staff := range initialStaff {
			if err := tx.FirstOrCreate(&staff, StaffUser{AccessCode: staff.AccessCode}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
