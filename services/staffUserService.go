package services

import (
	"MediPoint/models"
	"MediPoint/repositories"
	"MediPoint/utils"
	"context"
	"fmt"
)

// CreateStaffUserInput carries the fields for a new staff account. The
// password arrives in the clear and is hashed before storage.
type CreateStaffUserInput struct {
	Name           string
	AccessCode     string
	Password       string
	Role           string
	ClinicID       string
	Email          string
	Phone          string
	Specialization string
	LicenseNumber  string
}

// UpdateStaffUserInput merges partial staff fields. An empty password keeps
// the stored hash; the role is immutable after creation.
type UpdateStaffUserInput struct {
	Name           *string
	AccessCode     *string
	Password       *string
	ClinicID       *string
	Email          *string
	Phone          *string
	Specialization *string
	LicenseNumber  *string
	IsActive       *bool
}

type StaffUserService struct {
	staff repositories.StaffUserRepository
}

func NewStaffUserService(staff repositories.StaffUserRepository) *StaffUserService {
	return &StaffUserService{staff: staff}
}

// Create validates and stores a new staff account. The role must be one of
// the four staff roles, the access code must be unused, and every non-admin
// role needs a clinic assignment.
func (s *StaffUserService) Create(ctx context.Context, input CreateStaffUserInput) (*models.StaffUser, error) {
	if err := utils.ValidateStaffUserData(input.Name, input.AccessCode, input.Password, input.Role); err != nil {
		return nil, err
	}
	if input.Role != models.RoleAdmin && input.ClinicID == "" {
		return nil, fmt.Errorf("clinic assignment is required for role %s", input.Role)
	}

	exists, err := s.staff.AccessCodeExists(ctx, input.AccessCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccessCodeTaken
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := &models.StaffUser{
		Name:           input.Name,
		AccessCode:     input.AccessCode,
		AccessPassword: hashed,
		Role:           input.Role,
		Email:          input.Email,
		Phone:          input.Phone,
		Specialization: input.Specialization,
		LicenseNumber:  input.LicenseNumber,
		IsActive:       true,
	}
	if input.ClinicID != "" {
		staff.ClinicID = &input.ClinicID
	}

	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffUserService) GetByID(ctx context.Context, id string) (*models.StaffUser, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, fmt.Errorf("staff user %s: %w", id, ErrNotFound)
	}
	return staff, nil
}

func (s *StaffUserService) GetAll(ctx context.Context, filter repositories.StaffUserFilter) ([]models.StaffUser, error) {
	return s.staff.GetAll(ctx, filter)
}

// ListDoctors returns the active doctor-role staff, optionally narrowed to a
// clinic. The booking flow uses this for the doctor picker.
func (s *StaffUserService) ListDoctors(ctx context.Context, clinicID string) ([]models.StaffUser, error) {
	return s.staff.GetAll(ctx, repositories.StaffUserFilter{
		ClinicID:   clinicID,
		Role:       models.RoleDoctor,
		ActiveOnly: true,
	})
}

// Update merges partial staff fields. The stored password survives when no
// new one is supplied.
func (s *StaffUserService) Update(ctx context.Context, id string, input UpdateStaffUserInput) (*models.StaffUser, error) {
	staff, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AccessCode != nil && *input.AccessCode != staff.AccessCode {
		exists, err := s.staff.AccessCodeExists(ctx, *input.AccessCode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrAccessCodeTaken
		}
		staff.AccessCode = *input.AccessCode
	}
	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		staff.AccessPassword = hashed
	}
	if input.ClinicID != nil {
		if *input.ClinicID == "" {
			if staff.Role != models.RoleAdmin {
				return nil, fmt.Errorf("clinic assignment is required for role %s", staff.Role)
			}
			staff.ClinicID = nil
		} else {
			clinicID := *input.ClinicID
			staff.ClinicID = &clinicID
		}
	}
	if input.Email != nil {
		staff.Email = *input.Email
	}
	if input.Phone != nil {
		staff.Phone = *input.Phone
	}
	if input.Specialization != nil {
		staff.Specialization = *input.Specialization
	}
	if input.LicenseNumber != nil {
		staff.LicenseNumber = *input.LicenseNumber
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}

	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffUserService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.staff.Delete(ctx, id)
}
