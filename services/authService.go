package services

import (
	"MediPoint/models"
	"MediPoint/repositories"
	"MediPoint/utils"
	"context"
	"errors"
	"fmt"
	"time"
)

// RegisterPatientInput carries the fields a patient submits when creating
// an account themselves.
type RegisterPatientInput struct {
	Name               string
	Phone              string
	Password           string
	DateOfBirth        string
	Gender             string
	Address            string
	RegisteredClinicID string
}

type AuthService struct {
	patients repositories.PatientRepository
	staff    repositories.StaffUserRepository
}

func NewAuthService(patients repositories.PatientRepository, staff repositories.StaffUserRepository) *AuthService {
	return &AuthService{patients: patients, staff: staff}
}

// RegisterPatient validates the input, checks phone uniqueness before
// writing, and stores the patient with a hashed password.
func (s *AuthService) RegisterPatient(ctx context.Context, input RegisterPatientInput) (*models.Patient, error) {
	if err := utils.ValidatePatientRegistration(input.Name, input.Phone, input.Password); err != nil {
		return nil, err
	}

	exists, err := s.patients.PhoneExists(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("phone %s: %w", input.Phone, ErrPhoneTaken)
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	patient := &models.Patient{
		Name:               input.Name,
		Phone:              input.Phone,
		Password:           hashedPassword,
		DateOfBirth:        input.DateOfBirth,
		Gender:             input.Gender,
		Address:            input.Address,
		IsActive:           true,
		RegisteredClinicID: input.RegisteredClinicID,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// AuthenticatePatient verifies a patient's phone and password. Deactivated
// accounts are rejected even with a correct password.
func (s *AuthService) AuthenticatePatient(ctx context.Context, phone, password string) (*models.Patient, error) {
	patient, err := s.patients.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(patient.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if !patient.IsActive {
		return nil, ErrInactiveAccount
	}
	return patient, nil
}

// AuthenticateStaff verifies a staff member's access code and password and
// stamps last_login_at on success.
func (s *AuthService) AuthenticateStaff(ctx context.Context, accessCode, password string) (*models.StaffUser, error) {
	staff, err := s.staff.GetByAccessCode(ctx, accessCode)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(staff.AccessPassword, password) {
		return nil, ErrInvalidCredentials
	}
	if !staff.IsActive {
		return nil, ErrInactiveAccount
	}

	now := time.Now()
	if err := s.staff.UpdateLastLogin(ctx, staff.ID, now); err != nil {
		return nil, fmt.Errorf("failed to stamp last login: %w", err)
	}
	staff.LastLoginAt = &now
	return staff, nil
}

// Profile resolves the token claims to the matching account record.
func (s *AuthService) Profile(ctx context.Context, claims *utils.TokenClaims) (interface{}, error) {
	if claims.Role == models.RolePatient {
		patient, err := s.patients.GetByID(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, fmt.Errorf("patient %s: %w", claims.UserID, ErrNotFound)
		}
		return patient, nil
	}

	staff, err := s.staff.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, fmt.Errorf("staff user %s: %w", claims.UserID, ErrNotFound)
	}
	return staff, nil
}

// SendResetCode generates a reset code for the staff account behind the
// email, stores it in Redis, and mails it. Unknown emails return ErrNotFound
// so the handler can decide how much to reveal.
func (s *AuthService) SendResetCode(ctx context.Context, email string) error {
	staff, err := s.findStaffByEmail(ctx, email)
	if err != nil {
		return err
	}
	if staff == nil {
		return fmt.Errorf("account for %s: %w", email, ErrNotFound)
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}
	if err := utils.SetResetCode(ctx, email, code); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	return utils.SendResetCodeEmail(email, code)
}

// ChangePassword verifies the reset code and rewrites the staff password.
// The code is single use.
func (s *AuthService) ChangePassword(ctx context.Context, email, resetCode, newPassword string) error {
	if err := utils.ValidatePasswordReset(resetCode, newPassword); err != nil {
		return err
	}

	stored, err := utils.GetResetCode(ctx, email)
	if err != nil {
		return err
	}
	if stored == nil || *stored != resetCode {
		return utils.ErrInvalidResetCode
	}

	staff, err := s.findStaffByEmail(ctx, email)
	if err != nil {
		return err
	}
	if staff == nil {
		return fmt.Errorf("account for %s: %w", email, ErrNotFound)
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	staff.AccessPassword = hashedPassword
	if err := s.staff.Update(ctx, staff); err != nil {
		return err
	}
	return utils.DeleteResetCode(ctx, email)
}

// Logout puts the token on the revocation list so it stops working before
// its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *utils.TokenClaims) error {
	if claims == nil {
		return errors.New("no token claims")
	}
	return utils.RevokeToken(ctx, claims)
}

func (s *AuthService) findStaffByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	return s.staff.GetByEmail(ctx, email)
}
