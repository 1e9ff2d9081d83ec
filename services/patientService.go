package services

import (
	"MediPoint/models"
	"MediPoint/repositories"
	"MediPoint/utils"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// EnsurePatientInput drives the find-or-create keyed by phone that both the
// guest booking flow and registration share.
type EnsurePatientInput struct {
	Name       string
	Phone      string
	ExistingID string
	Password   string
	ClinicID   string
}

// UpdatePatientInput merges partial profile fields. Nil pointers leave the
// stored value untouched. Password and registered clinic are deliberately
// absent; those change through their own flows.
type UpdatePatientInput struct {
	Name             *string
	Phone            *string
	DateOfBirth      *string
	Gender           *string
	Address          *string
	EmergencyContact *string
	MedicalHistory   *string
	Allergies        *string
}

type PatientService struct {
	patients repositories.PatientRepository
	locker   Locker
}

func NewPatientService(patients repositories.PatientRepository, locker Locker) *PatientService {
	return &PatientService{patients: patients, locker: locker}
}

// EnsurePatient finds or creates the patient identified by phone. With an
// existing id the name and phone are refreshed in place; otherwise a patient
// holding the phone number is treated as the same person (name refresh,
// password backfilled only when none is stored). Calling it twice with the
// same phone and no id never creates a second record; the phone lookup and
// the create run under a lock keyed on the phone number.
func (s *PatientService) EnsurePatient(ctx context.Context, input EnsurePatientInput) (*models.Patient, error) {
	if input.Name == "" || input.Phone == "" {
		return nil, fmt.Errorf("name and phone are required")
	}

	lockKey := fmt.Sprintf("patient_phone_lock:%s", input.Phone)
	lockValue := uuid.New().String()
	locked, err := s.locker.Acquire(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire patient lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("patient record is busy, retry")
	}
	defer func() {
		if err := s.locker.Release(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release patient lock: %v", err)
		}
	}()

	if input.ExistingID != "" {
		return s.ensureByID(ctx, input)
	}
	return s.ensureByPhone(ctx, input)
}

func (s *PatientService) ensureByID(ctx context.Context, input EnsurePatientInput) (*models.Patient, error) {
	patient, err := s.patients.GetByID(ctx, input.ExistingID)
	if err != nil {
		return nil, err
	}

	if patient == nil || patient.Phone != input.Phone {
		existing, err := s.patients.GetByPhone(ctx, input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != input.ExistingID {
			return nil, ErrPhoneTaken
		}
	}

	if patient == nil {
		// An authenticated caller whose record is gone: recreate under
		// the same id so the session keeps working.
		patient = &models.Patient{
			ID:                 input.ExistingID,
			Name:               input.Name,
			Phone:              input.Phone,
			RegisteredClinicID: input.ClinicID,
			IsActive:           true,
		}
		if err := s.setPassword(patient, input.Password); err != nil {
			return nil, err
		}
		if err := s.patients.Create(ctx, patient); err != nil {
			return nil, err
		}
		return patient, nil
	}

	patient.Name = input.Name
	patient.Phone = input.Phone
	if patient.RegisteredClinicID == "" {
		patient.RegisteredClinicID = input.ClinicID
	}
	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) ensureByPhone(ctx context.Context, input EnsurePatientInput) (*models.Patient, error) {
	patient, err := s.patients.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		patient.Name = input.Name
		if patient.RegisteredClinicID == "" {
			patient.RegisteredClinicID = input.ClinicID
		}
		if input.Password != "" && patient.Password == "" {
			if err := s.setPassword(patient, input.Password); err != nil {
				return nil, err
			}
		}
		if err := s.patients.Update(ctx, patient); err != nil {
			return nil, err
		}
		return patient, nil
	}

	patient = &models.Patient{
		Name:               input.Name,
		Phone:              input.Phone,
		RegisteredClinicID: input.ClinicID,
		IsActive:           true,
	}
	if err := s.setPassword(patient, input.Password); err != nil {
		return nil, err
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) setPassword(patient *models.Patient, password string) error {
	if password == "" {
		return nil
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	patient.Password = hashed
	return nil
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("patient %s: %w", id, ErrNotFound)
	}
	return patient, nil
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.patients.GetAll(ctx)
}

// Update merges the provided profile fields. A phone change is checked for
// uniqueness before the write.
func (s *PatientService) Update(ctx context.Context, id string, input UpdatePatientInput) (*models.Patient, error) {
	patient, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Phone != nil && *input.Phone != patient.Phone {
		existing, err := s.patients.GetByPhone(ctx, *input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrPhoneTaken
		}
		patient.Phone = *input.Phone
	}
	if input.Name != nil {
		patient.Name = *input.Name
	}
	if input.DateOfBirth != nil {
		patient.DateOfBirth = *input.DateOfBirth
	}
	if input.Gender != nil {
		patient.Gender = *input.Gender
	}
	if input.Address != nil {
		patient.Address = *input.Address
	}
	if input.EmergencyContact != nil {
		patient.EmergencyContact = *input.EmergencyContact
	}
	if input.MedicalHistory != nil {
		patient.MedicalHistory = *input.MedicalHistory
	}
	if input.Allergies != nil {
		patient.Allergies = *input.Allergies
	}

	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.patients.Delete(ctx, id)
}
