package services

import (
	"MediPoint/models"
	"MediPoint/repositories"
	"context"
	"fmt"
	"time"
)

// Viewer identifies who is asking for a record, for role-based read
// filtering. Admins get no blanket record access; record reads belong to the
// treating roles and the patient themselves.
type Viewer struct {
	ID   string
	Role string
}

// CreatePrescriptionInput carries the fields a doctor supplies when issuing
// a prescription. Both sharing flags start false.
type CreatePrescriptionInput struct {
	PatientID       string
	Medication      string
	Dosage          string
	Instructions    string
	DateIssued      time.Time
	IssuingDoctorID string
}

type PrescriptionService struct {
	prescriptions repositories.PrescriptionRepository
}

func NewPrescriptionService(prescriptions repositories.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{prescriptions: prescriptions}
}

func (s *PrescriptionService) Create(ctx context.Context, input CreatePrescriptionInput) (*models.Prescription, error) {
	if input.PatientID == "" || input.Medication == "" || input.Dosage == "" {
		return nil, fmt.Errorf("patient, medication and dosage are required")
	}
	if input.DateIssued.IsZero() {
		input.DateIssued = time.Now()
	}

	prescription := &models.Prescription{
		PatientID:       input.PatientID,
		Medication:      input.Medication,
		Dosage:          input.Dosage,
		Instructions:    input.Instructions,
		DateIssued:      input.DateIssued,
		IssuingDoctorID: input.IssuingDoctorID,
	}
	if err := s.prescriptions.Create(ctx, prescription); err != nil {
		return nil, err
	}
	return prescription, nil
}

// ListForViewer returns the patient's prescriptions the viewer may read.
// Doctors and the owning patient see everything; pharmacists see only
// pharmacy-shared records; everyone else sees nothing.
func (s *PrescriptionService) ListForViewer(ctx context.Context, patientID string, viewer Viewer) ([]models.Prescription, error) {
	prescriptions, err := s.prescriptions.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	switch {
	case viewer.Role == models.RoleDoctor:
		return prescriptions, nil
	case viewer.Role == models.RolePatient && viewer.ID == patientID:
		return prescriptions, nil
	case viewer.Role == models.RolePharmacist:
		shared := make([]models.Prescription, 0, len(prescriptions))
		for _, p := range prescriptions {
			if p.SharedWithPharmacy {
				shared = append(shared, p)
			}
		}
		return shared, nil
	}
	return nil, ErrForbidden
}

func (s *PrescriptionService) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	prescription, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, fmt.Errorf("prescription %s: %w", id, ErrNotFound)
	}
	return prescription, nil
}

// SetSharingFlag flips one audience flag; the other flag is untouched.
func (s *PrescriptionService) SetSharingFlag(ctx context.Context, id, audience string, value bool) error {
	if !models.IsValidAudience(audience) {
		return fmt.Errorf("unknown sharing audience %q", audience)
	}
	updated, err := s.prescriptions.SetSharingFlag(ctx, id, audience, value)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("prescription %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *PrescriptionService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.prescriptions.Delete(ctx, id)
}
