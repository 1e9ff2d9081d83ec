package services

import (
	"MediPoint/models"
	"MediPoint/repositories"
	"context"
	"fmt"
)

// UpdateClinicInput merges partial clinic fields. Renaming a clinic does not
// touch the clinic_name snapshots on existing appointments.
type UpdateClinicInput struct {
	Name        *string
	Address     *string
	Phone       *string
	Email       *string
	Description *string
	IsActive    *bool
}

type ClinicService struct {
	clinics repositories.ClinicRepository
}

func NewClinicService(clinics repositories.ClinicRepository) *ClinicService {
	return &ClinicService{clinics: clinics}
}

func (s *ClinicService) Create(ctx context.Context, clinic *models.Clinic) error {
	if clinic.Name == "" {
		return fmt.Errorf("clinic name is required")
	}
	return s.clinics.Create(ctx, clinic)
}

func (s *ClinicService) GetByID(ctx context.Context, id string) (*models.Clinic, error) {
	clinic, err := s.clinics.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, fmt.Errorf("clinic %s: %w", id, ErrNotFound)
	}
	return clinic, nil
}

func (s *ClinicService) GetAll(ctx context.Context) ([]models.Clinic, error) {
	return s.clinics.GetAll(ctx)
}

func (s *ClinicService) Update(ctx context.Context, id string, input UpdateClinicInput) (*models.Clinic, error) {
	clinic, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		clinic.Name = *input.Name
	}
	if input.Address != nil {
		clinic.Address = *input.Address
	}
	if input.Phone != nil {
		clinic.Phone = *input.Phone
	}
	if input.Email != nil {
		clinic.Email = *input.Email
	}
	if input.Description != nil {
		clinic.Description = *input.Description
	}
	if input.IsActive != nil {
		clinic.IsActive = *input.IsActive
	}

	if err := s.clinics.Update(ctx, clinic); err != nil {
		return nil, err
	}
	return clinic, nil
}

func (s *ClinicService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.clinics.Delete(ctx, id)
}
