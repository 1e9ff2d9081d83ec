package services

import (
	"MediPoint/models"
	"MediPoint/repositories"
	"context"
	"fmt"
	"time"
)

type CreateXRayInput struct {
	PatientID   string
	Description string
	DateTaken   time.Time
	ImageURL    string
	Notes       string
	CreatedByID string
}

type XRayService struct {
	xrays repositories.XRayRepository
}

func NewXRayService(xrays repositories.XRayRepository) *XRayService {
	return &XRayService{xrays: xrays}
}

func (s *XRayService) Create(ctx context.Context, input CreateXRayInput) (*models.XRay, error) {
	if input.PatientID == "" || input.Description == "" {
		return nil, fmt.Errorf("patient and description are required")
	}
	if input.DateTaken.IsZero() {
		input.DateTaken = time.Now()
	}

	xray := &models.XRay{
		PatientID:   input.PatientID,
		Description: input.Description,
		DateTaken:   input.DateTaken,
		ImageURL:    input.ImageURL,
		Notes:       input.Notes,
		CreatedByID: input.CreatedByID,
	}
	if err := s.xrays.Create(ctx, xray); err != nil {
		return nil, err
	}
	return xray, nil
}

// ListForViewer mirrors the prescription rules with laboratory in place of
// pharmacy: doctors and the owning patient see everything, laboratory staff
// see only laboratory-shared images.
func (s *XRayService) ListForViewer(ctx context.Context, patientID string, viewer Viewer) ([]models.XRay, error) {
	xrays, err := s.xrays.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	switch {
	case viewer.Role == models.RoleDoctor:
		return xrays, nil
	case viewer.Role == models.RolePatient && viewer.ID == patientID:
		return xrays, nil
	case viewer.Role == models.RoleLaboratory:
		shared := make([]models.XRay, 0, len(xrays))
		for _, x := range xrays {
			if x.SharedWithLaboratory {
				shared = append(shared, x)
			}
		}
		return shared, nil
	}
	return nil, ErrForbidden
}

func (s *XRayService) GetByID(ctx context.Context, id string) (*models.XRay, error) {
	xray, err := s.xrays.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if xray == nil {
		return nil, fmt.Errorf("x-ray %s: %w", id, ErrNotFound)
	}
	return xray, nil
}

func (s *XRayService) SetSharingFlag(ctx context.Context, id, audience string, value bool) error {
	if !models.IsValidAudience(audience) {
		return fmt.Errorf("unknown sharing audience %q", audience)
	}
	updated, err := s.xrays.SetSharingFlag(ctx, id, audience, value)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("x-ray %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *XRayService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.xrays.Delete(ctx, id)
}
