package repositories

import (
	"MediPoint/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *models.Prescription) error
	GetByID(ctx context.Context, id string) (*models.Prescription, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Prescription, error)
	Update(ctx context.Context, prescription *models.Prescription) error
	SetSharingFlag(ctx context.Context, id, audience string, value bool) (bool, error)
	Delete(ctx context.Context, id string) error
}

// Prescriptions are read straight from the database. Medical records change
// rarely but a stale read here is worse than the extra query.
type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	if err := r.db.WithContext(ctx).Create(prescription).Error; err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *prescriptionRepository) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.db.WithContext(ctx).First(&prescription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return &prescription, nil
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescriptions []models.Prescription
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date_issued DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Update(ctx context.Context, prescription *models.Prescription) error {
	if err := r.db.WithContext(ctx).Save(prescription).Error; err != nil {
		return fmt.Errorf("failed to update prescription: %w", err)
	}
	return nil
}

// SetSharingFlag flips exactly one of the two audience flags. The returned
// bool reports whether a row was updated.
func (r *prescriptionRepository) SetSharingFlag(ctx context.Context, id, audience string, value bool) (bool, error) {
	column, err := sharingColumn(audience)
	if err != nil {
		return false, err
	}
	result := r.db.WithContext(ctx).Model(&models.Prescription{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update prescription sharing flag: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *prescriptionRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Prescription{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete prescription: %w", err)
	}
	return nil
}

func sharingColumn(audience string) (string, error) {
	switch audience {
	case models.AudiencePharmacy:
		return "shared_with_pharmacy", nil
	case models.AudienceLaboratory:
		return "shared_with_laboratory", nil
	}
	return "", fmt.Errorf("unknown sharing audience %q", audience)
}
