package repositories

import (
	"MediPoint/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type XRayRepository interface {
	Create(ctx context.Context, xray *models.XRay) error
	GetByID(ctx context.Context, id string) (*models.XRay, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.XRay, error)
	Update(ctx context.Context, xray *models.XRay) error
	SetSharingFlag(ctx context.Context, id, audience string, value bool) (bool, error)
	Delete(ctx context.Context, id string) error
}

type xrayRepository struct {
	db *gorm.DB
}

func NewXRayRepository(db *gorm.DB) XRayRepository {
	return &xrayRepository{db: db}
}

func (r *xrayRepository) Create(ctx context.Context, xray *models.XRay) error {
	if err := r.db.WithContext(ctx).Create(xray).Error; err != nil {
		return fmt.Errorf("failed to create x-ray: %w", err)
	}
	return nil
}

func (r *xrayRepository) GetByID(ctx context.Context, id string) (*models.XRay, error) {
	var xray models.XRay
	err := r.db.WithContext(ctx).First(&xray, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get x-ray: %w", err)
	}
	return &xray, nil
}

func (r *xrayRepository) ListByPatient(ctx context.Context, patientID string) ([]models.XRay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var xrays []models.XRay
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date_taken DESC").
		Find(&xrays).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list x-rays: %w", err)
	}
	return xrays, nil
}

func (r *xrayRepository) Update(ctx context.Context, xray *models.XRay) error {
	if err := r.db.WithContext(ctx).Save(xray).Error; err != nil {
		return fmt.Errorf("failed to update x-ray: %w", err)
	}
	return nil
}

// SetSharingFlag flips exactly one of the two audience flags. The returned
// bool reports whether a row was updated.
func (r *xrayRepository) SetSharingFlag(ctx context.Context, id, audience string, value bool) (bool, error) {
	column, err := sharingColumn(audience)
	if err != nil {
		return false, err
	}
	result := r.db.WithContext(ctx).Model(&models.XRay{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update x-ray sharing flag: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *xrayRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.XRay{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete x-ray: %w", err)
	}
	return nil
}
