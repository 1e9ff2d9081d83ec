package repositories

import (
	"MediPoint/cache"
	"MediPoint/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	ClinicCacheExpiry = 24 * time.Hour

	clinicsCacheKey = "clinics_cache"
)

type ClinicRepository interface {
	Create(ctx context.Context, clinic *models.Clinic) error
	GetByID(ctx context.Context, id string) (*models.Clinic, error)
	GetAll(ctx context.Context) ([]models.Clinic, error)
	Update(ctx context.Context, clinic *models.Clinic) error
	Delete(ctx context.Context, id string) error
}

type clinicRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewClinicRepository(db *gorm.DB, cache *cache.Cache) ClinicRepository {
	return &clinicRepository{db: db, cache: cache}
}

func (r *clinicRepository) Create(ctx context.Context, clinic *models.Clinic) error {
	if err := r.db.WithContext(ctx).Create(clinic).Error; err != nil {
		return fmt.Errorf("failed to create clinic: %w", err)
	}
	return r.cache.Delete(ctx, clinicsCacheKey)
}

func (r *clinicRepository) GetByID(ctx context.Context, id string) (*models.Clinic, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getClinicCacheKey(id)
	cachedClinic, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedClinic != "" {
		var clinic models.Clinic
		if err := json.Unmarshal([]byte(cachedClinic), &clinic); err == nil {
			return &clinic, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get clinic from cache: %v", err)
	}

	var clinic models.Clinic
	err = r.db.WithContext(ctx).First(&clinic, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	clinicJSON, err := json.Marshal(clinic)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal clinic: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, clinicJSON, ClinicCacheExpiry); err != nil {
		log.Printf("Failed to set clinic in cache: %v", err)
	}

	return &clinic, nil
}

func (r *clinicRepository) GetAll(ctx context.Context) ([]models.Clinic, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedClinics, err := r.cache.Get(ctx, clinicsCacheKey)
	if err == nil && cachedClinics != "" {
		var clinics []models.Clinic
		if err := json.Unmarshal([]byte(cachedClinics), &clinics); err == nil {
			return clinics, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get clinics from cache: %v", err)
	}

	var clinics []models.Clinic
	if err := r.db.WithContext(ctx).Order("name").Find(&clinics).Error; err != nil {
		return nil, fmt.Errorf("failed to get all clinics: %w", err)
	}

	clinicsJSON, err := json.Marshal(clinics)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal clinics: %w", err)
	}
	if err := r.cache.Set(ctx, clinicsCacheKey, clinicsJSON, ClinicCacheExpiry); err != nil {
		log.Printf("Failed to set clinics in cache: %v", err)
	}

	return clinics, nil
}

func (r *clinicRepository) Update(ctx context.Context, clinic *models.Clinic) error {
	if err := r.db.WithContext(ctx).Save(clinic).Error; err != nil {
		return fmt.Errorf("failed to update clinic: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getClinicCacheKey(clinic.ID)); err != nil {
		return fmt.Errorf("failed to delete clinic cache: %w", err)
	}
	return r.cache.Delete(ctx, clinicsCacheKey)
}

func (r *clinicRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Clinic{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete clinic: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getClinicCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete clinic cache: %w", err)
	}
	return r.cache.Delete(ctx, clinicsCacheKey)
}

func (r *clinicRepository) getClinicCacheKey(id string) string {
	return fmt.Sprintf("clinic_cache:%s", id)
}
