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
	StaffUserCacheExpiry = 7 * 24 * time.Hour

	staffUsersCacheKey = "staff_users_cache"
)

// StaffUserFilter narrows staff listings by foreign-key equality.
type StaffUserFilter struct {
	ClinicID   string
	Role       string
	ActiveOnly bool
}

type StaffUserRepository interface {
	Create(ctx context.Context, staff *models.StaffUser) error
	GetByID(ctx context.Context, id string) (*models.StaffUser, error)
	GetByAccessCode(ctx context.Context, accessCode string) (*models.StaffUser, error)
	GetByEmail(ctx context.Context, email string) (*models.StaffUser, error)
	AccessCodeExists(ctx context.Context, accessCode string) (bool, error)
	GetAll(ctx context.Context, filter StaffUserFilter) ([]models.StaffUser, error)
	Update(ctx context.Context, staff *models.StaffUser) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type staffUserRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewStaffUserRepository(db *gorm.DB, cache *cache.Cache) StaffUserRepository {
	return &staffUserRepository{db: db, cache: cache}
}

func (r *staffUserRepository) Create(ctx context.Context, staff *models.StaffUser) error {
	if err := r.db.WithContext(ctx).Create(staff).Error; err != nil {
		return fmt.Errorf("failed to create staff user: %w", err)
	}
	return r.cache.Delete(ctx, staffUsersCacheKey)
}

func (r *staffUserRepository) GetByID(ctx context.Context, id string) (*models.StaffUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getStaffCacheKey(id)
	cachedStaff, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedStaff != "" {
		var staff models.StaffUser
		if err := json.Unmarshal([]byte(cachedStaff), &staff); err == nil {
			return &staff, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get staff user from cache: %v", err)
	}

	var staff models.StaffUser
	err = r.db.WithContext(ctx).First(&staff, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff user: %w", err)
	}

	staffJSON, err := json.Marshal(staff)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal staff user: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, staffJSON, StaffUserCacheExpiry); err != nil {
		log.Printf("Failed to set staff user in cache: %v", err)
	}

	return &staff, nil
}

// GetByAccessCode is the staff login lookup. It reads the database directly
// because it returns the stored password hash.
func (r *staffUserRepository) GetByAccessCode(ctx context.Context, accessCode string) (*models.StaffUser, error) {
	var staff models.StaffUser
	err := r.db.WithContext(ctx).First(&staff, "access_code = ?", accessCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff user by access code: %w", err)
	}
	return &staff, nil
}

// GetByEmail backs the password reset flow. DB-direct for the same reason
// as GetByAccessCode.
func (r *staffUserRepository) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	var staff models.StaffUser
	err := r.db.WithContext(ctx).First(&staff, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff user by email: %w", err)
	}
	return &staff, nil
}

func (r *staffUserRepository) AccessCodeExists(ctx context.Context, accessCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.StaffUser{}).Where("access_code = ?", accessCode).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check access code existence: %w", err)
	}
	return count > 0, nil
}

func (r *staffUserRepository) GetAll(ctx context.Context, filter StaffUserFilter) ([]models.StaffUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.StaffUser{})
	if filter.ClinicID != "" {
		query = query.Where("clinic_id = ?", filter.ClinicID)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var staff []models.StaffUser
	if err := query.Order("name").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to get staff users: %w", err)
	}
	return staff, nil
}

func (r *staffUserRepository) Update(ctx context.Context, staff *models.StaffUser) error {
	if err := r.db.WithContext(ctx).Save(staff).Error; err != nil {
		return fmt.Errorf("failed to update staff user: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getStaffCacheKey(staff.ID)); err != nil {
		return fmt.Errorf("failed to delete staff user cache: %w", err)
	}
	return r.cache.Delete(ctx, staffUsersCacheKey)
}

func (r *staffUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.StaffUser{}).Where("id = ?", id).Update("last_login_at", at).Error
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return r.cache.Delete(ctx, r.getStaffCacheKey(id))
}

func (r *staffUserRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.StaffUser{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete staff user: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getStaffCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete staff user cache: %w", err)
	}
	return r.cache.Delete(ctx, staffUsersCacheKey)
}

func (r *staffUserRepository) getStaffCacheKey(id string) string {
	return fmt.Sprintf("staff_user_cache:%s", id)
}
