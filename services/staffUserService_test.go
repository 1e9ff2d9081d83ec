package services

import (
	"MediPoint/models"
	"MediPoint/repositories"
	"MediPoint/utils"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validStaffInput() CreateStaffUserInput {
	return CreateStaffUserInput{
		Name:       "Dr. Sarah Johnson",
		AccessCode: "DOCTOR999",
		Password:   "Doctor@1pass",
		Role:       models.RoleDoctor,
		ClinicID:   "c1",
	}
}

func TestCreateStaffUserHashesPassword(t *testing.T) {
	var created *models.StaffUser
	repo := &mockStaffRepo{
		CreateFn: func(ctx context.Context, staff *models.StaffUser) error {
			created = staff
			return nil
		},
	}
	service := NewStaffUserService(repo)

	staff, err := service.Create(context.Background(), validStaffInput())
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.NotEqual(t, "Doctor@1pass", staff.AccessPassword)
	assert.True(t, utils.CheckPassword(staff.AccessPassword, "Doctor@1pass"))
}

func TestCreateStaffUserAccessCodeConflict(t *testing.T) {
	repo := &mockStaffRepo{
		AccessCodeExistsFn: func(ctx context.Context, accessCode string) (bool, error) {
			return true, nil
		},
	}
	service := NewStaffUserService(repo)

	_, err := service.Create(context.Background(), validStaffInput())
	assert.ErrorIs(t, err, ErrAccessCodeTaken)
}

func TestCreateStaffUserRequiresClinicForNonAdmins(t *testing.T) {
	service := NewStaffUserService(&mockStaffRepo{})

	input := validStaffInput()
	input.ClinicID = ""
	_, err := service.Create(context.Background(), input)
	assert.Error(t, err)

	admin := CreateStaffUserInput{
		Name:       "System Admin",
		AccessCode: "ADMIN999",
		Password:   "Admin@1pass",
		Role:       models.RoleAdmin,
	}
	created, err := service.Create(context.Background(), admin)
	assert.NoError(t, err)
	assert.Nil(t, created.ClinicID)
}

func TestCreateStaffUserRejectsBadRole(t *testing.T) {
	service := NewStaffUserService(&mockStaffRepo{})

	input := validStaffInput()
	input.Role = "receptionist"
	_, err := service.Create(context.Background(), input)
	assert.Error(t, err)
}

func TestUpdateStaffUserKeepsPasswordWhenEmpty(t *testing.T) {
	storedHash := "stored-hash"
	var saved *models.StaffUser
	clinic := "c1"
	repo := &mockStaffRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.StaffUser, error) {
			return &models.StaffUser{
				ID:             id,
				Name:           "Dr. Sarah Johnson",
				AccessCode:     "DOCTOR123",
				AccessPassword: storedHash,
				Role:           models.RoleDoctor,
				ClinicID:       &clinic,
			}, nil
		},
		UpdateFn: func(ctx context.Context, staff *models.StaffUser) error {
			saved = staff
			return nil
		},
	}
	service := NewStaffUserService(repo)

	empty := ""
	name := "Dr. Sarah Johnson-Lee"
	updated, err := service.Update(context.Background(), "s1", UpdateStaffUserInput{
		Name:     &name,
		Password: &empty,
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, storedHash, updated.AccessPassword)
	assert.Equal(t, "Dr. Sarah Johnson-Lee", updated.Name)
}

func TestUpdateStaffUserAccessCodeConflict(t *testing.T) {
	clinic := "c1"
	repo := &mockStaffRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.StaffUser, error) {
			return &models.StaffUser{ID: id, AccessCode: "DOCTOR123", Role: models.RoleDoctor, ClinicID: &clinic}, nil
		},
		AccessCodeExistsFn: func(ctx context.Context, accessCode string) (bool, error) {
			return accessCode == "TAKEN123", nil
		},
	}
	service := NewStaffUserService(repo)

	taken := "TAKEN123"
	_, err := service.Update(context.Background(), "s1", UpdateStaffUserInput{AccessCode: &taken})
	assert.ErrorIs(t, err, ErrAccessCodeTaken)
}

func TestListDoctorsFiltersByRoleAndClinic(t *testing.T) {
	var captured repositories.StaffUserFilter
	repo := &mockStaffRepo{
		GetAllFn: func(ctx context.Context, filter repositories.StaffUserFilter) ([]models.StaffUser, error) {
			captured = filter
			return []models.StaffUser{{ID: "d1", Role: models.RoleDoctor}}, nil
		},
	}
	service := NewStaffUserService(repo)

	doctors, err := service.ListDoctors(context.Background(), "c1")
	assert.NoError(t, err)
	assert.Len(t, doctors, 1)
	assert.Equal(t, models.RoleDoctor, captured.Role)
	assert.Equal(t, "c1", captured.ClinicID)
	assert.True(t, captured.ActiveOnly)
}
