package services

import (
	"MediPoint/models"
	"MediPoint/utils"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakePatientStore is a tiny in-memory store keyed by both id and phone,
// used where the tests care about state across calls.
type fakePatientStore struct {
	byID    map[string]*models.Patient
	byPhone map[string]*models.Patient
	creates int
}

func newFakePatientStore() *fakePatientStore {
	return &fakePatientStore{
		byID:    map[string]*models.Patient{},
		byPhone: map[string]*models.Patient{},
	}
}

func (f *fakePatientStore) repo() *mockPatientRepo {
	return &mockPatientRepo{
		CreateFn: func(ctx context.Context, patient *models.Patient) error {
			if patient.ID == "" {
				patient.ID = "generated-id"
			}
			copied := *patient
			f.byID[copied.ID] = &copied
			f.byPhone[copied.Phone] = &copied
			f.creates++
			return nil
		},
		GetByIDFn: func(ctx context.Context, id string) (*models.Patient, error) {
			if p, ok := f.byID[id]; ok {
				copied := *p
				return &copied, nil
			}
			return nil, nil
		},
		GetByPhoneFn: func(ctx context.Context, phone string) (*models.Patient, error) {
			if p, ok := f.byPhone[phone]; ok {
				copied := *p
				return &copied, nil
			}
			return nil, nil
		},
		UpdateFn: func(ctx context.Context, patient *models.Patient) error {
			copied := *patient
			f.byID[copied.ID] = &copied
			f.byPhone[copied.Phone] = &copied
			return nil
		},
	}
}

func TestEnsurePatientCreatesOnce(t *testing.T) {
	store := newFakePatientStore()
	service := NewPatientService(store.repo(), noopLocker{})

	input := EnsurePatientInput{
		Name:     "Jane Doe",
		Phone:    "+15550001111",
		Password: "Secret@1pass",
		ClinicID: "clinic-1",
	}

	first, err := service.EnsurePatient(context.Background(), input)
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := service.EnsurePatient(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.creates)
}

func TestEnsurePatientRefreshesNameByPhone(t *testing.T) {
	store := newFakePatientStore()
	service := NewPatientService(store.repo(), noopLocker{})

	_, err := service.EnsurePatient(context.Background(), EnsurePatientInput{
		Name:  "Jane Doe",
		Phone: "+15550001111",
	})
	assert.NoError(t, err)

	updated, err := service.EnsurePatient(context.Background(), EnsurePatientInput{
		Name:  "Jane Smith",
		Phone: "+15550001111",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Equal(t, 1, store.creates)
}

func TestEnsurePatientKeepsStoredPassword(t *testing.T) {
	store := newFakePatientStore()
	service := NewPatientService(store.repo(), noopLocker{})

	first, err := service.EnsurePatient(context.Background(), EnsurePatientInput{
		Name:     "Jane Doe",
		Phone:    "+15550001111",
		Password: "Original@1pass",
	})
	assert.NoError(t, err)
	originalHash := first.Password
	assert.True(t, utils.CheckPassword(originalHash, "Original@1pass"))

	// A later booking with a different password must not overwrite the one
	// already stored.
	second, err := service.EnsurePatient(context.Background(), EnsurePatientInput{
		Name:     "Jane Doe",
		Phone:    "+15550001111",
		Password: "Different@2pass",
	})
	assert.NoError(t, err)
	assert.Equal(t, originalHash, second.Password)
}

func TestEnsurePatientBackfillsMissingPassword(t *testing.T) {
	store := newFakePatientStore()
	service := NewPatientService(store.repo(), noopLocker{})

	_, err := service.EnsurePatient(context.Background(), EnsurePatientInput{
		Name:  "Jane Doe",
		Phone: "+15550001111",
	})
	assert.NoError(t, err)

	backfilled, err := service.EnsurePatient(context.Background(), EnsurePatientInput{
		Name:     "Jane Doe",
		Phone:    "+15550001111",
		Password: "Late@1password",
	})
	assert.NoError(t, err)
	assert.True(t, utils.CheckPassword(backfilled.Password, "Late@1password"))
}

func TestEnsurePatientWithExistingIDUpdatesInPlace(t *testing.T) {
	store := newFakePatientStore()
	service := NewPatientService(store.repo(), noopLocker{})

	created, err := service.EnsurePatient(context.Background(), EnsurePatientInput{
		Name:  "Jane Doe",
		Phone: "+15550001111",
	})
	assert.NoError(t, err)

	updated, err := service.EnsurePatient(context.Background(), EnsurePatientInput{
		Name:       "Jane Renamed",
		Phone:      "+15559998888",
		ExistingID: created.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jane Renamed", updated.Name)
	assert.Equal(t, "+15559998888", updated.Phone)
	assert.Equal(t, 1, store.creates)
}

func TestEnsurePatientWithExistingIDPhoneConflict(t *testing.T) {
	store := newFakePatientStore()
	service := NewPatientService(store.repo(), noopLocker{})

	first := &models.Patient{ID: "p1", Name: "Jane Doe", Phone: "+15550001111", IsActive: true}
	other := &models.Patient{ID: "p2", Name: "John Smith", Phone: "+15559998888", IsActive: true}
	store.byID[first.ID] = first
	store.byPhone[first.Phone] = first
	store.byID[other.ID] = other
	store.byPhone[other.Phone] = other

	_, err := service.EnsurePatient(context.Background(), EnsurePatientInput{
		Name:       "Jane Doe",
		Phone:      other.Phone,
		ExistingID: first.ID,
	})
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestEnsurePatientRecreatesMissingID(t *testing.T) {
	store := newFakePatientStore()
	service := NewPatientService(store.repo(), noopLocker{})

	patient, err := service.EnsurePatient(context.Background(), EnsurePatientInput{
		Name:       "Jane Doe",
		Phone:      "+15550001111",
		ExistingID: "vanished-id",
	})
	assert.NoError(t, err)
	assert.Equal(t, "vanished-id", patient.ID)
	assert.Equal(t, 1, store.creates)
}

func TestEnsurePatientRequiresNameAndPhone(t *testing.T) {
	service := NewPatientService(&mockPatientRepo{}, noopLocker{})

	_, err := service.EnsurePatient(context.Background(), EnsurePatientInput{Phone: "+15550001111"})
	assert.Error(t, err)

	_, err = service.EnsurePatient(context.Background(), EnsurePatientInput{Name: "Jane Doe"})
	assert.Error(t, err)
}

func TestUpdatePatientPhoneConflict(t *testing.T) {
	existing := &models.Patient{ID: "p1", Name: "Jane", Phone: "+15550001111"}
	repo := &mockPatientRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Patient, error) {
			copied := *existing
			return &copied, nil
		},
		GetByPhoneFn: func(ctx context.Context, phone string) (*models.Patient, error) {
			return &models.Patient{ID: "p2", Phone: phone}, nil
		},
	}
	service := NewPatientService(repo, noopLocker{})

	newPhone := "+15557772222"
	_, err := service.Update(context.Background(), "p1", UpdatePatientInput{Phone: &newPhone})
	assert.ErrorIs(t, err, ErrPhoneTaken)
}
