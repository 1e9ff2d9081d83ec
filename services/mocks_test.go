package services

import (
	"MediPoint/models"
	"MediPoint/repositories"
	"context"
	"time"
)

// Hand-rolled function-field mocks. A nil field means "not expected"; the
// zero-value fallbacks keep tests from touching behavior they don't care
// about.

type mockAppointmentRepo struct {
	CreateFn             func(ctx context.Context, appointment *models.Appointment) error
	GetByIDFn            func(ctx context.Context, id string) (*models.Appointment, error)
	GetAllFn             func(ctx context.Context, filter repositories.AppointmentFilter) ([]models.Appointment, error)
	ListByDoctorOnDateFn func(ctx context.Context, doctorID string, day time.Time) ([]models.Appointment, error)
	UpdateFn             func(ctx context.Context, appointment *models.Appointment) error
	DeleteFn             func(ctx context.Context, id string) error
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(ctx, appointment)
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(ctx, id)
}

func (m *mockAppointmentRepo) GetAll(ctx context.Context, filter repositories.AppointmentFilter) ([]models.Appointment, error) {
	if m.GetAllFn == nil {
		return nil, nil
	}
	return m.GetAllFn(ctx, filter)
}

func (m *mockAppointmentRepo) ListByDoctorOnDate(ctx context.Context, doctorID string, day time.Time) ([]models.Appointment, error) {
	if m.ListByDoctorOnDateFn == nil {
		return nil, nil
	}
	return m.ListByDoctorOnDateFn(ctx, doctorID, day)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appointment *models.Appointment) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, appointment)
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

type mockPatientRepo struct {
	CreateFn      func(ctx context.Context, patient *models.Patient) error
	GetByIDFn     func(ctx context.Context, id string) (*models.Patient, error)
	GetByPhoneFn  func(ctx context.Context, phone string) (*models.Patient, error)
	PhoneExistsFn func(ctx context.Context, phone string) (bool, error)
	GetAllFn      func(ctx context.Context) ([]models.Patient, error)
	UpdateFn      func(ctx context.Context, patient *models.Patient) error
	DeleteFn      func(ctx context.Context, id string) error
}

func (m *mockPatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(ctx, patient)
}

func (m *mockPatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(ctx, id)
}

func (m *mockPatientRepo) GetByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	if m.GetByPhoneFn == nil {
		return nil, nil
	}
	return m.GetByPhoneFn(ctx, phone)
}

func (m *mockPatientRepo) PhoneExists(ctx context.Context, phone string) (bool, error) {
	if m.PhoneExistsFn == nil {
		return false, nil
	}
	return m.PhoneExistsFn(ctx, phone)
}

func (m *mockPatientRepo) GetAll(ctx context.Context) ([]models.Patient, error) {
	if m.GetAllFn == nil {
		return nil, nil
	}
	return m.GetAllFn(ctx)
}

func (m *mockPatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, patient)
}

func (m *mockPatientRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

type mockClinicRepo struct {
	CreateFn  func(ctx context.Context, clinic *models.Clinic) error
	GetByIDFn func(ctx context.Context, id string) (*models.Clinic, error)
	GetAllFn  func(ctx context.Context) ([]models.Clinic, error)
	UpdateFn  func(ctx context.Context, clinic *models.Clinic) error
	DeleteFn  func(ctx context.Context, id string) error
}

func (m *mockClinicRepo) Create(ctx context.Context, clinic *models.Clinic) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(ctx, clinic)
}

func (m *mockClinicRepo) GetByID(ctx context.Context, id string) (*models.Clinic, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(ctx, id)
}

func (m *mockClinicRepo) GetAll(ctx context.Context) ([]models.Clinic, error) {
	if m.GetAllFn == nil {
		return nil, nil
	}
	return m.GetAllFn(ctx)
}

func (m *mockClinicRepo) Update(ctx context.Context, clinic *models.Clinic) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, clinic)
}

func (m *mockClinicRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

type mockStaffRepo struct {
	CreateFn           func(ctx context.Context, staff *models.StaffUser) error
	GetByIDFn          func(ctx context.Context, id string) (*models.StaffUser, error)
	GetByAccessCodeFn  func(ctx context.Context, accessCode string) (*models.StaffUser, error)
	GetByEmailFn       func(ctx context.Context, email string) (*models.StaffUser, error)
	AccessCodeExistsFn func(ctx context.Context, accessCode string) (bool, error)
	GetAllFn           func(ctx context.Context, filter repositories.StaffUserFilter) ([]models.StaffUser, error)
	UpdateFn           func(ctx context.Context, staff *models.StaffUser) error
	UpdateLastLoginFn  func(ctx context.Context, id string, at time.Time) error
	DeleteFn           func(ctx context.Context, id string) error
}

func (m *mockStaffRepo) Create(ctx context.Context, staff *models.StaffUser) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(ctx, staff)
}

func (m *mockStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffUser, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(ctx, id)
}

func (m *mockStaffRepo) GetByAccessCode(ctx context.Context, accessCode string) (*models.StaffUser, error) {
	if m.GetByAccessCodeFn == nil {
		return nil, nil
	}
	return m.GetByAccessCodeFn(ctx, accessCode)
}

func (m *mockStaffRepo) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	if m.GetByEmailFn == nil {
		return nil, nil
	}
	return m.GetByEmailFn(ctx, email)
}

func (m *mockStaffRepo) AccessCodeExists(ctx context.Context, accessCode string) (bool, error) {
	if m.AccessCodeExistsFn == nil {
		return false, nil
	}
	return m.AccessCodeExistsFn(ctx, accessCode)
}

func (m *mockStaffRepo) GetAll(ctx context.Context, filter repositories.StaffUserFilter) ([]models.StaffUser, error) {
	if m.GetAllFn == nil {
		return nil, nil
	}
	return m.GetAllFn(ctx, filter)
}

func (m *mockStaffRepo) Update(ctx context.Context, staff *models.StaffUser) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, staff)
}

func (m *mockStaffRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	if m.UpdateLastLoginFn == nil {
		return nil
	}
	return m.UpdateLastLoginFn(ctx, id, at)
}

func (m *mockStaffRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

type mockPrescriptionRepo struct {
	CreateFn         func(ctx context.Context, prescription *models.Prescription) error
	GetByIDFn        func(ctx context.Context, id string) (*models.Prescription, error)
	ListByPatientFn  func(ctx context.Context, patientID string) ([]models.Prescription, error)
	UpdateFn         func(ctx context.Context, prescription *models.Prescription) error
	SetSharingFlagFn func(ctx context.Context, id, audience string, value bool) (bool, error)
	DeleteFn         func(ctx context.Context, id string) error
}

func (m *mockPrescriptionRepo) Create(ctx context.Context, prescription *models.Prescription) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(ctx, prescription)
}

func (m *mockPrescriptionRepo) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(ctx, id)
}

func (m *mockPrescriptionRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	if m.ListByPatientFn == nil {
		return nil, nil
	}
	return m.ListByPatientFn(ctx, patientID)
}

func (m *mockPrescriptionRepo) Update(ctx context.Context, prescription *models.Prescription) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, prescription)
}

func (m *mockPrescriptionRepo) SetSharingFlag(ctx context.Context, id, audience string, value bool) (bool, error) {
	if m.SetSharingFlagFn == nil {
		return false, nil
	}
	return m.SetSharingFlagFn(ctx, id, audience, value)
}

func (m *mockPrescriptionRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

type mockXRayRepo struct {
	CreateFn         func(ctx context.Context, xray *models.XRay) error
	GetByIDFn        func(ctx context.Context, id string) (*models.XRay, error)
	ListByPatientFn  func(ctx context.Context, patientID string) ([]models.XRay, error)
	UpdateFn         func(ctx context.Context, xray *models.XRay) error
	SetSharingFlagFn func(ctx context.Context, id, audience string, value bool) (bool, error)
	DeleteFn         func(ctx context.Context, id string) error
}

func (m *mockXRayRepo) Create(ctx context.Context, xray *models.XRay) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(ctx, xray)
}

func (m *mockXRayRepo) GetByID(ctx context.Context, id string) (*models.XRay, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(ctx, id)
}

func (m *mockXRayRepo) ListByPatient(ctx context.Context, patientID string) ([]models.XRay, error) {
	if m.ListByPatientFn == nil {
		return nil, nil
	}
	return m.ListByPatientFn(ctx, patientID)
}

func (m *mockXRayRepo) Update(ctx context.Context, xray *models.XRay) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, xray)
}

func (m *mockXRayRepo) SetSharingFlag(ctx context.Context, id, audience string, value bool) (bool, error) {
	if m.SetSharingFlagFn == nil {
		return false, nil
	}
	return m.SetSharingFlagFn(ctx, id, audience, value)
}

func (m *mockXRayRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, id)
}

// noopLocker always grants the lock.
type noopLocker struct{}

func (noopLocker) Acquire(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (noopLocker) Release(ctx context.Context, key, value string) error {
	return nil
}
