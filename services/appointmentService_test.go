package services

import (
	"MediPoint/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func bookingFixtures() (*mockPatientRepo, *mockClinicRepo, *mockStaffRepo) {
	patients := &mockPatientRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Patient, error) {
			return &models.Patient{ID: id, Name: "Jane Doe", Phone: "+15550001111"}, nil
		},
	}
	clinics := &mockClinicRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Clinic, error) {
			return &models.Clinic{ID: id, Name: "Main Medical Center"}, nil
		},
	}
	staff := &mockStaffRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.StaffUser, error) {
			return &models.StaffUser{ID: id, Name: "Dr. Sarah Johnson", Role: models.RoleDoctor}, nil
		},
	}
	return patients, clinics, staff
}

func TestBookStampsDenormalizedNames(t *testing.T) {
	patients, clinics, staff := bookingFixtures()
	var created *models.Appointment
	appointments := &mockAppointmentRepo{
		CreateFn: func(ctx context.Context, appointment *models.Appointment) error {
			created = appointment
			return nil
		},
	}
	service := NewAppointmentService(appointments, patients, clinics, staff, noopLocker{})

	startsAt, err := ParseSlotTime(testDay(), "09:00 AM")
	assert.NoError(t, err)

	appointment, err := service.Book(context.Background(), BookAppointmentInput{
		PatientID: "p1",
		ClinicID:  "c1",
		DoctorID:  "d1",
		DateTime:  startsAt,
		Reason:    "Checkup",
	})
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "Jane Doe", appointment.PatientName)
	assert.Equal(t, "Main Medical Center", appointment.ClinicName)
	assert.Equal(t, "Dr. Sarah Johnson", appointment.DoctorName)
	assert.Equal(t, models.StatusScheduled, appointment.Status)
	assert.Equal(t, AppointmentDurationMinutes, appointment.DurationMinutes)
}

// Renaming the patient after booking must not touch the snapshot already
// written to the appointment.
func TestBookedNameSnapshotIsStable(t *testing.T) {
	patientName := "Jane Doe"
	patients, clinics, staff := bookingFixtures()
	patients.GetByIDFn = func(ctx context.Context, id string) (*models.Patient, error) {
		return &models.Patient{ID: id, Name: patientName, Phone: "+15550001111"}, nil
	}
	appointments := &mockAppointmentRepo{}
	service := NewAppointmentService(appointments, patients, clinics, staff, noopLocker{})

	startsAt, err := ParseSlotTime(testDay(), "09:00 AM")
	assert.NoError(t, err)

	appointment, err := service.Book(context.Background(), BookAppointmentInput{
		PatientID: "p1",
		ClinicID:  "c1",
		DateTime:  startsAt,
	})
	assert.NoError(t, err)

	patientName = "Jane Smith"
	assert.Equal(t, "Jane Doe", appointment.PatientName)
}

func TestBookConflictingSlotReturnsErrSlotTaken(t *testing.T) {
	patients, clinics, staff := bookingFixtures()
	day := testDay()
	bookedStart, err := ParseSlotTime(day, "10:00 AM")
	assert.NoError(t, err)

	appointments := &mockAppointmentRepo{
		ListByDoctorOnDateFn: func(ctx context.Context, doctorID string, d time.Time) ([]models.Appointment, error) {
			return []models.Appointment{{
				DoctorID:        &doctorID,
				DateTime:        bookedStart,
				DurationMinutes: AppointmentDurationMinutes,
				Status:          models.StatusScheduled,
			}}, nil
		},
	}
	service := NewAppointmentService(appointments, patients, clinics, staff, noopLocker{})

	// 10:30 falls inside the buffered window of the 10:00 booking.
	conflicting, err := ParseSlotTime(day, "10:30 AM")
	assert.NoError(t, err)

	_, err = service.Book(context.Background(), BookAppointmentInput{
		PatientID: "p1",
		ClinicID:  "c1",
		DoctorID:  "d1",
		DateTime:  conflicting,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// 11:00 starts exactly where the forbidden zone ends.
	adjacent, err := ParseSlotTime(day, "11:00 AM")
	assert.NoError(t, err)

	_, err = service.Book(context.Background(), BookAppointmentInput{
		PatientID: "p1",
		ClinicID:  "c1",
		DoctorID:  "d1",
		DateTime:  adjacent,
	})
	assert.NoError(t, err)
}

func TestBookCancelledAppointmentDoesNotBlock(t *testing.T) {
	patients, clinics, staff := bookingFixtures()
	day := testDay()
	bookedStart, err := ParseSlotTime(day, "10:00 AM")
	assert.NoError(t, err)

	appointments := &mockAppointmentRepo{
		ListByDoctorOnDateFn: func(ctx context.Context, doctorID string, d time.Time) ([]models.Appointment, error) {
			return []models.Appointment{{
				DoctorID:        &doctorID,
				DateTime:        bookedStart,
				DurationMinutes: AppointmentDurationMinutes,
				Status:          models.StatusCancelled,
			}}, nil
		},
	}
	service := NewAppointmentService(appointments, patients, clinics, staff, noopLocker{})

	_, err = service.Book(context.Background(), BookAppointmentInput{
		PatientID: "p1",
		ClinicID:  "c1",
		DoctorID:  "d1",
		DateTime:  bookedStart,
	})
	assert.NoError(t, err)
}

func TestBookLockedSlotReturnsErrSlotTaken(t *testing.T) {
	patients, clinics, staff := bookingFixtures()
	service := NewAppointmentService(&mockAppointmentRepo{}, patients, clinics, staff, deniedLocker{})

	startsAt, err := ParseSlotTime(testDay(), "09:00 AM")
	assert.NoError(t, err)

	_, err = service.Book(context.Background(), BookAppointmentInput{
		PatientID: "p1",
		ClinicID:  "c1",
		DoctorID:  "d1",
		DateTime:  startsAt,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestBookRejectsNonDoctorStaff(t *testing.T) {
	patients, clinics, staff := bookingFixtures()
	staff.GetByIDFn = func(ctx context.Context, id string) (*models.StaffUser, error) {
		return &models.StaffUser{ID: id, Name: "Pharm. Rodriguez", Role: models.RolePharmacist}, nil
	}
	service := NewAppointmentService(&mockAppointmentRepo{}, patients, clinics, staff, noopLocker{})

	startsAt, err := ParseSlotTime(testDay(), "09:00 AM")
	assert.NoError(t, err)

	_, err = service.Book(context.Background(), BookAppointmentInput{
		PatientID: "p1",
		ClinicID:  "c1",
		DoctorID:  "s1",
		DateTime:  startsAt,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAppointmentRejectsInvalidStatus(t *testing.T) {
	patients, clinics, staff := bookingFixtures()
	appointments := &mockAppointmentRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Appointment, error) {
			return &models.Appointment{ID: id, ClinicID: "c1", Status: models.StatusScheduled}, nil
		},
	}
	service := NewAppointmentService(appointments, patients, clinics, staff, noopLocker{})

	bogus := "pending"
	_, err := service.Update(context.Background(), "a1", UpdateAppointmentInput{Status: &bogus})
	assert.Error(t, err)
}

func TestUpdateAppointmentMergesPartialFields(t *testing.T) {
	patients, clinics, staff := bookingFixtures()
	var saved *models.Appointment
	appointments := &mockAppointmentRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Appointment, error) {
			return &models.Appointment{
				ID:              id,
				ClinicID:        "c1",
				Reason:          "Checkup",
				Status:          models.StatusScheduled,
				DurationMinutes: AppointmentDurationMinutes,
			}, nil
		},
		UpdateFn: func(ctx context.Context, appointment *models.Appointment) error {
			saved = appointment
			return nil
		},
	}
	service := NewAppointmentService(appointments, patients, clinics, staff, noopLocker{})

	confirmed := models.StatusConfirmed
	updated, err := service.Update(context.Background(), "a1", UpdateAppointmentInput{Status: &confirmed})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, "Checkup", updated.Reason)
}

// deniedLocker simulates losing the race for a slot lock.
type deniedLocker struct{}

func (deniedLocker) Acquire(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return false, nil
}

func (deniedLocker) Release(ctx context.Context, key, value string) error {
	return nil
}
