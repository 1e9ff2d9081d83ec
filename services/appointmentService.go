package services

import (
	"MediPoint/models"
	"MediPoint/repositories"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// BookAppointmentInput carries the fields a caller supplies when booking.
// The denormalized name columns are never accepted from the caller; they are
// resolved from the referenced rows at write time.
type BookAppointmentInput struct {
	PatientID       string
	ClinicID        string
	DoctorID        string
	DateTime        time.Time
	DurationMinutes int
	Reason          string
	Status          string
}

// UpdateAppointmentInput merges partial fields into an existing appointment.
// Nil pointers leave the stored value untouched.
type UpdateAppointmentInput struct {
	DateTime        *time.Time
	DurationMinutes *int
	Reason          *string
	Status          *string
	DoctorID        *string
}

type AppointmentService struct {
	appointments repositories.AppointmentRepository
	patients     repositories.PatientRepository
	clinics      repositories.ClinicRepository
	staff        repositories.StaffUserRepository
	locker       Locker
}

func NewAppointmentService(
	appointments repositories.AppointmentRepository,
	patients repositories.PatientRepository,
	clinics repositories.ClinicRepository,
	staff repositories.StaffUserRepository,
	locker Locker,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		patients:     patients,
		clinics:      clinics,
		staff:        staff,
		locker:       locker,
	}
}

// AvailableSlots computes the bookable slot start times for a doctor on a
// calendar day. An empty result means the day is fully booked, not an error.
func (s *AppointmentService) AvailableSlots(ctx context.Context, doctorID string, day time.Time) ([]string, error) {
	booked, err := s.appointments.ListByDoctorOnDate(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}
	return ComputeAvailableSlots(day, BaseTimeSlots, booked, AppointmentDurationMinutes, GapBetweenAppointmentsMinutes)
}

// Book creates an appointment, stamping the denormalized patient, clinic and
// doctor names from the referenced rows. When a doctor is assigned, the
// requested slot is re-checked under a distributed lock so two bookings
// racing for the same slot cannot both land.
func (s *AppointmentService) Book(ctx context.Context, input BookAppointmentInput) (*models.Appointment, error) {
	if input.Status == "" {
		input.Status = models.StatusScheduled
	}
	if !models.IsValidAppointmentStatus(input.Status) {
		return nil, fmt.Errorf("invalid appointment status %q", input.Status)
	}
	if input.DurationMinutes <= 0 {
		input.DurationMinutes = AppointmentDurationMinutes
	}

	patient, err := s.patients.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("patient %s: %w", input.PatientID, ErrNotFound)
	}
	clinic, err := s.clinics.GetByID(ctx, input.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, fmt.Errorf("clinic %s: %w", input.ClinicID, ErrNotFound)
	}

	appointment := &models.Appointment{
		PatientID:       input.PatientID,
		PatientName:     patient.Name,
		ClinicID:        input.ClinicID,
		ClinicName:      clinic.Name,
		DateTime:        input.DateTime,
		DurationMinutes: input.DurationMinutes,
		Reason:          input.Reason,
		Status:          input.Status,
	}

	if input.DoctorID == "" {
		if err := s.appointments.Create(ctx, appointment); err != nil {
			return nil, err
		}
		return appointment, nil
	}

	doctor, err := s.resolveDoctor(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	appointment.DoctorID = &doctor.ID
	appointment.DoctorName = doctor.Name

	lockKey := fmt.Sprintf("appointment_slot_lock:%s_%d", doctor.ID, input.DateTime.Unix())
	lockValue := uuid.New().String()
	locked, err := s.locker.Acquire(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire slot lock: %w", err)
	}
	if !locked {
		return nil, ErrSlotTaken
	}
	defer func() {
		if err := s.locker.Release(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release slot lock: %v", err)
		}
	}()

	// Re-read inside the lock; the offered slot was computed from state
	// that may have moved on.
	if err := s.checkSlotFree(ctx, doctor.ID, appointment); err != nil {
		return nil, err
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, fmt.Errorf("appointment %s: %w", id, ErrNotFound)
	}
	return appointment, nil
}

func (s *AppointmentService) List(ctx context.Context, filter repositories.AppointmentFilter) ([]models.Appointment, error) {
	return s.appointments.GetAll(ctx, filter)
}

// Update merges the provided fields and re-stamps the denormalized clinic and
// doctor names as of this write. Earlier snapshots on other rows stay as they
// were.
func (s *AppointmentService) Update(ctx context.Context, id string, input UpdateAppointmentInput) (*models.Appointment, error) {
	appointment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DateTime != nil {
		appointment.DateTime = *input.DateTime
	}
	if input.DurationMinutes != nil {
		appointment.DurationMinutes = *input.DurationMinutes
	}
	if input.Reason != nil {
		appointment.Reason = *input.Reason
	}
	if input.Status != nil {
		if !models.IsValidAppointmentStatus(*input.Status) {
			return nil, fmt.Errorf("invalid appointment status %q", *input.Status)
		}
		appointment.Status = *input.Status
	}
	if input.DoctorID != nil {
		if *input.DoctorID == "" {
			appointment.DoctorID = nil
			appointment.DoctorName = ""
		} else {
			doctor, err := s.resolveDoctor(ctx, *input.DoctorID)
			if err != nil {
				return nil, err
			}
			appointment.DoctorID = &doctor.ID
			appointment.DoctorName = doctor.Name
		}
	}

	clinic, err := s.clinics.GetByID(ctx, appointment.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinic != nil {
		appointment.ClinicName = clinic.Name
	}
	if input.DoctorID == nil && appointment.DoctorID != nil {
		if doctor, err := s.staff.GetByID(ctx, *appointment.DoctorID); err == nil && doctor != nil {
			appointment.DoctorName = doctor.Name
		}
	}

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.appointments.Delete(ctx, id)
}

func (s *AppointmentService) resolveDoctor(ctx context.Context, doctorID string) (*models.StaffUser, error) {
	doctor, err := s.staff.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.Role != models.RoleDoctor {
		return nil, fmt.Errorf("doctor %s: %w", doctorID, ErrNotFound)
	}
	return doctor, nil
}

// checkSlotFree rejects the candidate appointment when its interval
// intersects the buffered window of any blocking appointment already booked
// for the doctor on that day. Same half-open semantics as the availability
// engine.
func (s *AppointmentService) checkSlotFree(ctx context.Context, doctorID string, candidate *models.Appointment) error {
	booked, err := s.appointments.ListByDoctorOnDate(ctx, doctorID, candidate.DateTime)
	if err != nil {
		return err
	}
	buffer := time.Duration(GapBetweenAppointmentsMinutes) * time.Minute
	for _, existing := range booked {
		if !models.BlocksSlot(existing.Status) {
			continue
		}
		forbiddenStart := existing.DateTime.Add(-buffer)
		forbiddenEnd := existing.End().Add(buffer)
		if candidate.DateTime.Before(forbiddenEnd) && candidate.End().After(forbiddenStart) {
			return ErrSlotTaken
		}
	}
	return nil
}
