package services

import (
	"MediPoint/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testDay() time.Time {
	return time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
}

func appointmentAt(t *testing.T, day time.Time, slot, status string) models.Appointment {
	t.Helper()
	startsAt, err := ParseSlotTime(day, slot)
	assert.NoError(t, err)
	return models.Appointment{
		DateTime:        startsAt,
		DurationMinutes: AppointmentDurationMinutes,
		Status:          status,
	}
}

func TestComputeAvailableSlotsEmptyDay(t *testing.T) {
	slots, err := ComputeAvailableSlots(testDay(), BaseTimeSlots, nil, AppointmentDurationMinutes, GapBetweenAppointmentsMinutes)
	assert.NoError(t, err)
	assert.Equal(t, BaseTimeSlots, slots)
}

func TestComputeAvailableSlotsBufferBoundaries(t *testing.T) {
	day := testDay()
	booked := []models.Appointment{
		appointmentAt(t, day, "10:00 AM", models.StatusScheduled),
	}

	slots, err := ComputeAvailableSlots(day, BaseTimeSlots, booked, AppointmentDurationMinutes, GapBetweenAppointmentsMinutes)
	assert.NoError(t, err)

	// The forbidden zone is [09:30, 11:00). A slot ending exactly at 09:30
	// or starting exactly at 11:00 is still offered.
	assert.Contains(t, slots, "09:00 AM")
	assert.NotContains(t, slots, "09:30 AM")
	assert.NotContains(t, slots, "10:00 AM")
	assert.NotContains(t, slots, "10:30 AM")
	assert.Contains(t, slots, "11:00 AM")
}

func TestComputeAvailableSlotsNonBlockingStatuses(t *testing.T) {
	day := testDay()
	booked := []models.Appointment{
		appointmentAt(t, day, "10:00 AM", models.StatusCancelled),
		appointmentAt(t, day, "02:00 PM", models.StatusCompleted),
	}

	slots, err := ComputeAvailableSlots(day, BaseTimeSlots, booked, AppointmentDurationMinutes, GapBetweenAppointmentsMinutes)
	assert.NoError(t, err)
	assert.Equal(t, BaseTimeSlots, slots)
}

func TestComputeAvailableSlotsConfirmedBlocks(t *testing.T) {
	day := testDay()
	booked := []models.Appointment{
		appointmentAt(t, day, "09:00 AM", models.StatusConfirmed),
	}

	slots, err := ComputeAvailableSlots(day, BaseTimeSlots, booked, AppointmentDurationMinutes, GapBetweenAppointmentsMinutes)
	assert.NoError(t, err)
	assert.NotContains(t, slots, "09:00 AM")
	assert.NotContains(t, slots, "09:30 AM")
	assert.Contains(t, slots, "10:00 AM")
}

func TestComputeAvailableSlotsIgnoresOtherDays(t *testing.T) {
	day := testDay()
	booked := []models.Appointment{
		appointmentAt(t, day.AddDate(0, 0, 1), "10:00 AM", models.StatusScheduled),
	}

	slots, err := ComputeAvailableSlots(day, BaseTimeSlots, booked, AppointmentDurationMinutes, GapBetweenAppointmentsMinutes)
	assert.NoError(t, err)
	assert.Equal(t, BaseTimeSlots, slots)
}

func TestComputeAvailableSlotsPreservesTemplateOrder(t *testing.T) {
	day := testDay()
	booked := []models.Appointment{
		appointmentAt(t, day, "11:00 AM", models.StatusScheduled),
		appointmentAt(t, day, "03:00 PM", models.StatusScheduled),
	}

	slots, err := ComputeAvailableSlots(day, BaseTimeSlots, booked, AppointmentDurationMinutes, GapBetweenAppointmentsMinutes)
	assert.NoError(t, err)

	// Whatever survives must appear in the same relative order as the
	// template.
	position := map[string]int{}
	for i, slot := range BaseTimeSlots {
		position[slot] = i
	}
	for i := 1; i < len(slots); i++ {
		assert.Less(t, position[slots[i-1]], position[slots[i]])
	}
}

// Every returned slot must clear every blocking appointment's buffered window.
func TestComputeAvailableSlotsNoOverlapProperty(t *testing.T) {
	day := testDay()
	booked := []models.Appointment{
		appointmentAt(t, day, "09:30 AM", models.StatusScheduled),
		appointmentAt(t, day, "12:00 PM", models.StatusConfirmed),
		appointmentAt(t, day, "03:30 PM", models.StatusScheduled),
		appointmentAt(t, day, "01:00 PM", models.StatusCancelled),
	}

	slots, err := ComputeAvailableSlots(day, BaseTimeSlots, booked, AppointmentDurationMinutes, GapBetweenAppointmentsMinutes)
	assert.NoError(t, err)

	duration := time.Duration(AppointmentDurationMinutes) * time.Minute
	buffer := time.Duration(GapBetweenAppointmentsMinutes) * time.Minute
	for _, slot := range slots {
		slotStart, err := ParseSlotTime(day, slot)
		assert.NoError(t, err)
		slotEnd := slotStart.Add(duration)
		for _, appt := range booked {
			if !models.BlocksSlot(appt.Status) {
				continue
			}
			forbiddenStart := appt.DateTime.Add(-buffer)
			forbiddenEnd := appt.End().Add(buffer)
			overlaps := slotStart.Before(forbiddenEnd) && slotEnd.After(forbiddenStart)
			assert.False(t, overlaps, "slot %s overlaps appointment at %s", slot, appt.DateTime)
		}
	}
}

func TestParseSlotTime(t *testing.T) {
	day := testDay()

	startsAt, err := ParseSlotTime(day, "02:30 PM")
	assert.NoError(t, err)
	assert.Equal(t, 14, startsAt.Hour())
	assert.Equal(t, 30, startsAt.Minute())
	assert.Equal(t, day.Year(), startsAt.Year())
	assert.Equal(t, day.Month(), startsAt.Month())
	assert.Equal(t, day.Day(), startsAt.Day())

	_, err = ParseSlotTime(day, "25:00")
	assert.Error(t, err)
}
