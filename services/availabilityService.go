package services

import (
	"MediPoint/models"
	"fmt"
	"time"
)

const (
	// AppointmentDurationMinutes is the fixed length of a bookable slot.
	AppointmentDurationMinutes = 30
	// GapBetweenAppointmentsMinutes is the idle time required before and
	// after every booked appointment for the same doctor.
	GapBetweenAppointmentsMinutes = 30

	slotTimeLayout = "03:04 PM"
)

// BaseTimeSlots is the fixed ordered list of candidate start times offered
// each day, independent of booking state.
var BaseTimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"01:00 PM", "01:30 PM", "02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM", "04:00 PM", "04:30 PM",
}

// ParseSlotTime resolves a wall-clock slot string such as "09:00 AM" onto the
// given calendar day.
func ParseSlotTime(day time.Time, slot string) (time.Time, error) {
	clock, err := time.Parse(slotTimeLayout, slot)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot time %q: %w", slot, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location()), nil
}

// ComputeAvailableSlots filters the slot template against the appointments
// booked for one doctor on one calendar day and returns the start times that
// remain bookable, in template order.
//
// Each candidate slot occupies the half-open interval
// [start, start+duration). Every blocking appointment projects a forbidden
// zone [bookedStart-buffer, bookedEnd+buffer), and a candidate survives only
// if it intersects none of them. The intervals are half-open on both sides of
// the comparison, so a slot ending exactly where a forbidden zone begins (or
// starting exactly where one ends) is still offered; that is what permits
// back-to-back, buffer-spaced bookings.
//
// Cancelled and completed appointments never block. Appointments that fall on
// a different calendar day than day are ignored. The function reads nothing
// but its arguments.
func ComputeAvailableSlots(day time.Time, template []string, booked []models.Appointment, durationMinutes, bufferMinutes int) ([]string, error) {
	duration := time.Duration(durationMinutes) * time.Minute
	buffer := time.Duration(bufferMinutes) * time.Minute

	blocking := make([]models.Appointment, 0, len(booked))
	for _, appt := range booked {
		if models.BlocksSlot(appt.Status) && sameDay(appt.DateTime, day) {
			blocking = append(blocking, appt)
		}
	}

	available := make([]string, 0, len(template))
	for _, slot := range template {
		slotStart, err := ParseSlotTime(day, slot)
		if err != nil {
			return nil, err
		}
		slotEnd := slotStart.Add(duration)

		free := true
		for _, appt := range blocking {
			forbiddenStart := appt.DateTime.Add(-buffer)
			forbiddenEnd := appt.End().Add(buffer)
			if slotStart.Before(forbiddenEnd) && slotEnd.After(forbiddenStart) {
				free = false
				break
			}
		}
		if free {
			available = append(available, slot)
		}
	}
	return available, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
