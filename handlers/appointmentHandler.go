package handlers

import (
	"MediPoint/models"
	"MediPoint/repositories"
	"MediPoint/services"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type AppointmentHandler struct {
	appointments *services.AppointmentService
	patients     *services.PatientService
}

func NewAppointmentHandler(appointments *services.AppointmentService, patients *services.PatientService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, patients: patients}
}

// GetAvailability returns the open slot start times for a doctor on a day.
func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	dateStr := c.Query("date")
	if doctorID == "" || dateStr == "" {
		respondError(c, 400, "doctor_id and date are required")
		return
	}

	day, err := time.ParseInLocation(dateLayout, dateStr, time.Local)
	if err != nil {
		respondError(c, 400, "date must be formatted as YYYY-MM-DD")
		return
	}

	slots, err := h.appointments.AvailableSlots(c.Request.Context(), doctorID, day)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Available slots retrieved", gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// BookAppointment upserts the patient from the booking form and books the
// slot. Patients booking for themselves are pinned to their own record.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var data struct {
		PatientName       string `json:"patient_name"`
		PatientPhone      string `json:"patient_phone"`
		ExistingPatientID string `json:"existing_patient_id"`
		Password          string `json:"password"`
		ClinicID          string `json:"clinic_id"`
		DoctorID          string `json:"doctor_id"`
		Date              string `json:"date"`
		Time              string `json:"time"`
		Reason            string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	day, err := time.ParseInLocation(dateLayout, data.Date, time.Local)
	if err != nil {
		respondError(c, 400, "date must be formatted as YYYY-MM-DD")
		return
	}
	startsAt, err := services.ParseSlotTime(day, data.Time)
	if err != nil {
		respondError(c, 400, "time must be formatted like 09:00 AM")
		return
	}

	ctx := c.Request.Context()

	existingID := data.ExistingPatientID
	if claims := currentClaims(c); claims != nil && claims.Role == models.RolePatient {
		existingID = claims.UserID
	}

	patient, err := h.patients.EnsurePatient(ctx, services.EnsurePatientInput{
		Name:       data.PatientName,
		Phone:      data.PatientPhone,
		ExistingID: existingID,
		Password:   data.Password,
		ClinicID:   data.ClinicID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	appointment, err := h.appointments.Book(ctx, services.BookAppointmentInput{
		PatientID: patient.ID,
		ClinicID:  data.ClinicID,
		DoctorID:  data.DoctorID,
		DateTime:  startsAt,
		Reason:    data.Reason,
		Status:    models.StatusScheduled,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, 201, "Appointment booked", gin.H{
		"appointment": appointment,
		"patient_id":  patient.ID,
	})
}

// ListAppointments returns appointments matching the query filters. Patients
// only ever see their own.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	filter := repositories.AppointmentFilter{
		ClinicID:  c.Query("clinic_id"),
		DoctorID:  c.Query("doctor_id"),
		PatientID: c.Query("patient_id"),
	}
	if claims := currentClaims(c); claims != nil && claims.Role == models.RolePatient {
		filter.PatientID = claims.UserID
	}

	appointments, err := h.appointments.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Appointments retrieved", appointments)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, err := h.appointments.GetByID(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if claims := currentClaims(c); claims != nil && claims.Role == models.RolePatient && appointment.PatientID != claims.UserID {
		respondError(c, 403, "You do not have access to this resource")
		return
	}
	respond(c, 200, "Appointment retrieved", appointment)
}

// UpdateAppointment reschedules or changes the status of an appointment.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var data struct {
		Date            *string `json:"date"`
		Time            *string `json:"time"`
		DurationMinutes *int    `json:"duration_minutes"`
		Reason          *string `json:"reason"`
		Status          *string `json:"status"`
		DoctorID        *string `json:"doctor_id"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	input := services.UpdateAppointmentInput{
		DurationMinutes: data.DurationMinutes,
		Reason:          data.Reason,
		Status:          data.Status,
		DoctorID:        data.DoctorID,
	}
	if data.Date != nil && data.Time != nil {
		day, err := time.ParseInLocation(dateLayout, *data.Date, time.Local)
		if err != nil {
			respondError(c, 400, "date must be formatted as YYYY-MM-DD")
			return
		}
		startsAt, err := services.ParseSlotTime(day, *data.Time)
		if err != nil {
			respondError(c, 400, "time must be formatted like 09:00 AM")
			return
		}
		input.DateTime = &startsAt
	}

	appointment, err := h.appointments.Update(c.Request.Context(), c.Param("appointment_id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Appointment updated", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.appointments.Delete(c.Request.Context(), c.Param("appointment_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Appointment deleted", nil)
}
