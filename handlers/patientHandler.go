package handlers

import (
	"MediPoint/models"
	"MediPoint/services"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id := c.Param("patient_id")
	if claims := currentClaims(c); claims != nil && claims.Role == models.RolePatient && claims.UserID != id {
		respondError(c, 403, "You do not have access to this resource")
		return
	}

	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Patient retrieved", patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Patients retrieved", patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id := c.Param("patient_id")
	if claims := currentClaims(c); claims != nil && claims.Role == models.RolePatient && claims.UserID != id {
		respondError(c, 403, "You do not have access to this resource")
		return
	}

	var data struct {
		Name             *string `json:"name"`
		Phone            *string `json:"phone"`
		DateOfBirth      *string `json:"date_of_birth"`
		Gender           *string `json:"gender"`
		Address          *string `json:"address"`
		EmergencyContact *string `json:"emergency_contact"`
		MedicalHistory   *string `json:"medical_history"`
		Allergies        *string `json:"allergies"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	patient, err := h.service.Update(c.Request.Context(), id, services.UpdatePatientInput{
		Name:             data.Name,
		Phone:            data.Phone,
		DateOfBirth:      data.DateOfBirth,
		Gender:           data.Gender,
		Address:          data.Address,
		EmergencyContact: data.EmergencyContact,
		MedicalHistory:   data.MedicalHistory,
		Allergies:        data.Allergies,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Patient updated", patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("patient_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Patient deleted", nil)
}
