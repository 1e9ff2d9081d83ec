package handlers

import (
	"MediPoint/services"
	"time"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	service *services.PrescriptionService
}

func NewPrescriptionHandler(service *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

// CreatePrescription issues a prescription for a patient. The issuing doctor
// comes from the token, never from the body.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		respondError(c, 401, "Authentication required")
		return
	}

	var data struct {
		Medication   string `json:"medication"`
		Dosage       string `json:"dosage"`
		Instructions string `json:"instructions"`
		DateIssued   string `json:"date_issued"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	var dateIssued time.Time
	if data.DateIssued != "" {
		var err error
		dateIssued, err = time.ParseInLocation(dateLayout, data.DateIssued, time.Local)
		if err != nil {
			respondError(c, 400, "date_issued must be formatted as YYYY-MM-DD")
			return
		}
	}

	prescription, err := h.service.Create(c.Request.Context(), services.CreatePrescriptionInput{
		PatientID:       c.Param("patient_id"),
		Medication:      data.Medication,
		Dosage:          data.Dosage,
		Instructions:    data.Instructions,
		DateIssued:      dateIssued,
		IssuingDoctorID: claims.UserID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 201, "Prescription created", prescription)
}

// ListPrescriptions returns the patient's prescriptions visible to the
// caller's role.
func (h *PrescriptionHandler) ListPrescriptions(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		respondError(c, 401, "Authentication required")
		return
	}

	prescriptions, err := h.service.ListForViewer(c.Request.Context(), c.Param("patient_id"), services.Viewer{
		ID:   claims.UserID,
		Role: claims.Role,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Prescriptions retrieved", prescriptions)
}

// SetPrescriptionSharing flips one audience flag on a prescription.
func (h *PrescriptionHandler) SetPrescriptionSharing(c *gin.Context) {
	var data struct {
		Audience string `json:"audience"`
		Shared   *bool  `json:"shared"`
	}
	if err := c.ShouldBindJSON(&data); err != nil || data.Shared == nil {
		respondError(c, 400, "audience and shared are required")
		return
	}

	id := c.Param("prescription_id")
	if err := h.service.SetSharingFlag(c.Request.Context(), id, data.Audience, *data.Shared); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Sharing updated", nil)
}

func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("prescription_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Prescription deleted", nil)
}
