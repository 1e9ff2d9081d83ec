package handlers

import (
	"MediPoint/models"
	"MediPoint/services"

	"github.com/gin-gonic/gin"
)

type ClinicHandler struct {
	service *services.ClinicService
}

func NewClinicHandler(service *services.ClinicService) *ClinicHandler {
	return &ClinicHandler{service: service}
}

func (h *ClinicHandler) CreateClinic(c *gin.Context) {
	var clinic models.Clinic
	if err := c.ShouldBindJSON(&clinic); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}
	if err := h.service.Create(c.Request.Context(), &clinic); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 201, "Clinic created", clinic)
}

func (h *ClinicHandler) GetClinicByID(c *gin.Context) {
	clinic, err := h.service.GetByID(c.Request.Context(), c.Param("clinic_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Clinic retrieved", clinic)
}

func (h *ClinicHandler) GetAllClinics(c *gin.Context) {
	clinics, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Clinics retrieved", clinics)
}

func (h *ClinicHandler) UpdateClinic(c *gin.Context) {
	var data struct {
		Name        *string `json:"name"`
		Address     *string `json:"address"`
		Phone       *string `json:"phone"`
		Email       *string `json:"email"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	clinic, err := h.service.Update(c.Request.Context(), c.Param("clinic_id"), services.UpdateClinicInput{
		Name:        data.Name,
		Address:     data.Address,
		Phone:       data.Phone,
		Email:       data.Email,
		Description: data.Description,
		IsActive:    data.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Clinic updated", clinic)
}

func (h *ClinicHandler) DeleteClinic(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("clinic_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Clinic deleted", nil)
}
