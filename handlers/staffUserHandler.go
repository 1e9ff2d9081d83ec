package handlers

import (
	"MediPoint/repositories"
	"MediPoint/services"

	"github.com/gin-gonic/gin"
)

type StaffUserHandler struct {
	service *services.StaffUserService
}

func NewStaffUserHandler(service *services.StaffUserService) *StaffUserHandler {
	return &StaffUserHandler{service: service}
}

func (h *StaffUserHandler) CreateStaffUser(c *gin.Context) {
	var data struct {
		Name           string `json:"name"`
		AccessCode     string `json:"access_code"`
		Password       string `json:"password"`
		Role           string `json:"role"`
		ClinicID       string `json:"clinic_id"`
		Email          string `json:"email"`
		Phone          string `json:"phone"`
		Specialization string `json:"specialization"`
		LicenseNumber  string `json:"license_number"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	staff, err := h.service.Create(c.Request.Context(), services.CreateStaffUserInput{
		Name:           data.Name,
		AccessCode:     data.AccessCode,
		Password:       data.Password,
		Role:           data.Role,
		ClinicID:       data.ClinicID,
		Email:          data.Email,
		Phone:          data.Phone,
		Specialization: data.Specialization,
		LicenseNumber:  data.LicenseNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 201, "Staff user created", staff)
}

func (h *StaffUserHandler) GetStaffUserByID(c *gin.Context) {
	staff, err := h.service.GetByID(c.Request.Context(), c.Param("staff_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Staff user retrieved", staff)
}

func (h *StaffUserHandler) GetAllStaffUsers(c *gin.Context) {
	filter := repositories.StaffUserFilter{
		ClinicID: c.Query("clinic_id"),
		Role:     c.Query("role"),
	}
	staff, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Staff users retrieved", staff)
}

// ListDoctors feeds the booking flow's doctor picker. Active doctors only.
func (h *StaffUserHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context(), c.Query("clinic_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Doctors retrieved", doctors)
}

func (h *StaffUserHandler) UpdateStaffUser(c *gin.Context) {
	var data struct {
		Name           *string `json:"name"`
		AccessCode     *string `json:"access_code"`
		Password       *string `json:"password"`
		ClinicID       *string `json:"clinic_id"`
		Email          *string `json:"email"`
		Phone          *string `json:"phone"`
		Specialization *string `json:"specialization"`
		LicenseNumber  *string `json:"license_number"`
		IsActive       *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	staff, err := h.service.Update(c.Request.Context(), c.Param("staff_id"), services.UpdateStaffUserInput{
		Name:           data.Name,
		AccessCode:     data.AccessCode,
		Password:       data.Password,
		ClinicID:       data.ClinicID,
		Email:          data.Email,
		Phone:          data.Phone,
		Specialization: data.Specialization,
		LicenseNumber:  data.LicenseNumber,
		IsActive:       data.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Staff user updated", staff)
}

func (h *StaffUserHandler) DeleteStaffUser(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("staff_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Staff user deleted", nil)
}
