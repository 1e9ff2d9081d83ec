package handlers

import (
	"MediPoint/models"
	"MediPoint/services"
	"MediPoint/utils"
	"errors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func patientUserPayload(patient *models.Patient) gin.H {
	return gin.H{
		"id":    patient.ID,
		"name":  patient.Name,
		"role":  models.RolePatient,
		"phone": patient.Phone,
	}
}

func staffUserPayload(staff *models.StaffUser) gin.H {
	return gin.H{
		"id":             staff.ID,
		"name":           staff.Name,
		"role":           staff.Role,
		"access_code":    staff.AccessCode,
		"clinic_id":      staff.ClinicID,
		"specialization": staff.Specialization,
		"license_number": staff.LicenseNumber,
	}
}

// PatientLogin authenticates a patient by phone and password.
func (h *AuthHandler) PatientLogin(c *gin.Context) {
	var credentials struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	patient, err := h.service.AuthenticatePatient(ctx, credentials.Phone, credentials.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(patient.ID, models.RolePatient)
	if err != nil {
		respondError(c, 500, "Failed to generate tokens")
		return
	}
	utils.SetAuthCookies(c, accessToken, refreshToken)

	respond(c, 200, "Login successful", gin.H{
		"user":  patientUserPayload(patient),
		"token": accessToken,
	})
}

// StaffLogin authenticates a staff member by access code and password.
func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var credentials struct {
		AccessCode string `json:"access_code"`
		Password   string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	staff, err := h.service.AuthenticateStaff(ctx, credentials.AccessCode, credentials.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(staff.ID, staff.Role)
	if err != nil {
		respondError(c, 500, "Failed to generate tokens")
		return
	}
	utils.SetAuthCookies(c, accessToken, refreshToken)

	respond(c, 200, "Login successful", gin.H{
		"user":  staffUserPayload(staff),
		"token": accessToken,
	})
}

// RegisterPatient creates a patient account and logs it in.
func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var data struct {
		Name               string `json:"name"`
		Phone              string `json:"phone"`
		Password           string `json:"password"`
		DateOfBirth        string `json:"date_of_birth"`
		Gender             string `json:"gender"`
		Address            string `json:"address"`
		RegisteredClinicID string `json:"registered_clinic_id"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	patient, err := h.service.RegisterPatient(ctx, services.RegisterPatientInput{
		Name:               data.Name,
		Phone:              data.Phone,
		Password:           data.Password,
		DateOfBirth:        data.DateOfBirth,
		Gender:             data.Gender,
		Address:            data.Address,
		RegisteredClinicID: data.RegisteredClinicID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(patient.ID, models.RolePatient)
	if err != nil {
		respondError(c, 500, "Failed to generate tokens")
		return
	}
	utils.SetAuthCookies(c, accessToken, refreshToken)

	respond(c, 201, "Registration successful", gin.H{
		"user":  patientUserPayload(patient),
		"token": accessToken,
	})
}

// Profile returns the account behind the presented token, shaped by role.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		respondError(c, 401, "Authentication required")
		return
	}

	ctx := c.Request.Context()
	profile, err := h.service.Profile(ctx, claims)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Profile retrieved", profile)
}

// RefreshToken issues a fresh access token from a still-valid one.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		respondError(c, 401, "Authentication required")
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		respondError(c, 500, "Failed to generate access token")
		return
	}
	respond(c, 200, "Token refreshed", gin.H{"token": accessToken})
}

// Logout revokes the presented token and clears auth cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := currentClaims(c)
	if claims != nil {
		if err := h.service.Logout(c.Request.Context(), claims); err != nil {
			respondError(c, 500, "Failed to revoke token")
			return
		}
	}
	utils.ClearAuthCookies(c)
	respond(c, 200, "Logged out", nil)
}

// SendResetCode emails a password reset code to a staff account.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil || data.Email == "" {
		respondError(c, 400, "Email is required")
		return
	}

	// Unknown emails get the same response as known ones so the endpoint
	// cannot be used to probe for accounts.
	if err := h.service.SendResetCode(c.Request.Context(), data.Email); err != nil && !errors.Is(err, services.ErrNotFound) {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Reset code sent", nil)
}

// ChangePassword verifies a reset code and rewrites the password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		ResetCode   string `json:"reset_code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), data.Email, data.ResetCode, data.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Password changed", nil)
}
