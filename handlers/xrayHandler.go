package handlers

import (
	"MediPoint/services"
	"time"

	"github.com/gin-gonic/gin"
)

type XRayHandler struct {
	service *services.XRayService
}

func NewXRayHandler(service *services.XRayService) *XRayHandler {
	return &XRayHandler{service: service}
}

func (h *XRayHandler) CreateXRay(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		respondError(c, 401, "Authentication required")
		return
	}

	var data struct {
		Description string `json:"description"`
		DateTaken   string `json:"date_taken"`
		ImageURL    string `json:"image_url"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, 400, "Invalid request body")
		return
	}

	var dateTaken time.Time
	if data.DateTaken != "" {
		var err error
		dateTaken, err = time.ParseInLocation(dateLayout, data.DateTaken, time.Local)
		if err != nil {
			respondError(c, 400, "date_taken must be formatted as YYYY-MM-DD")
			return
		}
	}

	xray, err := h.service.Create(c.Request.Context(), services.CreateXRayInput{
		PatientID:   c.Param("patient_id"),
		Description: data.Description,
		DateTaken:   dateTaken,
		ImageURL:    data.ImageURL,
		Notes:       data.Notes,
		CreatedByID: claims.UserID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 201, "X-ray created", xray)
}

func (h *XRayHandler) ListXRays(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		respondError(c, 401, "Authentication required")
		return
	}

	xrays, err := h.service.ListForViewer(c.Request.Context(), c.Param("patient_id"), services.Viewer{
		ID:   claims.UserID,
		Role: claims.Role,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "X-rays retrieved", xrays)
}

func (h *XRayHandler) SetXRaySharing(c *gin.Context) {
	var data struct {
		Audience string `json:"audience"`
		Shared   *bool  `json:"shared"`
	}
	if err := c.ShouldBindJSON(&data); err != nil || data.Shared == nil {
		respondError(c, 400, "audience and shared are required")
		return
	}

	id := c.Param("xray_id")
	if err := h.service.SetSharingFlag(c.Request.Context(), id, data.Audience, *data.Shared); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "Sharing updated", nil)
}

func (h *XRayHandler) DeleteXRay(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("xray_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, 200, "X-ray deleted", nil)
}
