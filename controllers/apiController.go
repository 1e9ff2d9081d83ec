package controllers

import (
	"MediPoint/handlers"
	"MediPoint/middlewares"
	"MediPoint/models"

	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the booking, record and admin routes. The booking
// surface is public so walk-in patients can book without an account; the
// record surface requires a token and the services narrow what each role can
// read.
func SetupAPIRoutes(
	router *gin.Engine,
	clinicHandler *handlers.ClinicHandler,
	staffHandler *handlers.StaffUserHandler,
	patientHandler *handlers.PatientHandler,
	appointmentHandler *handlers.AppointmentHandler,
	prescriptionHandler *handlers.PrescriptionHandler,
	xrayHandler *handlers.XRayHandler,
) {
	// Public booking surface
	router.GET("/clinics", clinicHandler.GetAllClinics)
	router.GET("/clinics/:clinic_id", clinicHandler.GetClinicByID)
	router.GET("/doctors", staffHandler.ListDoctors)
	router.GET("/availability", appointmentHandler.GetAvailability)
	router.POST("/appointments", middlewares.OptionalTokenMiddleware(), appointmentHandler.BookAppointment)

	authed := router.Group("/").Use(middlewares.TokenAuthMiddleware())
	{
		authed.GET("/appointments", appointmentHandler.ListAppointments)
		authed.GET("/appointments/:appointment_id", appointmentHandler.GetAppointmentByID)
		authed.PUT("/appointments/:appointment_id", appointmentHandler.UpdateAppointment)

		authed.GET("/patients/:patient_id", patientHandler.GetPatientByID)
		authed.PUT("/patients/:patient_id", patientHandler.UpdatePatient)

		authed.GET("/patients/:patient_id/prescriptions", prescriptionHandler.ListPrescriptions)
		authed.GET("/patients/:patient_id/xrays", xrayHandler.ListXRays)
	}

	doctorOnly := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleDoctor),
	)
	{
		doctorOnly.POST("/patients/:patient_id/prescriptions", prescriptionHandler.CreatePrescription)
		doctorOnly.PATCH("/prescriptions/:prescription_id/sharing", prescriptionHandler.SetPrescriptionSharing)
		doctorOnly.DELETE("/prescriptions/:prescription_id", prescriptionHandler.DeletePrescription)

		doctorOnly.PATCH("/xrays/:xray_id/sharing", xrayHandler.SetXRaySharing)
		doctorOnly.DELETE("/xrays/:xray_id", xrayHandler.DeleteXRay)
	}

	// X-rays are recorded by doctors or laboratory technicians.
	imaging := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleDoctor, models.RoleLaboratory),
	)
	{
		imaging.POST("/patients/:patient_id/xrays", xrayHandler.CreateXRay)
	}

	staffOnly := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin),
	)
	{
		staffOnly.GET("/patients", patientHandler.GetAllPatients)
		staffOnly.DELETE("/appointments/:appointment_id", appointmentHandler.DeleteAppointment)
	}

	adminOnly := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
	)
	{
		adminOnly.POST("/clinics", clinicHandler.CreateClinic)
		adminOnly.PUT("/clinics/:clinic_id", clinicHandler.UpdateClinic)
		adminOnly.DELETE("/clinics/:clinic_id", clinicHandler.DeleteClinic)

		adminOnly.POST("/staff", staffHandler.CreateStaffUser)
		adminOnly.GET("/staff", staffHandler.GetAllStaffUsers)
		adminOnly.GET("/staff/:staff_id", staffHandler.GetStaffUserByID)
		adminOnly.PUT("/staff/:staff_id", staffHandler.UpdateStaffUser)
		adminOnly.DELETE("/staff/:staff_id", staffHandler.DeleteStaffUser)

		adminOnly.DELETE("/patients/:patient_id", patientHandler.DeletePatient)
	}
}
