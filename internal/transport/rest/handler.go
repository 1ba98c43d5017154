package rest

import (
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"clinicdesk/config"
	"clinicdesk/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.GET("/:id", h.getUserByID)
			users.PUT("/:id", h.updateUser)
			users.PUT("/:id/password", h.updatePassword)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.POST("/", h.createUser)
				admin.GET("/", h.getUsers)
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		doctors := api.Group("/doctors")
		{
			doctors.GET("/", h.getDoctors)
			doctors.GET("/:id", h.getDoctorByID)
			doctors.GET("/:id/available-dates", h.getAvailableDates)
			doctors.GET("/:id/time-slots", h.getTimeSlots)

			auth := doctors.Group("/")
			auth.Use(h.authMiddleware())
			{
				auth.POST("/", h.createDoctor)
				auth.PUT("/:id", h.updateDoctor)
				auth.DELETE("/:id", h.adminMiddleware(), h.deleteDoctor)

				auth.PUT("/:id/availability", h.setAvailability)

				auth.POST("/:id/time-off", h.addTimeOff)
				auth.GET("/:id/time-off", h.getTimeOffs)
				auth.DELETE("/:id/time-off/:timeOffId", h.deleteTimeOff)
			}
		}

		patients := api.Group("/patients")
		patients.Use(h.authMiddleware())
		{
			patients.POST("/", h.createPatient)
			patients.GET("/", h.getPatients)
			patients.GET("/:id", h.getPatientByID)
			patients.PUT("/:id", h.updatePatient)
			patients.DELETE("/:id", h.adminMiddleware(), h.deletePatient)

			patients.GET("/:id/medical-records", h.getPatientMedicalRecords)
		}

		appointments := api.Group("/appointments")
		appointments.Use(h.authMiddleware())
		{
			appointments.POST("/", h.createAppointment)
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.GET("/:id/details", h.getAppointmentDetails)
			appointments.PUT("/:id/status", h.updateAppointmentStatus)
			appointments.DELETE("/:id", h.cancelAppointment)

			appointments.POST("/:id/reminders", h.createReminder)
			appointments.GET("/:id/reminders", h.getAppointmentReminders)
		}

		appointmentTypes := api.Group("/appointment-types")
		{
			appointmentTypes.GET("/", h.getAppointmentTypes)
			appointmentTypes.GET("/:id", h.getAppointmentTypeByID)

			admin := appointmentTypes.Group("/")
			admin.Use(h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createAppointmentType)
				admin.DELETE("/:id", h.deleteAppointmentType)
			}
		}

		records := api.Group("/medical-records")
		records.Use(h.authMiddleware(), h.doctorMiddleware())
		{
			records.POST("/", h.createMedicalRecord)
			records.GET("/:id", h.getMedicalRecordByID)
			records.PUT("/:id", h.updateMedicalRecord)

			records.POST("/:id/images", h.uploadMedicalImage)
			records.GET("/:id/images", h.getMedicalImages)
			records.DELETE("/images/:imageId", h.deleteMedicalImage)
		}
	}
}
