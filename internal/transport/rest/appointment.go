package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicdesk/internal/domain"
)

// @Summary Book an appointment
// @Description Validates the candidate against the doctor's availability, working hours, time off and existing bookings, then schedules it
// @Tags Appointments
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Booking candidate; end_time is derived from the appointment type when omitted"
// @Success 201 {object} domain.Appointment "The scheduled appointment"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Doctor or patient not found"
// @Failure 409 {object} errorResponseBody "Slot conflicts with an existing appointment"
// @Failure 422 {object} errorResponseBody "Outside availability, working hours, or during time off"
// @Security ApiKeyAuth
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	appointment, err := h.services.Appointment.Create(c.Request.Context(), req)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, appointment)
}

// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Param patient_id query string false "Filter by patient"
// @Param doctor_id query string false "Filter by doctor"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param status query string false "Filter by status" Enums(scheduled, completed, cancelled)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} paginatedResponse
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	limit, offset := pagination(c)

	filter := domain.AppointmentFilter{
		Limit:  limit,
		Offset: offset,
	}
	if v := c.Query("patient_id"); v != "" {
		filter.PatientID = &v
	}
	if v := c.Query("doctor_id"); v != "" {
		filter.DoctorID = &v
	}
	if v := c.Query("date"); v != "" {
		filter.Date = &v
	}
	if v := c.Query("status"); v != "" {
		status := domain.AppointmentStatus(v)
		filter.Status = &status
	}

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list appointments", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, appointments, total, page, limit)
}

// @Summary Get appointment by ID
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} domain.Appointment
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Appointment with doctor and patient
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} domain.AppointmentDetails
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Security ApiKeyAuth
// @Router /appointments/{id}/details [get]
func (h *Handler) getAppointmentDetails(c *gin.Context) {
	details, err := h.services.Appointment.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, details)
}

// @Summary Update appointment status
// @Description A scheduled appointment may become completed or cancelled; both are terminal
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param input body domain.UpdateAppointmentStatusDTO true "Target status"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 409 {object} errorResponseBody "Transition not allowed"
// @Security ApiKeyAuth
// @Router /appointments/{id}/status [put]
func (h *Handler) updateAppointmentStatus(c *gin.Context) {
	var req domain.UpdateAppointmentStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Appointment.UpdateStatus(c.Request.Context(), c.Param("id"), req); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "status updated")
}

// @Summary Cancel appointment
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 409 {object} errorResponseBody "Appointment is not scheduled"
// @Security ApiKeyAuth
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	if err := h.services.Appointment.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "appointment cancelled")
}

// @Summary Create appointment type
// @Description Admin only.
// @Tags Appointment types
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentTypeDTO true "Type data"
// @Success 201 {object} map[string]interface{} "ID of the created type"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Security ApiKeyAuth
// @Router /appointment-types [post]
func (h *Handler) createAppointmentType(c *gin.Context) {
	var req domain.CreateAppointmentTypeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Appointment.CreateType(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to create appointment type", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary List appointment types
// @Tags Appointment types
// @Produce json
// @Success 200 {array} domain.AppointmentType
// @Router /appointment-types [get]
func (h *Handler) getAppointmentTypes(c *gin.Context) {
	types, err := h.services.Appointment.ListTypes(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list appointment types", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, types)
}

// @Summary Get appointment type by ID
// @Tags Appointment types
// @Produce json
// @Param id path string true "Type ID"
// @Success 200 {object} domain.AppointmentType
// @Failure 404 {object} errorResponseBody "Type not found"
// @Router /appointment-types/{id} [get]
func (h *Handler) getAppointmentTypeByID(c *gin.Context) {
	appointmentType, err := h.services.Appointment.GetType(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointmentType)
}

// @Summary Delete appointment type
// @Description Admin only.
// @Tags Appointment types
// @Produce json
// @Param id path string true "Type ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "Type not found"
// @Security ApiKeyAuth
// @Router /appointment-types/{id} [delete]
func (h *Handler) deleteAppointmentType(c *gin.Context) {
	if err := h.services.Appointment.DeleteType(c.Request.Context(), c.Param("id")); err != nil {
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}

// @Summary Schedule a reminder
// @Description The reminder must fire before the appointment starts
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param input body domain.CreateReminderDTO true "Reminder data"
// @Success 201 {object} map[string]interface{} "ID of the created reminder"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 422 {object} errorResponseBody "Reminder scheduled after the appointment start"
// @Security ApiKeyAuth
// @Router /appointments/{id}/reminders [post]
func (h *Handler) createReminder(c *gin.Context) {
	var req domain.CreateReminderDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}
	req.AppointmentID = c.Param("id")

	id, err := h.services.Reminder.Create(c.Request.Context(), req)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary List reminders for an appointment
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {array} domain.Reminder
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Security ApiKeyAuth
// @Router /appointments/{id}/reminders [get]
func (h *Handler) getAppointmentReminders(c *gin.Context) {
	reminders, err := h.services.Reminder.ListByAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, reminders)
}
