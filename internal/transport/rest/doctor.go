package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicdesk/internal/domain"
)

// @Summary List doctors
// @Tags Doctors
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.Doctor
// @Router /doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	limit, offset := pagination(c)

	doctors, err := h.services.Doctor.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list doctors", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, doctors)
}

// @Summary Get doctor by ID
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} domain.Doctor
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id} [get]
func (h *Handler) getDoctorByID(c *gin.Context) {
	doctor, err := h.services.Doctor.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, doctor)
}

// @Summary Create doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param input body domain.CreateDoctorDTO true "Doctor data with optional weekly availability"
// @Success 201 {object} map[string]interface{} "ID of the created doctor"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 422 {object} errorResponseBody "Invalid availability window"
// @Security ApiKeyAuth
// @Router /doctors [post]
func (h *Handler) createDoctor(c *gin.Context) {
	var req domain.CreateDoctorDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Doctor.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to create doctor", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Update doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param input body domain.UpdateDoctorDTO true "Fields to update"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Security ApiKeyAuth
// @Router /doctors/{id} [put]
func (h *Handler) updateDoctor(c *gin.Context) {
	var req domain.UpdateDoctorDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Doctor.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "doctor updated")
}

// @Summary Delete doctor
// @Description Admin only.
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Security ApiKeyAuth
// @Router /doctors/{id} [delete]
func (h *Handler) deleteDoctor(c *gin.Context) {
	if err := h.services.Doctor.Delete(c.Request.Context(), c.Param("id")); err != nil {
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}

// @Summary Replace weekly availability
// @Description Replaces the doctor's recurring weekly windows. Windows on the same weekday must not overlap.
// @Tags Doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param input body []domain.AvailabilityDTO true "Weekly windows"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Failure 409 {object} errorResponseBody "Windows overlap"
// @Failure 422 {object} errorResponseBody "Invalid time range"
// @Security ApiKeyAuth
// @Router /doctors/{id}/availability [put]
func (h *Handler) setAvailability(c *gin.Context) {
	var req []domain.AvailabilityDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Doctor.SetAvailability(c.Request.Context(), c.Param("id"), req); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "availability updated")
}

// @Summary Bookable dates
// @Description Dates within the booking horizon on which the doctor has an availability window
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {array} domain.AvailableDay
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id}/available-dates [get]
func (h *Handler) getAvailableDates(c *gin.Context) {
	days, err := h.services.Schedule.AvailableDates(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, days)
}

// @Summary Slot start times
// @Description 30-minute slot start times for the doctor on the given date; empty if the weekday has no window
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Param date query string true "Date in YYYY-MM-DD form"
// @Success 200 {array} string
// @Failure 400 {object} errorResponseBody "Missing or malformed date"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id}/time-slots [get]
func (h *Handler) getTimeSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		badRequestResponse(c, "date query parameter is required")
		return
	}

	slots, err := h.services.Schedule.TimeSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Add time off
// @Tags Doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param input body domain.CreateTimeOffDTO true "Time off period"
// @Success 201 {object} map[string]interface{} "ID of the created period"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Failure 422 {object} errorResponseBody "Invalid time range"
// @Security ApiKeyAuth
// @Router /doctors/{id}/time-off [post]
func (h *Handler) addTimeOff(c *gin.Context) {
	var req domain.CreateTimeOffDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Doctor.AddTimeOff(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary List time off
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {array} domain.TimeOff
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Security ApiKeyAuth
// @Router /doctors/{id}/time-off [get]
func (h *Handler) getTimeOffs(c *gin.Context) {
	timeOffs, err := h.services.Doctor.ListTimeOffs(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, timeOffs)
}

// @Summary Delete time off
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Param timeOffId path string true "Time off ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "Not found"
// @Security ApiKeyAuth
// @Router /doctors/{id}/time-off/{timeOffId} [delete]
func (h *Handler) deleteTimeOff(c *gin.Context) {
	if err := h.services.Doctor.DeleteTimeOff(c.Request.Context(), c.Param("id"), c.Param("timeOffId")); err != nil {
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
