package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicdesk/internal/domain"
)

// @Summary Create patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param input body domain.CreatePatientDTO true "Patient data"
// @Success 201 {object} map[string]interface{} "ID of the created patient"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Security ApiKeyAuth
// @Router /patients [post]
func (h *Handler) createPatient(c *gin.Context) {
	var req domain.CreatePatientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Patient.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to create patient", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary List patients
// @Tags Patients
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.Patient
// @Security ApiKeyAuth
// @Router /patients [get]
func (h *Handler) getPatients(c *gin.Context) {
	limit, offset := pagination(c)

	patients, err := h.services.Patient.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list patients", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, patients)
}

// @Summary Get patient by ID
// @Tags Patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} domain.Patient
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Security ApiKeyAuth
// @Router /patients/{id} [get]
func (h *Handler) getPatientByID(c *gin.Context) {
	patient, err := h.services.Patient.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, patient)
}

// @Summary Update patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param input body domain.UpdatePatientDTO true "Fields to update"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Security ApiKeyAuth
// @Router /patients/{id} [put]
func (h *Handler) updatePatient(c *gin.Context) {
	var req domain.UpdatePatientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Patient.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "patient updated")
}

// @Summary Delete patient
// @Description Admin only.
// @Tags Patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Security ApiKeyAuth
// @Router /patients/{id} [delete]
func (h *Handler) deletePatient(c *gin.Context) {
	if err := h.services.Patient.Delete(c.Request.Context(), c.Param("id")); err != nil {
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}

// @Summary Patient's medical records
// @Tags Patients
// @Produce json
// @Param id path string true "Patient ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.MedicalRecord
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Security ApiKeyAuth
// @Router /patients/{id}/medical-records [get]
func (h *Handler) getPatientMedicalRecords(c *gin.Context) {
	limit, offset := pagination(c)

	records, err := h.services.MedicalRecord.ListByPatient(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, records)
}
