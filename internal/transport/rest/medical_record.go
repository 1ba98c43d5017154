package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicdesk/internal/domain"
)

const maxImageSize = 10 << 20

// @Summary Create medical record
// @Description When tied to an appointment, the record's doctor and patient must match it
// @Tags Medical records
// @Accept json
// @Produce json
// @Param input body domain.CreateMedicalRecordDTO true "Record data"
// @Success 201 {object} map[string]interface{} "ID of the created record"
// @Failure 404 {object} errorResponseBody "Patient, doctor or appointment not found"
// @Failure 422 {object} errorResponseBody "Doctor/patient pair does not match the appointment"
// @Security ApiKeyAuth
// @Router /medical-records [post]
func (h *Handler) createMedicalRecord(c *gin.Context) {
	var req domain.CreateMedicalRecordDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.MedicalRecord.Create(c.Request.Context(), req)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Get medical record by ID
// @Tags Medical records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} domain.MedicalRecord
// @Failure 404 {object} errorResponseBody "Record not found"
// @Security ApiKeyAuth
// @Router /medical-records/{id} [get]
func (h *Handler) getMedicalRecordByID(c *gin.Context) {
	record, err := h.services.MedicalRecord.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, record)
}

// @Summary Update medical record
// @Tags Medical records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param input body domain.UpdateMedicalRecordDTO true "Fields to update"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "Record not found"
// @Security ApiKeyAuth
// @Router /medical-records/{id} [put]
func (h *Handler) updateMedicalRecord(c *gin.Context) {
	var req domain.UpdateMedicalRecordDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.MedicalRecord.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "record updated")
}

// @Summary Attach an image
// @Description Uploads an image file (multipart form) and links it to the record
// @Tags Medical records
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Record ID"
// @Param file formData file true "Image file"
// @Param title formData string true "Image title"
// @Param description formData string false "Description"
// @Param image_type formData string false "Image kind (xray, mri, ...)"
// @Success 201 {object} map[string]interface{} "ID of the stored image"
// @Failure 400 {object} errorResponseBody "Missing file or title"
// @Failure 404 {object} errorResponseBody "Record not found"
// @Security ApiKeyAuth
// @Router /medical-records/{id}/images [post]
func (h *Handler) uploadMedicalImage(c *gin.Context) {
	var req domain.CreateMedicalImageDTO
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("invalid form data", zap.Error(err))
		badRequestResponse(c, "invalid form data")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequestResponse(c, "image file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		badRequestResponse(c, "image file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read uploaded file", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	id, err := h.services.MedicalRecord.UploadImage(c.Request.Context(), c.Param("id"), req, data, fileHeader.Filename)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary List record images
// @Tags Medical records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {array} domain.MedicalImage
// @Failure 404 {object} errorResponseBody "Record not found"
// @Security ApiKeyAuth
// @Router /medical-records/{id}/images [get]
func (h *Handler) getMedicalImages(c *gin.Context) {
	images, err := h.services.MedicalRecord.ListImages(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, images)
}

// @Summary Delete an image
// @Tags Medical records
// @Produce json
// @Param imageId path string true "Image ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "Image not found"
// @Security ApiKeyAuth
// @Router /medical-records/images/{imageId} [delete]
func (h *Handler) deleteMedicalImage(c *gin.Context) {
	if err := h.services.MedicalRecord.DeleteImage(c.Request.Context(), c.Param("imageId")); err != nil {
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
