package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicdesk/internal/domain"
)

// @Summary Current user
// @Description Returns the authenticated user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} errorResponseBody "Not authenticated"
// @Security ApiKeyAuth
// @Router /users/me [get]
func (h *Handler) getCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		notFoundResponse(c, "user not found")
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} errorResponseBody "User not found"
// @Security ApiKeyAuth
// @Router /users/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	user, err := h.services.User.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "user not found")
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Create user
// @Description Creates a user account. Admin only.
// @Tags Users
// @Accept json
// @Produce json
// @Param input body domain.CreateUserDTO true "User data"
// @Success 201 {object} map[string]interface{} "ID of the created user"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Security ApiKeyAuth
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req domain.CreateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.User.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body domain.UpdateUserDTO true "Fields to update"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Security ApiKeyAuth
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id := c.Param("id")

	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}
	role, _ := getUserRole(c)
	if userID != id && role != domain.UserRoleAdmin {
		forbiddenResponse(c)
		return
	}

	var req domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.User.Update(c.Request.Context(), id, req); err != nil {
		h.logger.Error("failed to update user", zap.String("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "user updated")
}

// @Summary Change password
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body domain.PasswordUpdateDTO true "Old and new passwords"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Old password is incorrect"
// @Security ApiKeyAuth
// @Router /users/{id}/password [put]
func (h *Handler) updatePassword(c *gin.Context) {
	id := c.Param("id")

	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}
	if userID != id {
		forbiddenResponse(c)
		return
	}

	var req domain.PasswordUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.User.UpdatePassword(c.Request.Context(), id, req); err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "password updated")
}

// @Summary List users
// @Description Admin only.
// @Tags Users
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.User
// @Failure 403 {object} errorResponseBody "Access denied"
// @Security ApiKeyAuth
// @Router /users [get]
func (h *Handler) getUsers(c *gin.Context) {
	limit, offset := pagination(c)

	users, err := h.services.User.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, users)
}

// @Summary Delete user
// @Description Admin only.
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "User not found"
// @Security ApiKeyAuth
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.services.User.Delete(c.Request.Context(), c.Param("id")); err != nil {
		notFoundResponse(c, "user not found")
		return
	}

	noContentResponse(c)
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
