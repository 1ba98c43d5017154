package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicdesk/internal/domain"
)

// @Summary Register a new user
// @Description Creates a user account with the patient or doctor role
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "ID of the created user"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Auth.Register(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("registration failed", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Log in
// @Description Authenticates by email or phone and returns a token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.Tokens "Access and refresh tokens"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	tokens, err := h.services.Auth.Login(c.Request.Context(), req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Refresh tokens
// @Description Exchanges a refresh token for a fresh token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} domain.Tokens "New access and refresh tokens"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *Handler) refreshTokens(c *gin.Context) {
	var req domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	tokens, err := h.services.Auth.RefreshTokens(c.Request.Context(), req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Log out
// @Description Invalidates the session tied to the refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} messageResponseType "Logged out"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	var req domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "logged out")
}
