package handlers

import (
	"errors"
	"net/http"

	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/handlers/dto"
	"github.com/kasa-app/kasa_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APIErrorResponse represents a generic error response for API operations
type APIErrorResponse struct {
	Message string `json:"message" example:"An error occurred"`
}

// APITokenHandler handles HTTP requests for API token operations
type APITokenHandler struct {
	tokenSvc services.APITokenSvc
}

// NewAPITokenHandler creates a new APITokenHandler
func NewAPITokenHandler(tokenSvc services.APITokenSvc) *APITokenHandler {
	return &APITokenHandler{
		tokenSvc: tokenSvc,
	}
}

// RegisterAPITokenRoutes registers the API token routes
func RegisterAPITokenRoutes(router *gin.RouterGroup, tokenSvc services.APITokenSvc) {
	handler := NewAPITokenHandler(tokenSvc)

	tokensGroup := router.Group("/tokens")
	{
		tokensGroup.POST("", handler.CreateToken)
		tokensGroup.GET("", handler.ListTokens)
		tokensGroup.DELETE("/:id", handler.RevokeToken)
		tokensGroup.DELETE("", handler.RevokeAllTokens)
	}
}

// CreateToken handles the creation of a new API token
// @Summary Create a new API token
// @Description Creates a new API token for the authenticated account. The token is shown only once upon creation and is sent via the x-api-key header on subsequent requests.
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAPITokenRequest true "Token creation details"
// @Success 201 {object} dto.CreateAPITokenResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 401 {object} APIErrorResponse
// @Failure 500 {object} APIErrorResponse
// @Router /tokens [post]
func (h *APITokenHandler) CreateToken(c *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.CreateAPITokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	tokenStr, token, err := h.tokenSvc.CreateToken(c.Request.Context(), accountID, req.Name, req.ExpiresIn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Message: "Failed to create token: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreateAPITokenResponse(tokenStr, *token))
}

// ListTokens handles listing all API tokens for the authenticated account
// @Summary List all API tokens
// @Description Lists all API tokens for the authenticated account. Only returns token metadata, not the actual token values.
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ListAPITokensResponse
// @Failure 401 {object} APIErrorResponse
// @Failure 500 {object} APIErrorResponse
// @Router /tokens [get]
func (h *APITokenHandler) ListTokens(c *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Message: "Unauthorized"})
		return
	}

	tokens, err := h.tokenSvc.ListTokens(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Message: "Failed to list tokens: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToAPITokenResponseList(tokens))
}

// RevokeToken handles revoking a specific API token
// @Summary Revoke an API token
// @Description Revokes a specific API token by ID. The token is immediately invalidated.
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param id path string true "Token ID (UUID format)" format(uuid)
// @Success 204 "Token revoked successfully"
// @Failure 400 {object} APIErrorResponse
// @Failure 401 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Failure 500 {object} APIErrorResponse
// @Router /tokens/{id} [delete]
func (h *APITokenHandler) RevokeToken(c *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Message: "Unauthorized"})
		return
	}

	tokenID := c.Param("id")
	if _, err := uuid.Parse(tokenID); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Message: "Invalid token ID"})
		return
	}

	if err := h.tokenSvc.RevokeToken(c.Request.Context(), accountID, tokenID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, APIErrorResponse{Message: "Token not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Message: "Failed to revoke token: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RevokeAllTokens handles revoking all API tokens for the authenticated account
// @Summary Revoke all API tokens
// @Description Revokes all API tokens for the authenticated account.
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 204 "All tokens revoked successfully"
// @Failure 401 {object} APIErrorResponse
// @Failure 500 {object} APIErrorResponse
// @Router /tokens [delete]
func (h *APITokenHandler) RevokeAllTokens(c *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Message: "Unauthorized"})
		return
	}

	if err := h.tokenSvc.RevokeAllTokens(c.Request.Context(), accountID); err != nil {
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Message: "Failed to revoke tokens: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
