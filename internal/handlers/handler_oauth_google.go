package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/kasa-app/kasa_backend/internal/middleware"
	"github.com/kasa-app/kasa_backend/internal/platform/config"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthHandler handles Google OAuth related requests. It reuses the
// AuthHandler's token issuance so Google logins get the same access token
// plus refresh cookie as password logins.
type GoogleOAuthHandler struct {
	*AuthHandler
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	accountService     portssvc.AccountSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	authHandler *AuthHandler,
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	accountService portssvc.AccountSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		AuthHandler:        authHandler,
		googleOAuthService: googleOAuthService,
		accountService:     accountService,
	}
}

// registerGoogleOAuthRoutes sets up the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(
		NewAuthHandler(services.Account, services.TokenService, cfg),
		services.GoogleOAuthHandler,
		services.Account,
	)

	google := rg.Group("/api/v1/auth/google")
	{
		google.GET("/login-url", h.GetLoginURL)
		google.POST("/exchange-code", h.ExchangeCodeGoogle)
		google.POST("/id-token", h.LoginWithIDToken)
	}
}

// ExchangeCodeRequest defines the expected JSON body for the /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// LoginURLResponse carries the Google consent URL and the CSRF state.
type LoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// GetLoginURL godoc
// @Summary Get the Google login URL
// @Description Returns the URL to redirect the user to for Google consent, plus a CSRF state string.
// @Tags oauth
// @Produce json
// @Success 200 {object} LoginURLResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login-url [get]
func (h *GoogleOAuthHandler) GetLoginURL(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google login"})
		return
	}
	c.JSON(http.StatusOK, LoginURLResponse{
		URL:   h.googleOAuthService.GetGoogleLoginURL(ctx, state),
		State: state,
	})
}

// ExchangeCodeGoogle godoc
// @Summary Exchange authorization code for tokens
// @Description Exchanges a Google authorization code for an application access token and refresh cookie.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token missing from Google's token response")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	h.loginWithValidatedIDToken(c, idTokenString)
}

// LoginWithIDToken godoc
// @Summary Login with a Google ID token
// @Description Validates a Google ID token obtained client-side and logs the account in.
// @Tags oauth
// @Accept json
// @Produce json
// @Param idToken body dto.GoogleCallbackRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/id-token [post]
func (h *GoogleOAuthHandler) LoginWithIDToken(c *gin.Context) {
	var req dto.GoogleCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	h.loginWithValidatedIDToken(c, req.IDToken)
}

func (h *GoogleOAuthHandler) loginWithValidatedIDToken(c *gin.Context, idTokenString string) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	info := googleUserInfoFromClaims(payload)
	account, err := h.accountService.FindOrCreateByGoogleLogin(ctx, info)
	if err != nil {
		logger.Error("Failed to resolve Google login to account", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google login failed"})
		return
	}

	h.issueTokens(c, account)
}

func googleUserInfoFromClaims(payload *idtoken.Payload) domain.GoogleUserInfo {
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	return domain.GoogleUserInfo{
		ID:            payload.Subject,
		Email:         email,
		Name:          name,
		VerifiedEmail: verified,
	}
}
