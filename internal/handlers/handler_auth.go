package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
	"github.com/wishzy/wishzy-backend/internal/platform/config"
)

const oauthStateCookieName = "oauthState"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService   portssvc.AuthSvcFacade
	googleService portssvc.GoogleOAuthSvcFacade
	userService   portssvc.UserSvcFacade
	cfg           *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService portssvc.AuthSvcFacade, googleService portssvc.GoogleOAuthSvcFacade, userService portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		googleService: googleService,
		userService:   userService,
		cfg:           cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Auth, services.GoogleOAuth, services.User, cfg)

	// Rate limit credential endpoints: 5 requests per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.GET("/verify-email", h.VerifyEmail)
		auth.POST("/resend-verification", limitMiddleware, h.ResendVerification)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/refresh-token", h.Refresh)
		auth.POST("/forgot-password", limitMiddleware, h.ForgotPassword)
		auth.PUT("/reset-password", h.ResetPassword)
		auth.GET("/profile", middleware.AuthMiddleware(cfg.JWTSecret), h.Profile)

		auth.POST("/google", h.GoogleCredential)
		auth.GET("/google/login", h.GoogleLoginRedirect)
		auth.GET("/google/callback", h.GoogleCallback)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates an unverified account and emails a verification link.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration info"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToUserResponse(user), "Registration successful, please verify your email")
}

// VerifyEmail godoc
// @Summary Verify email address
// @Description Activates the account matching the verification token.
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /auth/verify-email [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Success: false, Message: "Verification token is required", URL: c.Request.URL.Path})
		return
	}

	if err := h.authService.VerifyEmail(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Email verified successfully")
}

// ResendVerification godoc
// @Summary Resend verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param resend body dto.ResendVerificationRequest true "Account email"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /auth/resend-verification [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.authService.ResendVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Verification email sent")
}

// Login godoc
// @Summary User login
// @Description Authenticates a local account. The access token returns in the
// @Description body; the refresh token is set as an httpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, tokens, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: tokens.AccessToken,
	}, "Login successful")
}

// Logout godoc
// @Summary User logout
// @Description Clears the refresh token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearRefreshCookie(c)
	respondSuccess(c, http.StatusOK, nil, "Logged out")
}

// Refresh godoc
// @Summary Refresh access token
// @Description Mints a new access token from the refresh token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.RefreshTokenResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /auth/refresh-token [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Refresh token missing", URL: c.Request.URL.Path})
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.RefreshTokenResponse{AccessToken: accessToken}, "Token refreshed")
}

// Profile godoc
// @Summary Get current user profile
// @Description Returns the sanitized account behind the access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "")
}

// ForgotPassword godoc
// @Summary Request password reset
// @Description Emails a reset link. Responds identically whether or not the
// @Description email is registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgot body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.APIResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "If the email is registered, a reset link has been sent")
}

// ResetPassword godoc
// @Summary Reset password
// @Description Sets a new password using the token from the reset email.
// @Tags auth
// @Accept json
// @Produce json
// @Param token query string true "Reset token"
// @Param reset body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /auth/reset-password [put]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Success: false, Message: "Reset token is required", URL: c.Request.URL.Path})
		return
	}

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Success: false, Message: "Passwords do not match", URL: c.Request.URL.Path})
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), token, req.Password); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Password reset successfully")
}

// GoogleCredential godoc
// @Summary Google sign-in with ID token
// @Description Verifies a Google ID token from the sign-in widget and logs the
// @Description user in, provisioning the account on first login.
// @Tags auth
// @Accept json
// @Produce json
// @Param credential body dto.GoogleAuthRequest true "Google ID token"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /auth/google [post]
func (h *AuthHandler) GoogleCredential(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	idToken := req.IDToken
	if idToken == "" {
		idToken = req.Credential
	}
	if idToken == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Success: false, Message: "Google ID token is required", URL: c.Request.URL.Path})
		return
	}

	user, tokens, err := h.authService.GoogleLogin(c.Request.Context(), idToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: tokens.AccessToken,
	}, "Login successful")
}

// GoogleLoginRedirect godoc
// @Summary Start Google redirect sign-in
// @Description Redirects the browser to Google's consent screen.
// @Tags auth
// @Success 307
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLoginRedirect(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := h.googleService.GenerateStateString(ctx)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 300, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleService.GetGoogleLoginURL(ctx, state))
}

// GoogleCallback godoc
// @Summary Google redirect sign-in callback
// @Description Validates the OAuth state, exchanges the authorization code and
// @Description logs the user in.
// @Tags auth
// @Produce json
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Invalid OAuth state", URL: c.Request.URL.Path})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Success: false, Message: "Authorization code is required", URL: c.Request.URL.Path})
		return
	}

	oauth2Token, err := h.googleService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Invalid or expired authorization code", URL: c.Request.URL.Path})
		return
	}

	idToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idToken == "" {
		logger.Error("ID token missing from Google token response")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{Success: false, Message: "Failed to retrieve ID token from Google", URL: c.Request.URL.Path})
		return
	}

	user, tokens, err := h.authService.GoogleLogin(ctx, idToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: tokens.AccessToken,
	}, "Login successful")
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		refreshToken,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		"/",
		"",
		h.cfg.IsProduction,
		true,
	)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, "/", "", h.cfg.IsProduction, true)
}
