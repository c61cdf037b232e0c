package dto

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	FullName        string `json:"fullName" binding:"required"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the sanitized user and the access token. The refresh
// token travels only in the httpOnly cookie, never in the body.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// ResendVerificationRequest is the body for POST /auth/resend-verification.
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordRequest is the body for POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest is the body for PUT /auth/reset-password.
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// RefreshTokenResponse carries the freshly minted access token.
type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// GoogleAuthRequest accepts the Google ID token under either field name the
// Google sign-in widgets use.
type GoogleAuthRequest struct {
	IDToken    string `json:"idToken"`
	Credential string `json:"credential"`
}
