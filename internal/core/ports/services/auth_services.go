package services

import (
	"context"

	"github.com/wishzy/wishzy-backend/internal/core/domain"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"golang.org/x/oauth2"
)

// AuthSvcFacade defines the authentication operations exposed to handlers.
type AuthSvcFacade interface {
	// Register creates an unverified local account and sends a verification email.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// VerifyEmail activates the account matching the verification token.
	VerifyEmail(ctx context.Context, token string) error

	// ResendVerification issues a fresh verification token for an unverified account.
	ResendVerification(ctx context.Context, email string) error

	// Login authenticates a local account and issues an access/refresh token pair.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, *TokenPair, error)

	// GoogleLogin verifies a Google ID token, provisioning the account on first login.
	GoogleLogin(ctx context.Context, idToken string) (*domain.User, *TokenPair, error)

	// ForgotPassword issues a password reset token and emails the reset link.
	// It succeeds silently when the email is unknown.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword sets a new password for the account matching the reset token.
	ResetPassword(ctx context.Context, token, newPassword string) error

	// RefreshAccessToken validates a refresh token and mints a new access token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}

// TokenPair carries the freshly minted tokens for a login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// GoogleTokenVerifier validates a Google ID token and extracts the profile.
type GoogleTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)
}

// GoogleOAuthSvcFacade covers both Google sign-in flows: ID-token credential
// verification (one-tap widget) and the server-side redirect flow.
type GoogleOAuthSvcFacade interface {
	GoogleTokenVerifier

	// GenerateStateString creates a CSRF token for the redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}

// MailSenderSvc sends transactional emails.
type MailSenderSvc interface {
	// SendVerificationEmail emails the account activation link.
	SendVerificationEmail(ctx context.Context, to, fullName, token string) error

	// SendPasswordResetEmail emails the password reset link.
	SendPasswordResetEmail(ctx context.Context, to, fullName, token string) error
}
