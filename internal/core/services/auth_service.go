package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
	"github.com/wishzy/wishzy-backend/internal/platform/config"
	"github.com/wishzy/wishzy-backend/internal/utils"
)

// verificationTokenTTL applies to both email verification and password reset
// tokens.
const verificationTokenTTL = 24 * time.Hour

// authService implements the authentication flows: local register/login with
// email verification, password reset, stateless JWT refresh and Google sign-in.
type authService struct {
	cfg            *config.Config
	userRepo       portsrepo.UserRepositoryFacade
	mailSender     portssvc.MailSenderSvc
	googleVerifier portssvc.GoogleTokenVerifier
}

// NewAuthService creates a new authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, mailSender portssvc.MailSenderSvc, googleVerifier portssvc.GoogleTokenVerifier) portssvc.AuthSvcFacade {
	return &authService{
		cfg:            cfg,
		userRepo:       userRepo,
		mailSender:     mailSender,
		googleVerifier: googleVerifier,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates an unverified local account and sends the verification email.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: password and confirm password do not match", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("Failed to check existing user during registration", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		if !existing.Verified {
			// The account exists but never finished verification. Do not
			// overwrite the stored row; point the caller at resend instead.
			return nil, fmt.Errorf("%w: email already registered but not verified, request a new verification email", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}
	tokenExp := time.Now().Add(verificationTokenTTL)

	now := time.Now()
	user := domain.User{
		ID:                   uuid.NewString(),
		Email:                req.Email,
		FullName:             req.FullName,
		PasswordHash:         passwordHash,
		Verified:             false,
		VerificationToken:    &token,
		VerificationTokenExp: &tokenExp,
		Role:                 domain.RoleUser,
		LoginType:            domain.LoginTypeLocal,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user during registration", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.mailSender.SendVerificationEmail(ctx, user.Email, user.FullName, token); err != nil {
		// The account exists either way; the user can ask for a resend.
		logger.Error("Failed to send verification email", slog.String("error", err.Error()), slog.String("user_id", user.ID))
	}

	logger.Info("User registered", slog.String("user_id", user.ID))
	return &user, nil
}

// VerifyEmail activates the account matching the verification token.
func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to look up verification token: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: invalid verification token", apperrors.ErrNotFound)
	}
	if user.VerificationTokenExp == nil || time.Now().After(*user.VerificationTokenExp) {
		return fmt.Errorf("%w: verification token has expired", apperrors.ErrValidation)
	}

	user.Verified = true
	user.VerificationToken = nil
	user.VerificationTokenExp = nil
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to mark user verified", slog.String("error", err.Error()), slog.String("user_id", user.ID))
		return fmt.Errorf("failed to verify user: %w", err)
	}

	logger.Info("Email verified", slog.String("user_id", user.ID))
	return nil
}

// ResendVerification issues a fresh verification token for an unverified account.
func (s *authService) ResendVerification(ctx context.Context, email string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: no account for this email", apperrors.ErrNotFound)
	}
	if user.Verified {
		return fmt.Errorf("%w: email is already verified", apperrors.ErrValidation)
	}

	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}
	tokenExp := time.Now().Add(verificationTokenTTL)

	user.VerificationToken = &token
	user.VerificationTokenExp = &tokenExp
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to store new verification token: %w", err)
	}

	if err := s.mailSender.SendVerificationEmail(ctx, user.Email, user.FullName, token); err != nil {
		logger.Error("Failed to send verification email", slog.String("error", err.Error()), slog.String("user_id", user.ID))
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}

// Login authenticates a local account and issues an access/refresh token pair.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, *portssvc.TokenPair, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("Failed to look up user during login", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.DeletedAt != nil {
		return nil, nil, fmt.Errorf("%w: no account for this email", apperrors.ErrNotFound)
	}
	// Verification is checked before the password so an unverified account
	// fails the same way regardless of password correctness.
	if !user.Verified {
		return nil, nil, fmt.Errorf("%w: email is not verified", apperrors.ErrValidation)
	}
	if user.LoginType == domain.LoginTypeGoogle && user.PasswordHash == "" {
		return nil, nil, fmt.Errorf("%w: this account uses Google sign-in", apperrors.ErrValidation)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, nil, fmt.Errorf("%w: invalid password", apperrors.ErrValidation)
	}

	pair, err := s.generateTokenPair(user)
	if err != nil {
		logger.Error("Failed to generate tokens", slog.String("error", err.Error()), slog.String("user_id", user.ID))
		return nil, nil, err
	}

	logger.Info("User logged in", slog.String("user_id", user.ID))
	return user, pair, nil
}

// GoogleLogin verifies a Google ID token, provisioning the account on first login.
func (s *authService) GoogleLogin(ctx context.Context, idToken string) (*domain.User, *portssvc.TokenPair, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	info, err := s.googleVerifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.Warn("Google ID token verification failed", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("%w: invalid Google credential", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		// First Google sign-in provisions a verified account without a password.
		fullName := info.Name
		if fullName == "" {
			fullName = strings.SplitN(info.Email, "@", 2)[0]
		}
		now := time.Now()
		newUser := domain.User{
			ID:        uuid.NewString(),
			Email:     info.Email,
			FullName:  fullName,
			Verified:  true,
			Role:      domain.RoleUser,
			LoginType: domain.LoginTypeGoogle,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if info.Picture != "" {
			newUser.Avatar = &info.Picture
		}
		if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
			logger.Error("Failed to provision Google user", slog.String("error", err.Error()))
			return nil, nil, fmt.Errorf("failed to create user: %w", err)
		}
		user = &newUser
		logger.Info("Provisioned account from Google sign-in", slog.String("user_id", user.ID))
	} else if user.LoginType != domain.LoginTypeGoogle {
		// Existing local account signing in through Google: record the new
		// login origin. Password state is left untouched.
		user.LoginType = domain.LoginTypeGoogle
		user.UpdatedAt = time.Now()
		if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
			logger.Error("Failed to update login type", slog.String("error", err.Error()), slog.String("user_id", user.ID))
			return nil, nil, fmt.Errorf("failed to update user: %w", err)
		}
		logger.Info("Login type switched to Google", slog.String("user_id", user.ID))
	}

	pair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// ForgotPassword issues a reset token and emails the reset link. Unknown
// emails succeed silently so the endpoint cannot be used to probe accounts.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		logger.Info("Password reset requested for unknown email")
		return nil
	}

	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	tokenExp := time.Now().Add(verificationTokenTTL)

	user.ResetPasswordToken = &token
	user.ResetPasswordExp = &tokenExp
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := s.mailSender.SendPasswordResetEmail(ctx, user.Email, user.FullName, token); err != nil {
		logger.Error("Failed to send password reset email", slog.String("error", err.Error()), slog.String("user_id", user.ID))
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}

// ResetPassword sets a new password for the account matching the reset token.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByResetToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: invalid reset token", apperrors.ErrNotFound)
	}
	if user.ResetPasswordExp == nil || time.Now().After(*user.ResetPasswordExp) {
		return fmt.Errorf("%w: reset token has expired", apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.ResetPasswordToken = nil
	user.ResetPasswordExp = nil
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update password", slog.String("error", err.Error()), slog.String("user_id", user.ID))
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("Password reset", slog.String("user_id", user.ID))
	return nil
}

// RefreshAccessToken validates a refresh token and mints a new access token.
// The refresh token itself is not rotated.
func (s *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	claims, err := utils.ParseRefreshJWT(refreshToken, s.cfg.JWTRefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.ErrRefreshTokenExpired
		}
		logger.Warn("Invalid refresh token", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
	}

	// Re-read the user so the new access token carries the current role.
	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.DeletedAt != nil {
		return "", fmt.Errorf("%w: account no longer exists", apperrors.ErrUnauthorized)
	}
	if !user.Verified {
		return "", fmt.Errorf("%w: email is not verified", apperrors.ErrUnauthorized)
	}

	accessToken, err := utils.GenerateAccessJWT(user.ID, user.Email, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

func (s *authService) generateTokenPair(user *domain.User) (*portssvc.TokenPair, error) {
	accessToken, err := utils.GenerateAccessJWT(user.ID, user.Email, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := utils.GenerateRefreshJWT(user.ID, user.Email, s.cfg.JWTRefreshSecret, s.cfg.JWTIssuer, s.cfg.RefreshTokenExpiryDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &portssvc.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
