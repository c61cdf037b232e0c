package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	"github.com/wishzy/wishzy-backend/internal/core/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/platform/config"
	"github.com/wishzy/wishzy-backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	FindUserByIDFn                func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn             func(ctx context.Context, email string) (*domain.User, error)
	FindUserByVerificationTokenFn func(ctx context.Context, token string) (*domain.User, error)
	FindUserByResetTokenFn        func(ctx context.Context, token string) (*domain.User, error)
	FindUsersFn                   func(ctx context.Context, limit, offset int) ([]domain.User, int, error)
	SaveUserFn                    func(ctx context.Context, user domain.User) error
	UpdateUserFn                  func(ctx context.Context, user domain.User) error
	MarkUserDeletedFn             func(ctx context.Context, userID string, deletedAt time.Time) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindUserByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	if m.FindUserByVerificationTokenFn != nil {
		return m.FindUserByVerificationTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *MockUserRepository) FindUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	if m.FindUserByResetTokenFn != nil {
		return m.FindUserByResetTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	if m.FindUsersFn != nil {
		return m.FindUsersFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	if m.MarkUserDeletedFn != nil {
		return m.MarkUserDeletedFn(ctx, userID, deletedAt)
	}
	return nil
}

// --- Mock MailSender ---
type MockMailSender struct {
	SendVerificationEmailFn  func(ctx context.Context, to, fullName, token string) error
	SendPasswordResetEmailFn func(ctx context.Context, to, fullName, token string) error

	verificationCalls int
	resetCalls        int
}

func (m *MockMailSender) SendVerificationEmail(ctx context.Context, to, fullName, token string) error {
	m.verificationCalls++
	if m.SendVerificationEmailFn != nil {
		return m.SendVerificationEmailFn(ctx, to, fullName, token)
	}
	return nil
}

func (m *MockMailSender) SendPasswordResetEmail(ctx context.Context, to, fullName, token string) error {
	m.resetCalls++
	if m.SendPasswordResetEmailFn != nil {
		return m.SendPasswordResetEmailFn(ctx, to, fullName, token)
	}
	return nil
}

// --- Mock GoogleTokenVerifier ---
type MockGoogleVerifier struct {
	VerifyIDTokenFn func(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)
}

func (m *MockGoogleVerifier) VerifyIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
	if m.VerifyIDTokenFn != nil {
		return m.VerifyIDTokenFn(ctx, idToken)
	}
	return nil, errors.New("not configured")
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "access-secret",
		JWTRefreshSecret:           "refresh-secret",
		JWTIssuer:                  "wishzy-test",
		JWTExpiryDuration:          15 * time.Minute,
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc := services.NewAuthService(testConfig(), &MockUserRepository{}, &MockMailSender{}, &MockGoogleVerifier{})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:           "a@b.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
		FullName:        "A B",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRegister_DuplicateUnverified(t *testing.T) {
	existing := &domain.User{ID: uuid.NewString(), Email: "a@b.com", Verified: false}
	repo := &MockUserRepository{
		FindUserByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return existing, nil
		},
	}
	svc := services.NewAuthService(testConfig(), repo, &MockMailSender{}, &MockGoogleVerifier{})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:           "a@b.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FullName:        "A B",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "not verified")
}

func TestRegister_Success(t *testing.T) {
	var saved *domain.User
	repo := &MockUserRepository{
		SaveUserFn: func(ctx context.Context, user domain.User) error {
			saved = &user
			return nil
		},
	}
	mailSender := &MockMailSender{}
	svc := services.NewAuthService(testConfig(), repo, mailSender, &MockGoogleVerifier{})

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:           "a@b.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FullName:        "A B",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.False(t, user.Verified)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, domain.LoginTypeLocal, user.LoginType)
	require.NotNil(t, saved.VerificationToken)
	assert.Len(t, *saved.VerificationToken, 64) // 32 random bytes hex encoded
	require.NotNil(t, saved.VerificationTokenExp)
	assert.True(t, saved.VerificationTokenExp.After(time.Now().Add(23*time.Hour)))
	assert.Equal(t, 1, mailSender.verificationCalls)
	assert.True(t, utils.CheckPasswordHash("secret1", saved.PasswordHash))
}

func TestRegister_MailFailureIsNotFatal(t *testing.T) {
	repo := &MockUserRepository{}
	mailSender := &MockMailSender{
		SendVerificationEmailFn: func(ctx context.Context, to, fullName, token string) error {
			return errors.New("smtp down")
		},
	}
	svc := services.NewAuthService(testConfig(), repo, mailSender, &MockGoogleVerifier{})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:           "a@b.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FullName:        "A B",
	})
	assert.NoError(t, err)
}

func TestVerifyEmail(t *testing.T) {
	token := "sometoken"
	futureExp := time.Now().Add(time.Hour)
	pastExp := time.Now().Add(-time.Hour)

	t.Run("unknown token", func(t *testing.T) {
		svc := services.NewAuthService(testConfig(), &MockUserRepository{}, &MockMailSender{}, &MockGoogleVerifier{})
		err := svc.VerifyEmail(context.Background(), token)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("expired token", func(t *testing.T) {
		repo := &MockUserRepository{
			FindUserByVerificationTokenFn: func(ctx context.Context, tok string) (*domain.User, error) {
				return &domain.User{ID: "u1", VerificationToken: &token, VerificationTokenExp: &pastExp}, nil
			},
		}
		svc := services.NewAuthService(testConfig(), repo, &MockMailSender{}, &MockGoogleVerifier{})
		err := svc.VerifyEmail(context.Background(), token)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("success clears token", func(t *testing.T) {
		var updated *domain.User
		repo := &MockUserRepository{
			FindUserByVerificationTokenFn: func(ctx context.Context, tok string) (*domain.User, error) {
				return &domain.User{ID: "u1", VerificationToken: &token, VerificationTokenExp: &futureExp}, nil
			},
			UpdateUserFn: func(ctx context.Context, user domain.User) error {
				updated = &user
				return nil
			},
		}
		svc := services.NewAuthService(testConfig(), repo, &MockMailSender{}, &MockGoogleVerifier{})
		err := svc.VerifyEmail(context.Background(), token)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.Verified)
		assert.Nil(t, updated.VerificationToken)
		assert.Nil(t, updated.VerificationTokenExp)
	})
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	verifiedUser := &domain.User{
		ID:           uuid.NewString(),
		Email:        "a@b.com",
		PasswordHash: hash,
		Verified:     true,
		Role:         domain.RoleUser,
		LoginType:    domain.LoginTypeLocal,
	}

	repoWith := func(user *domain.User) *MockUserRepository {
		return &MockUserRepository{
			FindUserByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return user, nil
			},
		}
	}

	t.Run("unknown email", func(t *testing.T) {
		svc := services.NewAuthService(testConfig(), repoWith(nil), &MockMailSender{}, &MockGoogleVerifier{})
		_, _, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "x"})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := services.NewAuthService(testConfig(), repoWith(verifiedUser), &MockMailSender{}, &MockGoogleVerifier{})
		_, _, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("google-only account", func(t *testing.T) {
		googleUser := &domain.User{ID: "g1", Email: "a@b.com", Verified: true, LoginType: domain.LoginTypeGoogle}
		svc := services.NewAuthService(testConfig(), repoWith(googleUser), &MockMailSender{}, &MockGoogleVerifier{})
		_, _, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "x"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("unverified account fails regardless of password", func(t *testing.T) {
		unverified := *verifiedUser
		unverified.Verified = false
		svc := services.NewAuthService(testConfig(), repoWith(&unverified), &MockMailSender{}, &MockGoogleVerifier{})

		_, _, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "correct-password"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, _, err = svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, err.Error(), "not verified")
	})

	t.Run("success", func(t *testing.T) {
		cfg := testConfig()
		svc := services.NewAuthService(cfg, repoWith(verifiedUser), &MockMailSender{}, &MockGoogleVerifier{})
		user, pair, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "correct-password"})
		require.NoError(t, err)
		assert.Equal(t, verifiedUser.ID, user.ID)
		require.NotNil(t, pair)

		claims, err := utils.ParseAccessJWT(pair.AccessToken, cfg.JWTSecret)
		require.NoError(t, err)
		assert.Equal(t, verifiedUser.ID, claims.Subject)
		assert.Equal(t, string(domain.RoleUser), claims.Role)

		_, err = utils.ParseRefreshJWT(pair.RefreshToken, cfg.JWTRefreshSecret)
		assert.NoError(t, err)
	})
}

func TestGoogleLogin_ProvisionsAccount(t *testing.T) {
	var saved *domain.User
	repo := &MockUserRepository{
		SaveUserFn: func(ctx context.Context, user domain.User) error {
			saved = &user
			return nil
		},
	}
	verifier := &MockGoogleVerifier{
		VerifyIDTokenFn: func(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
			return &domain.GoogleUserInfo{Email: "g@b.com", Name: "G User", Picture: "https://pic"}, nil
		},
	}
	svc := services.NewAuthService(testConfig(), repo, &MockMailSender{}, verifier)

	user, pair, err := svc.GoogleLogin(context.Background(), "id-token")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, user.Verified)
	assert.Equal(t, domain.LoginTypeGoogle, user.LoginType)
	assert.Empty(t, user.PasswordHash)
	require.NotNil(t, user.Avatar)
	assert.Equal(t, "https://pic", *user.Avatar)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestGoogleLogin_SwitchesExistingAccountToGoogle(t *testing.T) {
	hash, err := utils.HashPassword("local-password")
	require.NoError(t, err)

	localUser := &domain.User{
		ID:           uuid.NewString(),
		Email:        "g@b.com",
		FullName:     "G User",
		PasswordHash: hash,
		Verified:     true,
		Role:         domain.RoleUser,
		LoginType:    domain.LoginTypeLocal,
	}

	var updated *domain.User
	repo := &MockUserRepository{
		FindUserByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return localUser, nil
		},
		UpdateUserFn: func(ctx context.Context, user domain.User) error {
			updated = &user
			return nil
		},
	}
	verifier := &MockGoogleVerifier{
		VerifyIDTokenFn: func(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
			return &domain.GoogleUserInfo{Email: "g@b.com", Name: "G User"}, nil
		},
	}
	svc := services.NewAuthService(testConfig(), repo, &MockMailSender{}, verifier)

	user, _, err := svc.GoogleLogin(context.Background(), "id-token")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.LoginTypeGoogle, user.LoginType)
	assert.Equal(t, domain.LoginTypeGoogle, updated.LoginType)
	// The stored password must survive the login-origin switch.
	assert.Equal(t, hash, updated.PasswordHash)
}

func TestGoogleLogin_NamelessPayloadFallsBackToEmailLocalPart(t *testing.T) {
	var saved *domain.User
	repo := &MockUserRepository{
		SaveUserFn: func(ctx context.Context, user domain.User) error {
			saved = &user
			return nil
		},
	}
	verifier := &MockGoogleVerifier{
		VerifyIDTokenFn: func(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
			return &domain.GoogleUserInfo{Email: "jane.doe@b.com"}, nil
		},
	}
	svc := services.NewAuthService(testConfig(), repo, &MockMailSender{}, verifier)

	user, _, err := svc.GoogleLogin(context.Background(), "id-token")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "jane.doe", user.FullName)
	assert.Equal(t, "jane.doe", saved.FullName)
}

func TestGoogleLogin_BadCredential(t *testing.T) {
	verifier := &MockGoogleVerifier{
		VerifyIDTokenFn: func(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
			return nil, errors.New("invalid token")
		},
	}
	svc := services.NewAuthService(testConfig(), &MockUserRepository{}, &MockMailSender{}, verifier)

	_, _, err := svc.GoogleLogin(context.Background(), "bad")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	mailSender := &MockMailSender{}
	svc := services.NewAuthService(testConfig(), &MockUserRepository{}, mailSender, &MockGoogleVerifier{})

	err := svc.ForgotPassword(context.Background(), "nobody@b.com")
	assert.NoError(t, err)
	assert.Zero(t, mailSender.resetCalls)
}

func TestResetPassword(t *testing.T) {
	token := "resettoken"
	futureExp := time.Now().Add(time.Hour)

	var updated *domain.User
	repo := &MockUserRepository{
		FindUserByResetTokenFn: func(ctx context.Context, tok string) (*domain.User, error) {
			return &domain.User{ID: "u1", ResetPasswordToken: &token, ResetPasswordExp: &futureExp}, nil
		},
		UpdateUserFn: func(ctx context.Context, user domain.User) error {
			updated = &user
			return nil
		},
	}
	svc := services.NewAuthService(testConfig(), repo, &MockMailSender{}, &MockGoogleVerifier{})

	err := svc.ResetPassword(context.Background(), token, "new-password")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.ResetPasswordToken)
	assert.Nil(t, updated.ResetPasswordExp)
	assert.True(t, utils.CheckPasswordHash("new-password", updated.PasswordHash))
}

func TestRefreshAccessToken(t *testing.T) {
	cfg := testConfig()
	user := &domain.User{ID: uuid.NewString(), Email: "a@b.com", Role: domain.RoleInstructor, Verified: true}
	repo := &MockUserRepository{
		FindUserByIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID == user.ID {
				return user, nil
			}
			return nil, nil
		},
	}
	svc := services.NewAuthService(cfg, repo, &MockMailSender{}, &MockGoogleVerifier{})

	t.Run("valid token carries current role", func(t *testing.T) {
		refreshToken, err := utils.GenerateRefreshJWT(user.ID, user.Email, cfg.JWTRefreshSecret, cfg.JWTIssuer, time.Hour)
		require.NoError(t, err)

		accessToken, err := svc.RefreshAccessToken(context.Background(), refreshToken)
		require.NoError(t, err)

		claims, err := utils.ParseAccessJWT(accessToken, cfg.JWTSecret)
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleInstructor), claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		refreshToken, err := utils.GenerateRefreshJWT(user.ID, user.Email, cfg.JWTRefreshSecret, cfg.JWTIssuer, -time.Minute)
		require.NoError(t, err)

		_, err = svc.RefreshAccessToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)
	})

	t.Run("unverified account", func(t *testing.T) {
		unverified := &domain.User{ID: uuid.NewString(), Email: "u@b.com", Role: domain.RoleUser, Verified: false}
		unverifiedRepo := &MockUserRepository{
			FindUserByIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
				return unverified, nil
			},
		}
		unverifiedSvc := services.NewAuthService(cfg, unverifiedRepo, &MockMailSender{}, &MockGoogleVerifier{})

		refreshToken, err := utils.GenerateRefreshJWT(unverified.ID, unverified.Email, cfg.JWTRefreshSecret, cfg.JWTIssuer, time.Hour)
		require.NoError(t, err)

		_, err = unverifiedSvc.RefreshAccessToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.RefreshAccessToken(context.Background(), "garbage")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
