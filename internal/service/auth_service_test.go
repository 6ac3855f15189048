package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/config"
	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/serverutils"
	"github.com/goodwellmafunga/skills-assessment/internal/testutil"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testAuthConfig = config.AuthConfig{
	JwtSecret:      "test-secret",
	AccessTokenTTL: time.Hour,
	TempTokenTTL:   5 * time.Minute,
	TotpIssuer:     "SkillsAssessment",
}

func newAuth(t *testing.T) (IAuthService, *gorm.DB) {
	t.Helper()
	factory, db := testutil.NewFactory(t)
	return NewAuthService(factory, testAuthConfig, logger.NewNopLogger()), db
}

func signup(t *testing.T, svc IAuthService) uuid.UUID {
	t.Helper()
	res, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:    " Admin@Example.com ",
		FullName: "Ada Admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return uuid.MustParse(res.Id)
}

func TestAuthServiceSignupAndLogin(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()
	userId := signup(t, svc)

	_, err := svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.com", FullName: "Again", Password: "whatever1"})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	res, err := svc.Login(ctx, &dto.LoginRequest{Email: "ADMIN@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.False(t, res.MfaRequired)
	assert.Empty(t, res.TempToken)

	claims, err := serverutils.ParseToken(testAuthConfig.JwtSecret, res.AccessToken, serverutils.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, userId, claims.UserID)
	assert.Equal(t, "user", claims.Role)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	me, err := svc.Me(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", me.Email)
}

func TestAuthServiceInactiveUser(t *testing.T) {
	svc, db := newAuth(t)
	userId := signup(t, svc)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", userId).Update("is_active", false).Error)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Me(context.Background(), userId)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestAuthServiceTwoFactorFlow(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()
	userId := signup(t, svc)

	err := svc.EnableTwoFA(ctx, userId, &dto.TwoFAEnableRequest{Code: "123456"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	setup, err := svc.SetupTwoFA(ctx, userId)
	require.NoError(t, err)
	assert.NotEmpty(t, setup.Secret)
	assert.True(t, strings.HasPrefix(setup.OtpauthURI, "otpauth://totp/"))
	assert.Contains(t, setup.OtpauthURI, "issuer=SkillsAssessment")
	assert.True(t, strings.HasPrefix(setup.QrImageDataURL, "data:image/png;base64,"))

	again, err := svc.SetupTwoFA(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, setup.Secret, again.Secret)

	err = svc.EnableTwoFA(ctx, userId, &dto.TwoFAEnableRequest{Code: "000000x"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	code, err := totp.GenerateCode(setup.Secret, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, svc.EnableTwoFA(ctx, userId, &dto.TwoFAEnableRequest{Code: code}))

	step, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.True(t, step.MfaRequired)
	assert.Empty(t, step.AccessToken)
	require.NotEmpty(t, step.TempToken)

	_, err = svc.VerifyTwoFALogin(ctx, &dto.TwoFAVerifyLoginRequest{TempToken: step.TempToken, Code: "000000x"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	done, err := svc.VerifyTwoFALogin(ctx, &dto.TwoFAVerifyLoginRequest{TempToken: step.TempToken, Code: code})
	require.NoError(t, err)
	_, err = serverutils.ParseToken(testAuthConfig.JwtSecret, done.AccessToken, serverutils.TokenTypeAccess)
	assert.NoError(t, err)

	// An access token is not accepted in place of the temp token.
	_, err = svc.VerifyTwoFALogin(ctx, &dto.TwoFAVerifyLoginRequest{TempToken: done.AccessToken, Code: code})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestAuthServiceCodeSkew(t *testing.T) {
	factory, _ := testutil.NewFactory(t)
	svc := &authService{uowFactory: factory, cfg: testAuthConfig, logger: logger.NewNopLogger(), now: time.Now}

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "x", AccountName: "y"})
	require.NoError(t, err)
	now := time.Now().UTC()

	prev, err := totp.GenerateCode(key.Secret(), now.Add(-30*time.Second))
	require.NoError(t, err)
	stale, err := totp.GenerateCode(key.Secret(), now.Add(-5*time.Minute))
	require.NoError(t, err)

	svc.now = func() time.Time { return now }
	assert.True(t, svc.validCode(prev, key.Secret()))
	assert.False(t, svc.validCode(stale, key.Secret()))
}
