package service

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/config"
	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/serverutils"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/specification"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const qrImageSize = 240

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginStepResponse, error)
	VerifyTwoFALogin(ctx context.Context, req *dto.TwoFAVerifyLoginRequest) (*dto.LoginStepResponse, error)
	SetupTwoFA(ctx context.Context, userId uuid.UUID) (*dto.TwoFASetupResponse, error)
	EnableTwoFA(ctx context.Context, userId uuid.UUID, req *dto.TwoFAEnableRequest) error
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        config.AuthConfig
	logger     logger.ILogger
	now        func() time.Time
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, cfg config.AuthConfig, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		cfg:        cfg,
		logger:     log,
		now:        time.Now,
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.Internal("Failed to create user", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already exists")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		Role:         entity.UserRoleUser,
		IsActive:     true,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Email already exists")
		}
		return nil, apperror.Internal("Failed to create user", err)
	}

	s.logger.Info("AUTH", "User registered", map[string]interface{}{"user_id": user.Id})
	return toUserResponse(user), nil
}

// Login checks the password. Users with TOTP enabled get a short lived temp
// token that only /2fa/verify-login accepts.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginStepResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByEmail{Email: req.Email},
		specification.ActiveUsers{},
	)
	if err != nil {
		return nil, apperror.Internal("Failed to login", err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn("AUTH", "Invalid credentials", map[string]interface{}{"email": req.Email})
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	if user.TotpEnabled {
		temp, err := s.issue(user, serverutils.TokenTypeTemp, s.cfg.TempTokenTTL)
		if err != nil {
			return nil, err
		}
		return &dto.LoginStepResponse{MfaRequired: true, TempToken: temp}, nil
	}

	access, err := s.issue(user, serverutils.TokenTypeAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginStepResponse{AccessToken: access, TokenType: "bearer"}, nil
}

func (s *authService) VerifyTwoFALogin(ctx context.Context, req *dto.TwoFAVerifyLoginRequest) (*dto.LoginStepResponse, error) {
	claims, err := serverutils.ParseToken(s.cfg.JwtSecret, req.TempToken, serverutils.TokenTypeTemp)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid temp token")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByID{ID: claims.UserID},
		specification.ActiveUsers{},
	)
	if err != nil {
		return nil, apperror.Internal("Failed to verify code", err)
	}
	if user == nil || !user.TotpEnabled || user.TotpSecret == nil {
		return nil, apperror.Unauthorized("2FA not configured")
	}

	if !s.validCode(req.Code, *user.TotpSecret) {
		s.logger.Warn("AUTH", "Invalid TOTP code at login", map[string]interface{}{"user_id": user.Id})
		return nil, apperror.Unauthorized("Invalid TOTP code")
	}

	access, err := s.issue(user, serverutils.TokenTypeAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginStepResponse{AccessToken: access, TokenType: "bearer"}, nil
}

// SetupTwoFA creates the TOTP secret on first call and returns the same one
// until it is enabled.
func (s *authService) SetupTwoFA(ctx context.Context, userId uuid.UUID) (*dto.TwoFASetupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.activeUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	opts := totp.GenerateOpts{
		Issuer:      s.cfg.TotpIssuer,
		AccountName: user.Email,
	}
	if user.TotpSecret != nil {
		raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(*user.TotpSecret)
		if err != nil {
			return nil, apperror.Internal("Stored TOTP secret is corrupt", err)
		}
		opts.Secret = raw
	}

	key, err := totp.Generate(opts)
	if err != nil {
		return nil, apperror.Internal("Failed to generate TOTP secret", err)
	}

	if user.TotpSecret == nil {
		secret := key.Secret()
		user.TotpSecret = &secret
		user.TotpEnabled = false
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, apperror.Internal("Failed to store TOTP secret", err)
		}
	}

	qr, err := qrDataURL(key)
	if err != nil {
		return nil, apperror.Internal("Failed to render QR code", err)
	}

	return &dto.TwoFASetupResponse{
		Secret:         key.Secret(),
		OtpauthURI:     key.URL(),
		QrImageDataURL: qr,
	}, nil
}

func (s *authService) EnableTwoFA(ctx context.Context, userId uuid.UUID, req *dto.TwoFAEnableRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.activeUser(ctx, uow, userId)
	if err != nil {
		return err
	}
	if user.TotpSecret == nil {
		return apperror.Validation("2FA not initialized")
	}
	if !s.validCode(req.Code, *user.TotpSecret) {
		return apperror.Validation("Invalid TOTP code")
	}

	user.TotpEnabled = true
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return apperror.Internal("Failed to enable 2FA", err)
	}

	s.logger.Info("AUTH", "2FA enabled", map[string]interface{}{"user_id": user.Id})
	return nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.activeUser(ctx, s.uowFactory.NewUnitOfWork(ctx), userId)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *authService) activeUser(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}, specification.ActiveUsers{})
	if err != nil {
		return nil, apperror.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("User not found or inactive")
	}
	return user, nil
}

func (s *authService) issue(user *entity.User, tokenType string, ttl time.Duration) (string, error) {
	token, err := serverutils.IssueToken(s.cfg.JwtSecret, serverutils.Claims{
		UserID: user.Id,
		Role:   string(user.Role),
		Type:   tokenType,
	}, ttl)
	if err != nil {
		return "", apperror.Internal("Failed to sign token", err)
	}
	return token, nil
}

// validCode accepts the current 30s step and one step either side.
func (s *authService) validCode(code, secret string) bool {
	ok, err := totp.ValidateCustom(strings.TrimSpace(code), secret, s.now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

func qrDataURL(key *otp.Key) (string, error) {
	img, err := key.Image(qrImageSize, qrImageSize)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:          u.Id.String(),
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        string(u.Role),
		TotpEnabled: u.TotpEnabled,
	}
}
