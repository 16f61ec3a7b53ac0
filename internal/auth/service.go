package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	user "github.com/rkhatri/vastra-backend/internal/users"
	pkgauth "github.com/rkhatri/vastra-backend/pkg/auth"
	"github.com/rkhatri/vastra-backend/pkg/auth/session"
	"github.com/rkhatri/vastra-backend/pkg/config"
	"github.com/rkhatri/vastra-backend/pkg/db/models"
	"github.com/rkhatri/vastra-backend/pkg/enums"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
	"github.com/rkhatri/vastra-backend/pkg/mailer"
	"github.com/rkhatri/vastra-backend/pkg/security"
)

const invalidCredentialsMessage = "Invalid email or password"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*user.UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	Logout(ctx context.Context, accessID string) error
	Session(ctx context.Context, userID uuid.UUID) (*SessionResponse, error)
}

type userRepository interface {
	Create(ctx context.Context, row *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByVerifyTokenHash(ctx context.Context, digest string) (*models.User, error)
	FindByResetTokenHash(ctx context.Context, digest string) (*models.User, error)
	Update(ctx context.Context, row *models.User) (*models.User, error)
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Revoke(ctx context.Context, accessID string) error
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	SessionManager sessionManager
	Mailer         mailer.Mailer
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

type service struct {
	users       userRepository
	session     sessionManager
	mail        mailer.Mailer
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	if params.Mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	return &service{
		users:       params.UserRepo,
		session:     params.SessionManager,
		mail:        params.Mailer,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
		now:         time.Now,
	}, nil
}

// Signup creates a customer account and emails a verification link. The raw
// token never touches the database; only its digest is stored.
func (s *service) Signup(ctx context.Context, req SignupRequest) (*user.UserDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Name is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Email is required")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check email")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, capitalize(err.Error()))
	}

	token, digest, err := security.NewOneTimeToken(s.passwordCfg.VerifyTokenBytes)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate verify token")
	}
	expiresAt := s.now().Add(s.verifyTokenTTL())

	row := &models.User{
		Name:                 name,
		Email:                email,
		PasswordHash:         passwordHash,
		Role:                 enums.UserRoleCustomer,
		VerifyTokenHash:      &digest,
		VerifyTokenExpiresAt: &expiresAt,
	}
	created, err := s.users.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: create user")
	}

	if err := s.mail.SendVerificationEmail(ctx, created.Email, token); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mail: send verification")
	}
	return user.FromModel(created), nil
}

// Login verifies credentials, mints a JWT whose jti doubles as the Redis
// session key, and hands back both tokens.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	row, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load user")
	}
	if !security.VerifyPassword(req.Password, row.PasswordHash) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	if !row.EmailVerified {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "Email not verified")
	}

	accessID := session.NewAccessID()
	accessToken, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: row.ID,
		Email:  row.Email,
		Role:   row.Role,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	refreshToken, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session: generate")
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.FromModel(row),
	}, nil
}

// VerifyEmail redeems the one-time verification token.
func (s *service) VerifyEmail(ctx context.Context, token string) error {
	row, err := s.users.FindByVerifyTokenHash(ctx, security.HashToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "Invalid or expired verification token")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load user by verify token")
	}
	if row.VerifyTokenExpiresAt == nil || row.VerifyTokenExpiresAt.Before(s.now()) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid or expired verification token")
	}

	row.EmailVerified = true
	row.VerifyTokenHash = nil
	row.VerifyTokenExpiresAt = nil
	if _, err := s.users.Update(ctx, row); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: mark email verified")
	}
	return nil
}

// ForgotPassword issues a reset token when the account exists. Unknown emails
// return success so the endpoint cannot be used to probe accounts.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	row, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load user")
	}

	token, digest, err := security.NewOneTimeToken(s.passwordCfg.VerifyTokenBytes)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate reset token")
	}
	expiresAt := s.now().Add(s.resetTokenTTL())
	row.ResetTokenHash = &digest
	row.ResetTokenExpiresAt = &expiresAt
	if _, err := s.users.Update(ctx, row); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: store reset token")
	}

	if err := s.mail.SendPasswordResetEmail(ctx, row.Email, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mail: send reset")
	}
	return nil
}

// ResetPassword redeems a reset token for a new password and clears the token
// so it cannot be replayed.
func (s *service) ResetPassword(ctx context.Context, token, password string) error {
	row, err := s.users.FindByResetTokenHash(ctx, security.HashToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "Invalid or expired reset token")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load user by reset token")
	}
	if row.ResetTokenExpiresAt == nil || row.ResetTokenExpiresAt.Before(s.now()) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid or expired reset token")
	}

	passwordHash, err := security.HashPassword(password, s.passwordCfg)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, capitalize(err.Error()))
	}

	row.PasswordHash = passwordHash
	row.ResetTokenHash = nil
	row.ResetTokenExpiresAt = nil
	if _, err := s.users.Update(ctx, row); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update password")
	}
	return nil
}

// Logout revokes the Redis session bound to the token's jti. The JWT itself
// stays valid until expiry, but auth middleware rejects it once the session
// is gone.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if err := s.session.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session: revoke")
	}
	return nil
}

// Session returns the profile behind an authenticated request.
func (s *service) Session(ctx context.Context, userID uuid.UUID) (*SessionResponse, error) {
	row, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load user")
	}
	return &SessionResponse{User: user.FromModel(row)}, nil
}

func (s *service) verifyTokenTTL() time.Duration {
	if s.passwordCfg.VerifyTokenTTL <= 0 {
		return 24 * time.Hour
	}
	return s.passwordCfg.VerifyTokenTTL
}

func (s *service) resetTokenTTL() time.Duration {
	if s.passwordCfg.ResetTokenTTL <= 0 {
		return time.Hour
	}
	return s.passwordCfg.ResetTokenTTL
}

func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
