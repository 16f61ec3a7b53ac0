package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/config"
	"github.com/rkhatri/vastra-backend/pkg/db/models"
	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

type stubUserRepo struct {
	rows map[uuid.UUID]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{rows: map[uuid.UUID]*models.User{}}
}

func (s *stubUserRepo) Create(_ context.Context, row *models.User) (*models.User, error) {
	row.ID = uuid.New()
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	clone := *row
	s.rows[row.ID] = &clone
	return row, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, row := range s.rows {
		if row.Email == email {
			clone := *row
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *row
	return &clone, nil
}

func (s *stubUserRepo) FindByVerifyTokenHash(_ context.Context, digest string) (*models.User, error) {
	for _, row := range s.rows {
		if row.VerifyTokenHash != nil && *row.VerifyTokenHash == digest {
			clone := *row
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByResetTokenHash(_ context.Context, digest string) (*models.User, error) {
	for _, row := range s.rows {
		if row.ResetTokenHash != nil && *row.ResetTokenHash == digest {
			clone := *row
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Update(_ context.Context, row *models.User) (*models.User, error) {
	if _, ok := s.rows[row.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *row
	s.rows[row.ID] = &clone
	return row, nil
}

type stubSessions struct {
	active  map[string]bool
	revoked []string
}

func newStubSessions() *stubSessions {
	return &stubSessions{active: map[string]bool{}}
}

func (s *stubSessions) Generate(_ context.Context, accessID string) (string, error) {
	s.active[accessID] = true
	return "refresh-" + accessID, nil
}

func (s *stubSessions) Revoke(_ context.Context, accessID string) error {
	delete(s.active, accessID)
	s.revoked = append(s.revoked, accessID)
	return nil
}

type stubMailer struct {
	verifyTokens map[string]string
	resetTokens  map[string]string
}

func newStubMailer() *stubMailer {
	return &stubMailer{verifyTokens: map[string]string{}, resetTokens: map[string]string{}}
}

func (m *stubMailer) SendVerificationEmail(_ context.Context, to, token string) error {
	m.verifyTokens[to] = token
	return nil
}

func (m *stubMailer) SendPasswordResetEmail(_ context.Context, to, token string) error {
	m.resetTokens[to] = token
	return nil
}

type fixture struct {
	svc      *service
	users    *stubUserRepo
	sessions *stubSessions
	mail     *stubMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := newStubUserRepo()
	sessions := newStubSessions()
	mail := newStubMailer()
	svc, err := NewService(ServiceParams{
		UserRepo:       users,
		SessionManager: sessions,
		Mailer:         mail,
		JWTConfig: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "vastra-test",
			ExpirationMinutes: 15,
		},
		PasswordConfig: config.PasswordConfig{
			BcryptCost:       4,
			MinLength:        6,
			VerifyTokenTTL:   24 * time.Hour,
			ResetTokenTTL:    time.Hour,
			VerifyTokenBytes: 16,
		},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return &fixture{svc: svc.(*service), users: users, sessions: sessions, mail: mail}
}

func expectCode(t *testing.T, err error, code pkgerrors.Code) *pkgerrors.Error {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
	return typed
}

func TestSignupVerifyLoginFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	dto, err := f.svc.Signup(ctx, SignupRequest{Name: " Ritu ", Email: " Ritu@Example.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if dto.Email != "ritu@example.com" {
		t.Fatalf("expected normalized email, got %q", dto.Email)
	}
	if dto.Name != "Ritu" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if dto.EmailVerified {
		t.Fatal("new accounts must start unverified")
	}

	_, err = f.svc.Login(ctx, LoginRequest{Email: "ritu@example.com", Password: "secret1"})
	expectCode(t, err, pkgerrors.CodeForbidden)

	token, ok := f.mail.verifyTokens["ritu@example.com"]
	if !ok || token == "" {
		t.Fatal("expected verification email to carry a token")
	}
	if err := f.svc.VerifyEmail(ctx, token); err != nil {
		t.Fatalf("VerifyEmail: %v", err)
	}

	resp, err := f.svc.Login(ctx, LoginRequest{Email: "ritu@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login after verify: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if resp.User == nil || !resp.User.EmailVerified {
		t.Fatal("expected verified user in response")
	}
	if len(f.sessions.active) != 1 {
		t.Fatalf("expected one active session, got %d", len(f.sessions.active))
	}
}

func TestSignupRejectsDuplicateEmailAndShortPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Signup(ctx, SignupRequest{Name: "A", Email: "a@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	_, err := f.svc.Signup(ctx, SignupRequest{Name: "B", Email: "A@Example.com", Password: "secret1"})
	expectCode(t, err, pkgerrors.CodeConflict)

	_, err = f.svc.Signup(ctx, SignupRequest{Name: "C", Email: "c@example.com", Password: "tiny"})
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupVerified(t, f, "a@example.com", "secret1")

	_, err := f.svc.Login(ctx, LoginRequest{Email: "a@example.com", Password: "wrong-pass"})
	typed := expectCode(t, err, pkgerrors.CodeUnauthorized)

	_, err = f.svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	ghost := expectCode(t, err, pkgerrors.CodeUnauthorized)

	// the two failures must be indistinguishable
	if typed.Message() != ghost.Message() {
		t.Fatalf("mismatched messages: %q vs %q", typed.Message(), ghost.Message())
	}
}

func TestVerifyEmailRejectsExpiredAndBogusTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Signup(ctx, SignupRequest{Name: "A", Email: "a@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	token := f.mail.verifyTokens["a@example.com"]

	expectCode(t, f.svc.VerifyEmail(ctx, "not-a-real-token"), pkgerrors.CodeValidation)

	f.svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	expectCode(t, f.svc.VerifyEmail(ctx, token), pkgerrors.CodeValidation)
}

func TestForgotPasswordIsSilentForUnknownEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.svc.ForgotPassword(ctx, "nobody@example.com"); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if len(f.mail.resetTokens) != 0 {
		t.Fatal("no reset mail should go out for unknown accounts")
	}
}

func TestResetPasswordFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupVerified(t, f, "a@example.com", "secret1")

	if err := f.svc.ForgotPassword(ctx, "a@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	token := f.mail.resetTokens["a@example.com"]
	if token == "" {
		t.Fatal("expected reset token in mail")
	}

	if err := f.svc.ResetPassword(ctx, token, "newpass9"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	// token is single use
	expectCode(t, f.svc.ResetPassword(ctx, token, "another9"), pkgerrors.CodeValidation)

	if _, err := f.svc.Login(ctx, LoginRequest{Email: "a@example.com", Password: "secret1"}); err == nil {
		t.Fatal("old password must stop working")
	}
	if _, err := f.svc.Login(ctx, LoginRequest{Email: "a@example.com", Password: "newpass9"}); err != nil {
		t.Fatalf("new password login: %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupVerified(t, f, "a@example.com", "secret1")

	if _, err := f.svc.Login(ctx, LoginRequest{Email: "a@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	var accessID string
	for id := range f.sessions.active {
		accessID = id
	}
	if err := f.svc.Logout(ctx, accessID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if len(f.sessions.active) != 0 {
		t.Fatal("expected session revoked")
	}
}

func TestSessionIntrospection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dto := signupVerified(t, f, "a@example.com", "secret1")

	resp, err := f.svc.Session(ctx, dto.ID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if resp.User == nil || resp.User.Email != "a@example.com" {
		t.Fatalf("unexpected session payload: %+v", resp.User)
	}

	_, err = f.svc.Session(ctx, uuid.New())
	expectCode(t, err, pkgerrors.CodeUnauthorized)
}

func signupVerified(t *testing.T, f *fixture, email, password string) *models.User {
	t.Helper()
	ctx := context.Background()
	dto, err := f.svc.Signup(ctx, SignupRequest{Name: "Test", Email: email, Password: password})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := f.svc.VerifyEmail(ctx, f.mail.verifyTokens[email]); err != nil {
		t.Fatalf("VerifyEmail: %v", err)
	}
	row, err := f.users.FindByID(ctx, dto.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	return row
}
