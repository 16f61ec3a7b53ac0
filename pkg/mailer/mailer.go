package mailer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rkhatri/vastra-backend/pkg/config"
	"github.com/rkhatri/vastra-backend/pkg/logger"
)

// Mailer delivers transactional account emails. Production wiring can swap
// in an SMTP or provider-backed implementation.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, token string) error
	SendPasswordResetEmail(ctx context.Context, to, token string) error
}

// LogMailer writes the mail content to the application log. Used for dev
// and test environments where no delivery provider is configured.
type LogMailer struct {
	cfg  config.MailConfig
	logg *logger.Logger
}

// NewLogMailer builds the logging mailer.
func NewLogMailer(cfg config.MailConfig, logg *logger.Logger) *LogMailer {
	return &LogMailer{cfg: cfg, logg: logg}
}

func (m *LogMailer) SendVerificationEmail(ctx context.Context, to, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.cfg.BaseURL, url.QueryEscape(token))
	ctx = m.logg.WithFields(ctx, map[string]any{
		"to":   to,
		"from": m.cfg.FromAddress,
		"link": link,
	})
	m.logg.Info(ctx, "verification email queued")
	return nil
}

func (m *LogMailer) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.BaseURL, url.QueryEscape(token))
	ctx = m.logg.WithFields(ctx, map[string]any{
		"to":   to,
		"from": m.cfg.FromAddress,
		"link": link,
	})
	m.logg.Info(ctx, "password reset email queued")
	return nil
}
