package mail

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/medcore/auth-service/internal/config"
)

// Mailer delivers transactional mail over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	cfg    config.MailConfig
	logger *zap.Logger
}

// NewMailer builds an SMTP-backed mailer.
func NewMailer(cfg config.MailConfig, logger *zap.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cfg:    cfg,
		logger: logger,
	}
}

// SendVerificationCode delivers a one-time code to the recipient. Delivery is
// bounded by the context: a send still in flight when ctx expires is reported
// as a failure.
func (m *Mailer) SendVerificationCode(ctx context.Context, to, code string) error {
	verifyURL := m.verifyURL(to, code)

	html, err := renderVerificationEmail(verificationEmailData{
		Brand:     m.cfg.BrandName,
		Code:      code,
		VerifyURL: verifyURL,
	})
	if err != nil {
		return fmt.Errorf("render verification email: %w", err)
	}

	text := fmt.Sprintf("Your verification code is: %s", code)
	if verifyURL != "" {
		text += "\n\nVerify now: " + verifyURL
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Verify your email - %s", m.cfg.BrandName))
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			m.logger.Error("verification email send failed", zap.String("to", to), zap.Error(err))
			return err
		}
		m.logger.Info("verification email sent", zap.String("to", to))
		return nil
	case <-ctx.Done():
		m.logger.Error("verification email send timed out", zap.String("to", to))
		return ctx.Err()
	}
}

func (m *Mailer) verifyURL(email, code string) string {
	if m.cfg.VerifyBaseURL == "" {
		return ""
	}
	q := url.Values{}
	q.Set("email", email)
	q.Set("code", code)
	return m.cfg.VerifyBaseURL + "?" + q.Encode()
}
