package mail

import (
	"context"
	"fmt"
	"net/smtp"

	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/platform/config"
)

// SMTPSender sends transactional HTML email over plain-auth SMTP.
type SMTPSender struct {
	host     string
	port     string
	user     string
	password string
	from     string

	// frontendBaseURL anchors the links embedded in the emails.
	frontendBaseURL string
}

// NewSMTPSender creates an SMTPSender from configuration.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:            cfg.MailHost,
		port:            cfg.MailPort,
		user:            cfg.MailUser,
		password:        cfg.MailPassword,
		from:            cfg.MailFrom,
		frontendBaseURL: cfg.FrontendBaseURL,
	}
}

var _ portssvc.MailSenderSvc = (*SMTPSender)(nil)

// SendVerificationEmail emails the account activation link.
func (s *SMTPSender) SendVerificationEmail(ctx context.Context, to, fullName, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.frontendBaseURL, token)
	body := fmt.Sprintf(`
        <h2>Welcome to Wishzy, %s!</h2>
        <p>Please confirm your email address to activate your account.</p>
        <p><a href="%s">Verify my email</a></p>
        <p>This link expires in 24 hours. If you did not create an account, you can ignore this email.</p>
    `, fullName, link)
	return s.send(to, "Verify your Wishzy account", body)
}

// SendPasswordResetEmail emails the password reset link.
func (s *SMTPSender) SendPasswordResetEmail(ctx context.Context, to, fullName, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontendBaseURL, token)
	body := fmt.Sprintf(`
        <h2>Hello %s,</h2>
        <p>We received a request to reset your password.</p>
        <p><a href="%s">Reset my password</a></p>
        <p>This link expires in 24 hours. If you did not request a reset, you can ignore this email.</p>
    `, fullName, link)
	return s.send(to, "Reset your Wishzy password", body)
}

func (s *SMTPSender) send(to, subject, body string) error {
	msg := ""
	msg += "MIME-Version: 1.0\r\n"
	msg += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	msg += fmt.Sprintf("From: %s\r\n", s.from)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "\r\n" + body

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
