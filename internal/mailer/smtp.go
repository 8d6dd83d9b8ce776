package mailer

import (
	"fmt"
	"net/http"

	"github.com/dipii/backoffice/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	fromEmail string
	fromName  string
	dialer    *gomail.Dialer
	logger    *zap.SugaredLogger
}

func NewSMTPMailer(cfg config.SMTPConfig, fromEmail string, logger *zap.SugaredLogger) *SMTPMailer {
	if fromEmail == "" {
		fromEmail = cfg.USERNAME
	}

	return &SMTPMailer{
		fromEmail: fromEmail,
		fromName:  FROM_NAME,
		dialer:    gomail.NewDialer(cfg.HOST, cfg.PORT, cfg.USERNAME, cfg.PASSWORD),
		logger:    logger,
	}
}

func (sm *SMTPMailer) message(templateFile MailTemplateFile, toName, toEmail string, data any) (*gomail.Message, error) {
	subject, body, err := renderTemplate(templateFile, data)
	if err != nil {
		return nil, err
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", sm.fromEmail, sm.fromName)
	message.SetAddressHeader("To", toEmail, toName)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	return message, nil
}

func (sm *SMTPMailer) Send(templateFile MailTemplateFile, toName, toEmail string, data any) (int, error) {
	message, err := sm.message(templateFile, toName, toEmail, data)
	if err != nil {
		sm.logger.Errorw("failed to render email template", "error", err, "templateFile", templateFile)
		return http.StatusInternalServerError, err
	}

	if err := sm.dialer.DialAndSend(message); err != nil {
		sm.logger.Errorw("failed to send email", "error", err, "toEmail", toEmail, "templateFile", templateFile)
		return http.StatusInternalServerError, fmt.Errorf("failed to send email: %w", err)
	}

	sm.logger.Infow("email sent successfully", "toEmail", toEmail, "templateFile", templateFile)

	return http.StatusOK, nil
}
