package mailer

import (
	"fmt"

	"github.com/dipii/backoffice/internal/util"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type SendGridMailer struct {
	fromEmail string
	client    *sendgrid.Client
	isSandBox bool
	logger    *zap.SugaredLogger
}

func NewSendgrid(apiKey string, fromEmail string, isProduction bool, logger *zap.SugaredLogger) *SendGridMailer {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("test")
	}

	client := sendgrid.NewSendClient(apiKey)

	return &SendGridMailer{
		fromEmail: fromEmail,
		client:    client,
		// Sandbox mode is only used to validate your request. The email will never be delivered while this feature is enabled!
		isSandBox: !isProduction,
		logger:    logger,
	}
}

// Send makes a single attempt, failures are reported to the caller.
//
//	Example usage:
//	status, err := Send(mailer.WELCOME_TEMPLATE, user.Name, user.Email, mailer.WelcomeData{...})
func (m SendGridMailer) Send(templateFile MailTemplateFile, toName, toEmail string, data any) (int, error) {
	subject, body, err := renderTemplate(templateFile, data)
	if err != nil {
		m.logger.Errorf("Error occurred during mail template rendering, error: %v", err)
		return -1, err
	}

	from := mail.NewEmail(FROM_NAME, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", body)

	message.SetMailSettings(&mail.MailSettings{
		SandboxMode: &mail.Setting{
			Enable: &m.isSandBox,
		},
	})

	response, err := m.client.Send(message)
	if err != nil {
		m.logger.Errorf("Failed to send email to %s, error: %v", toEmail, err)
		return -1, fmt.Errorf("failed to send email: %w", err)
	}

	return response.StatusCode, nil
}
