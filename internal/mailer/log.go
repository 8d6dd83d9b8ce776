package mailer

import (
	"net/http"

	"go.uber.org/zap"
)

// LogMailer renders the mail and logs it instead of delivering it.
type LogMailer struct {
	logger *zap.SugaredLogger
}

func (lm *LogMailer) Send(templateFile MailTemplateFile, toName, toEmail string, data any) (int, error) {
	subject, _, err := renderTemplate(templateFile, data)
	if err != nil {
		return http.StatusInternalServerError, err
	}

	lm.logger.Infow("email not delivered, no mail backend configured", "toEmail", toEmail, "subject", subject)
	return http.StatusOK, nil
}
