package mailer

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/util"
	"go.uber.org/zap"
)

const (
	FROM_NAME = "DIPII"
)

type MailTemplateFile string

const (
	WELCOME_TEMPLATE MailTemplateFile = "templates/welcome.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile MailTemplateFile, toName, toEmail string, data any) (int, error)
}

// WelcomeData is injected in templates/welcome.tmpl
type WelcomeData struct {
	Name     string
	Username string
	LoginURL string
}

// NewMailer picks the delivery backend from config. Without credentials mail
// is only logged.
func NewMailer(cfg config.MailConfig, isProduction bool, logger *zap.SugaredLogger) Client {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("test")
	}

	switch cfg.DRIVER {
	case config.MailDriverSMTP:
		if cfg.SMTP.HOST != "" {
			return NewSMTPMailer(cfg.SMTP, cfg.FROM_EMAIL, logger)
		}
	default:
		if cfg.SEND_GRID.API_KEY != "" {
			return NewSendgrid(cfg.SEND_GRID.API_KEY, cfg.FROM_EMAIL, isProduction, logger)
		}
	}

	logger.Warn("Mail credentials are not configured, emails will only be logged")
	return &LogMailer{logger: logger}
}

// renderTemplate returns the "subject" and "body" blocks of a template.
func renderTemplate(templateFile MailTemplateFile, data any) (string, string, error) {
	tmpl, err := template.ParseFS(FS, string(templateFile))
	if err != nil {
		return "", "", err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return "", "", err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return "", "", err
	}

	return subject.String(), body.String(), nil
}
