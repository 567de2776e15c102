package server

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/feeddigital/cursos-api/internal/config"
	"github.com/feeddigital/cursos-api/internal/logger"
	"github.com/feeddigital/cursos-api/internal/mail"
	"github.com/feeddigital/cursos-api/internal/metrics"
	"github.com/feeddigital/cursos-api/internal/services"
	"github.com/feeddigital/cursos-api/internal/templates"
)

// Bootstrap wires the mail transport, the form pipeline and the router for
// an already loaded configuration. The logger must be initialized first.
func Bootstrap(cfg *config.Config) (*Server, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	sender, err := mail.NewSender(cfg.Mail, logger.Log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mail sender")
	}

	composer, err := templates.NewComposer(
		mail.Address{Name: cfg.Mail.FromName, Email: cfg.Mail.FromAddress},
		cfg.Mail.AdminEmail,
		cfg.Links,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse message templates")
	}

	recorder := metrics.NewRecorder(true)
	submissions := services.NewSubmissionService(sender, composer, recorder, logger.Log)

	logger.Info("Server initialized",
		zap.String("stage", cfg.Stage),
		zap.String("mail_provider", cfg.Mail.Provider),
		zap.String("admin_email", cfg.Mail.AdminEmail),
	)

	return New(cfg, Dependencies{Submissions: submissions, Metrics: recorder}), nil
}
