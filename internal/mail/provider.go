package mail

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/feeddigital/cursos-api/internal/config"
	"github.com/feeddigital/cursos-api/internal/constants"
)

// NewSender builds the transport selected by cfg.Provider.
func NewSender(cfg config.MailConfig, log *zap.Logger) (Sender, error) {
	switch cfg.Provider {
	case constants.MailProviderSMTP, "":
		s := NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, log)
		if cfg.SMTPTLSMode != "" {
			s.TLSMode = cfg.SMTPTLSMode
		}
		return s, nil
	case constants.MailProviderResend:
		if cfg.ResendAPIKey == "" {
			return nil, errors.New("resend provider requires an API key")
		}
		return NewResendSender(cfg.ResendAPIKey, log), nil
	case constants.MailProviderLog:
		return NewLogSender(log), nil
	default:
		return nil, errors.Errorf("unknown mail provider %q", cfg.Provider)
	}
}
