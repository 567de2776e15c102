package mail

import (
	"context"
	"crypto/tls"
	"time"

	gomail "github.com/go-mail/mail"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/feeddigital/cursos-api/internal/logger"
)

// SMTPSender implements Sender over an authenticated SMTP relay.
type SMTPSender struct {
	Host               string
	Port               int
	User               string
	Pass               string
	TLSMode            string // "auto" | "starttls" | "ssl" | "none"
	InsecureSkipVerify bool
	Timeout            time.Duration

	logger *zap.Logger
}

// NewSMTPSender creates an SMTPSender negotiating STARTTLS when offered.
func NewSMTPSender(host string, port int, user, pass string, log *zap.Logger) *SMTPSender {
	if log == nil {
		log = logger.Log
	}
	return &SMTPSender{
		Host:    host,
		Port:    port,
		User:    user,
		Pass:    pass,
		TLSMode: "auto",
		Timeout: 10 * time.Second,
		logger:  log,
	}
}

// Send dials the relay and delivers msg as multipart/alternative (text + HTML).
// The dial is skipped when ctx is already done; once connected the send runs
// to completion.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	log := logger.FromContext(ctx, s.logger).With(
		zap.String("component", "SMTPSender"),
		zap.String("host", s.Host),
		zap.Int("port", s.Port),
		zap.String("to", msg.To),
	)

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "smtp send")
	}

	log.Debug("sending email",
		zap.String("from", msg.From.Email),
		zap.String("subject", msg.Subject),
		zap.String("tls_mode", s.TLSMode),
	)

	if err := s.dialer().DialAndSend(s.newMessage(msg)); err != nil {
		log.Error("smtp send failed", zap.Error(err))
		return errors.Wrap(err, "smtp send")
	}

	log.Info("email sent successfully", zap.String("subject", msg.Subject))
	return nil
}

func (s *SMTPSender) dialer() *gomail.Dialer {
	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	if s.Timeout > 0 {
		d.Timeout = s.Timeout
	}
	d.TLSConfig = &tls.Config{
		ServerName:         s.Host,
		InsecureSkipVerify: s.InsecureSkipVerify,
	}

	switch s.TLSMode {
	case "ssl":
		d.SSL = true
	case "starttls":
		d.StartTLSPolicy = gomail.MandatoryStartTLS
	case "none":
		d.StartTLSPolicy = gomail.NoStartTLS
	default:
		// "auto": STARTTLS if the server offers it
	}
	return d
}

func (s *SMTPSender) newMessage(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From.Email, msg.From.Name)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	for k, v := range msg.Headers {
		m.SetHeader(k, v)
	}

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}
	return m
}
