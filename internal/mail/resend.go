package mail

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/feeddigital/cursos-api/internal/logger"
)

// ResendSender implements Sender through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
	logger *zap.Logger
}

// NewResendSender creates a sender using the given API key.
func NewResendSender(apiKey string, log *zap.Logger) *ResendSender {
	return NewResendSenderWithClient(resend.NewClient(apiKey), log)
}

// NewResendSenderWithClient wraps an already configured Resend client.
func NewResendSenderWithClient(client *resend.Client, log *zap.Logger) *ResendSender {
	if log == nil {
		log = logger.Log
	}
	return &ResendSender{client: client, logger: log}
}

// Send delivers msg; the request is bound to ctx.
func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	log := logger.FromContext(ctx, s.logger)

	headers := make(map[string]string, len(msg.Headers)+1)
	for k, v := range msg.Headers {
		headers[k] = v
	}
	if _, ok := headers["X-Entity-Ref-ID"]; !ok {
		headers["X-Entity-Ref-ID"] = uuid.New().String()
	}

	params := &resend.SendEmailRequest{
		From:    msg.From.String(),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
		Headers: headers,
		Tags:    convertToResendTags(msg.Tags),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Error("failed to send transactional email",
			zap.Error(err),
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject))
		return errors.Wrap(err, "failed to send email")
	}

	log.Info("transactional email sent successfully",
		zap.String("email_id", sent.Id),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))

	return nil
}

func convertToResendTags(tags map[string]string) []resend.Tag {
	var resendTags []resend.Tag
	for name, value := range tags {
		resendTags = append(resendTags, resend.Tag{
			Name:  name,
			Value: value,
		})
	}
	return resendTags
}
