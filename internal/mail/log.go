package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/feeddigital/cursos-api/internal/logger"
)

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	if log == nil {
		log = logger.Log
	}
	return &LogSender{logger: log}
}

func (s *LogSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.FromContext(ctx, s.logger).Info("email not delivered (log provider)",
		zap.String("from", msg.From.String()),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return nil
}
