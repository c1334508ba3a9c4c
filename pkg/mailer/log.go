package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogSender writes messages to the logger instead of delivering them.
// LogSender 开发环境使用，只记录日志
type LogSender struct {
	from   From
	logger *zap.Logger
}

var _ Sender = (*LogSender)(nil)

func NewLogSender(logger *zap.Logger, from From) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{from: from, logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg *Message) error {
	if err := validate(msg); err != nil {
		return err
	}
	s.logger.Info("mail",
		zap.String("from", s.from.Header()),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("html", msg.HTML))
	return nil
}
