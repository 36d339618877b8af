package notifsrvc

import (
	"context"
	"log/slog"

	"github.com/opsfront/intake-backend/intake"
)

// SlogSender writes the notification to the structured log instead of
// delivering it anywhere. Default provider for local development and
// environments without a configured delivery channel.
type SlogSender struct {
	logger *slog.Logger
}

func NewSlogSender(logger *slog.Logger) *SlogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSender{logger: logger}
}

func (s *SlogSender) Send(ctx context.Context, subm intake.Submission) error {
	s.logger.Info("new submission notification",
		"subject", Subject(subm),
		"body", Body(subm),
	)
	return nil
}
