package event

import (
	"context"

	"github.com/dkurganov/microblog/internal/logger"
)

// Publisher is the contract consumed by registration and post-change
// notification flows. The broker behind it is an external collaborator;
// this package only defines what the services need from it.
type Publisher interface {
	Publish(ctx context.Context, topic, key, message string) error
}

// LogPublisher writes events to the application log. It stands in where no
// broker is wired and keeps the publish call sites exercised.
type LogPublisher struct {
	logger *logger.Logger
}

func NewLogPublisher(logger *logger.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, topic, key, message string) error {
	p.logger.Info("event published",
		"topic", topic,
		"key", key,
		"message", message)
	return nil
}
