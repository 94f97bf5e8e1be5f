package noop

import "github.com/nokataxx/cashflow-app/internal/interfaces"

// Publisher discards events. Used when no Kafka brokers are configured.
type Publisher struct{}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(topic string, event any) error {
	return nil
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
