package interfaces

// EventPublisher emits derivation lifecycle events to interested
// consumers. Implementations decide transport and encoding.
type EventPublisher interface {
	Publish(topic string, event any) error
}
