package queue

import (
	"fmt"

	"go.uber.org/zap"
)

// MessageQueue fans availability events out between the server, the poller
// and the simulator.
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}

// New builds the queue adapter selected by driver: "nats" (default) or
// "rabbitmq".
func New(driver, url string, log *zap.Logger) (MessageQueue, error) {
	switch driver {
	case "", "nats":
		return NewNATSQueue(url, log)
	case "rabbitmq":
		return NewRabbitMQQueue(url, log)
	default:
		return nil, fmt.Errorf("unknown queue driver %q", driver)
	}
}
