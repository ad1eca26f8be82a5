package worker

import (
	"context"
	"errors"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/creator_catalogue/internal/delivery/events"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
)

const (
	fetchBatch   = 10
	fetchMaxWait = 5 * time.Second
	fetchBackoff = 5 * time.Second
)

// NewStreamConfig creates a new stream configuration helper
func NewStreamConfig(js nats.JetStreamContext, log *logger.Logger) *events.StreamConfig {
	return events.NewStreamConfig(js, log)
}

// Subscribe binds a pull subscription to the durable catalogue consumer
func Subscribe(js nats.JetStreamContext) (*nats.Subscription, error) {
	return js.PullSubscribe(events.StreamSubjects, events.ConsumerName, nats.ManualAck())
}

// PullLoop fetches batches from sub until ctx is done.
// Messages the handler rejects are nacked and redelivered with the consumer backoff.
func PullLoop(ctx context.Context, sub *nats.Subscription, handle func(data []byte) error, log *logger.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msgs, err := sub.Fetch(fetchBatch, nats.MaxWait(fetchMaxWait))
		if err != nil {
			if errors.Is(err, nats.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			log.Error("Failed to fetch messages from JetStream", err)

			select {
			case <-time.After(fetchBackoff):
			case <-ctx.Done():
				return
			}
			continue
		}

		for _, msg := range msgs {
			if err := handle(msg.Data); err != nil {
				log.Error("Failed to handle event", err)
				if nakErr := msg.Nak(); nakErr != nil {
					log.Error("Failed to NAK message", nakErr)
				}
				continue
			}

			if ackErr := msg.Ack(); ackErr != nil {
				log.Error("Failed to ACK message", ackErr)
			}
		}
	}
}
