package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer is the direct, one-shot publisher. The replayed transfer stream
// goes through the outbox broadcaster instead; this client only carries
// events that need no redelivery bookkeeping.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// MarkerEvent is the wire shape of the engine-up announcement.
type MarkerEvent struct {
	V    int    `json:"v"`
	Type string `json:"type"`
	Seq  uint64 `json:"seq"`
}

// PublishMarker announces that the engine came (back) up and from which
// command sequence it resumed.
func (p *Producer) PublishMarker(ctx context.Context, seq uint64) error {
	payload, err := markerPayload(seq)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte("engine_up"),
		Value: payload,
	})
}

func markerPayload(seq uint64) ([]byte, error) {
	return json.Marshal(MarkerEvent{V: 1, Type: "engine_up", Seq: seq})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
