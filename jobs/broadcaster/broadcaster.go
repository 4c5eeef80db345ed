package broadcaster

import (
	"context"
	"encoding/json"
	"log"
	"time"

	exitwal "bazaar/infra/wal/exit"

	"github.com/IBM/sarama"
)

// Broadcaster drains the outbox into kafka. Delivery is at-least-once:
// a record that fails to publish stays pending and is retried on the next
// tick; consumers deduplicate on (seq, index).
type Broadcaster struct {
	outbox   *exitwal.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// TransferEvent is the wire shape of one balance-transfer notification.
type TransferEvent struct {
	V      int    `json:"v"`
	Type   string `json:"type"`
	Seq    uint64 `json:"seq"`
	Index  uint32 `json:"index"`
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

func New(
	outbox *exitwal.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   outbox,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

func (b *Broadcaster) Run(ctx context.Context) {
	log.Println("[broadcaster] started")

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.drainOnce()
		}
	}
}

func (b *Broadcaster) drainOnce() {
	_ = b.outbox.ScanPending(func(rec exitwal.EventRecord) error {
		// Mark SENT first so a crash mid-publish resends instead of
		// silently dropping.
		_ = b.outbox.MarkSent(rec.Seq, rec.Index)

		payload, err := json.Marshal(TransferEvent{
			V:      1,
			Type:   "transfer",
			Seq:    rec.Seq,
			Index:  rec.Index,
			From:   rec.From,
			To:     rec.To,
			Amount: rec.Amount,
		})
		if err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			return nil // stays pending, retried next tick
		}

		return b.outbox.MarkAcked(rec.Seq, rec.Index)
	})
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
