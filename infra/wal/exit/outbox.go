package exit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- Delivery state --------------------

type DeliveryState uint8

const (
	StateNew DeliveryState = iota
	StateSent
	StateAcked
)

func (s DeliveryState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Event --------------------

// Event is one balance-transfer notification. Seq is the command that
// produced it; Index disambiguates multiple transfers per command (a
// finished auction refunds several bidders at once).
type Event struct {
	Seq    uint64
	Index  uint32
	From   string
	To     string
	Amount uint64
}

type EventRecord struct {
	Event
	State       DeliveryState
	Retries     uint32
	LastAttempt int64
}

// value encoding:
// [state:1][retries:4][lastAttempt:8][amount:8][fromLen:4][from][toLen:4][to]
func encodeRecord(r EventRecord) []byte {
	buf := make([]byte, 0, 1+4+8+8+4+len(r.From)+4+len(r.To))
	buf = append(buf, byte(r.State))
	buf = binary.BigEndian.AppendUint32(buf, r.Retries)
	buf = binary.BigEndian.AppendUint64(buf, uint64(r.LastAttempt))
	buf = binary.BigEndian.AppendUint64(buf, r.Amount)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(r.From)))
	buf = append(buf, r.From...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(r.To)))
	buf = append(buf, r.To...)
	return buf
}

func decodeRecord(b []byte) (EventRecord, error) {
	if len(b) < 1+4+8+8+4 {
		return EventRecord{}, errors.New("invalid outbox record length")
	}
	var r EventRecord
	r.State = DeliveryState(b[0])
	r.Retries = binary.BigEndian.Uint32(b[1:5])
	r.LastAttempt = int64(binary.BigEndian.Uint64(b[5:13]))
	r.Amount = binary.BigEndian.Uint64(b[13:21])

	rest := b[21:]
	fromLen := binary.BigEndian.Uint32(rest[:4])
	rest = rest[4:]
	// Widen before adding: a corrupt fromLen near MaxUint32 would wrap
	// a 32-bit sum and slip past the bound check.
	if uint64(len(rest)) < uint64(fromLen)+4 {
		return EventRecord{}, errors.New("invalid outbox record length")
	}
	r.From = string(rest[:fromLen])
	rest = rest[fromLen:]

	toLen := binary.BigEndian.Uint32(rest[:4])
	rest = rest[4:]
	if uint32(len(rest)) != toLen {
		return EventRecord{}, errors.New("invalid outbox record length")
	}
	r.To = string(rest)
	return r, nil
}

// -------------------- Outbox --------------------

// Outbox is the durable queue between the commit path and the kafka
// broadcaster. Sink failure never touches committed state; records simply
// stay pending until a later drain succeeds.
type Outbox struct {
	db *pebble.DB
}

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// -------------------- API --------------------

// PutNew inserts a fresh notification (called by MarketService after a
// successful commit).
func (o *Outbox) PutNew(ev Event) error {
	rec := EventRecord{Event: ev, State: StateNew}
	return o.db.Set(keyFor(ev.Seq, ev.Index), encodeRecord(rec), pebble.Sync)
}

func (o *Outbox) MarkSent(seq uint64, index uint32) error {
	return o.transition(seq, index, StateSent)
}

func (o *Outbox) MarkAcked(seq uint64, index uint32) error {
	return o.transition(seq, index, StateAcked)
}

func (o *Outbox) transition(seq uint64, index uint32, st DeliveryState) error {
	key := keyFor(seq, index)
	val, closer, err := o.db.Get(key)
	if err != nil {
		return err
	}
	rec, err := decodeRecord(val)
	_ = closer.Close()
	if err != nil {
		return err
	}

	rec.State = st
	rec.Retries++
	rec.LastAttempt = time.Now().UnixNano()
	return o.db.Set(key, encodeRecord(rec), pebble.Sync)
}

// Get returns the record for one event.
func (o *Outbox) Get(seq uint64, index uint32) (EventRecord, error) {
	val, closer, err := o.db.Get(keyFor(seq, index))
	if err != nil {
		return EventRecord{}, err
	}
	defer closer.Close()

	rec, err := decodeRecord(val)
	if err != nil {
		return EventRecord{}, err
	}
	rec.Seq, rec.Index = seq, index
	return rec, nil
}

// ScanPending iterates every record not yet acked, in key order. SENT
// records are included: they mean a previous drain crashed between publish
// and ack, and at-least-once delivery resends them.
func (o *Outbox) ScanPending(fn func(EventRecord) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("evt/"),
		UpperBound: []byte("evt/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			continue
		}

		seq, index, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec.Seq, rec.Index = seq, index

		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// TruncateAckedUpTo removes acked records at or below the given command
// sequence (cleanup, driven by the checkpoint job).
func (o *Outbox) TruncateAckedUpTo(seq uint64) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("evt/"),
		UpperBound: []byte("evt/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		recSeq, _, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if recSeq > seq {
			break
		}
		if rec.State != StateAcked {
			continue
		}

		key := append([]byte(nil), iter.Key()...)
		if err := o.db.Delete(key, pebble.Sync); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

func keyFor(seq uint64, index uint32) []byte {
	return []byte(fmt.Sprintf("evt/%020d-%04d", seq, index))
}

func parseKey(b []byte) (seq uint64, index uint32, err error) {
	_, err = fmt.Sscanf(string(b), "evt/%d-%d", &seq, &index)
	return seq, index, err
}
