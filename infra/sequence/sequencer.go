package sequence

import "sync/atomic"

// Sequencer issues the strictly monotonic command sequence. Every accepted
// command gets exactly one number; the WAL and the state store agree on it.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer resuming from start.
// Fresh start → 0, after recovery → last committed seq.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next command sequence.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset sets the sequencer. ONLY used after recovery.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
