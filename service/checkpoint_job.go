package service

import "time"

// StartCheckpointJob periodically drops entry WAL segments that are fully
// committed to the state store and garbage-collects acked outbox records.
func (s *MarketService) StartCheckpointJob(interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for range t.C {
			seq := s.seqGen.Current()

			if err := s.entryWAL.TruncateBefore(seq); err != nil {
				continue
			}
			if s.outbox != nil {
				_ = s.outbox.TruncateAckedUpTo(seq)
			}
		}
	}()
}
