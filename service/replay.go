package service

import (
	"fmt"
	"log"

	entrywal "bazaar/infra/wal/entry"
)

/*
Recover rebuilds state before the service accepts traffic.

Two sources, in order:
 1. the state store (authoritative up to meta/last_seq)
 2. the entry WAL tail — commands whose journal append survived a crash
    but whose batch commit did not; they are re-executed and re-committed.

Exit outbox contents survive as-is; the broadcaster resumes pending
deliveries on its own.
*/
func (s *MarketService) Recover(walDir string) error {
	committed, err := s.store.Load(s.ledger, s.reg)
	if err != nil {
		return fmt.Errorf("state load: %w", err)
	}

	last, err := entrywal.Replay(walDir, func(rec *entrywal.Record) error {
		if rec.Seq <= committed {
			return nil
		}

		c, err := decodeCommand(rec)
		if err != nil {
			return err
		}

		// The command was accepted once against this exact state, so it
		// must apply cleanly again.
		out, err := s.apply(c)
		if err != nil {
			return fmt.Errorf("replay seq %d: %w", rec.Seq, err)
		}

		out.cs.Seq = rec.Seq
		if err := s.store.Commit(out.cs); err != nil {
			return err
		}
		s.enqueue(rec.Seq, out.events)
		return nil
	})
	if err != nil {
		return err
	}

	if last < committed {
		last = committed
	}
	s.seqGen.Reset(last)

	log.Printf("[recover] state loaded (committed seq = %d, resumed at %d)", committed, last)
	return nil
}
