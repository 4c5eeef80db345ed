package entry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndReplay(t *testing.T) {
	dir := t.TempDir()

	// --- write phase ---
	w, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}

	const n = 50
	for i := 1; i <= n; i++ {
		rec := NewRecord(RecordTransferBalance, uint64(i), []byte(fmt.Sprintf("cmd-%d", i)))
		if err := w.Append(rec); err != nil {
			t.Fatalf("append seq %d: %v", i, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// --- replay phase ---
	var seqs []uint64
	last, err := Replay(dir, func(rec *Record) error {
		if rec.Type != RecordTransferBalance {
			t.Fatalf("unexpected record type: %v", rec.Type)
		}
		if want := fmt.Sprintf("cmd-%d", rec.Seq); string(rec.Data) != want {
			t.Fatalf("payload mismatch at seq %d: %q", rec.Seq, rec.Data)
		}
		seqs = append(seqs, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if last != n || len(seqs) != n {
		t.Fatalf("expected %d records ending at %d, got %d ending at %d", n, n, len(seqs), last)
	}
	for i, s := range seqs {
		if s != uint64(i+1) {
			t.Fatalf("records out of order at %d: %d", i, s)
		}
	}
}

func TestRotationAndResume(t *testing.T) {
	dir := t.TempDir()

	// Tiny segments so a handful of records forces several rotations.
	w, err := Open(Config{Dir: dir, SegmentSize: 128})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}

	const n = 20
	for i := 1; i <= n; i++ {
		if err := w.Append(NewRecord(RecordBid, uint64(i), []byte("payload"))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	_ = w.Close()

	segs, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if len(segs) < 2 {
		t.Fatalf("expected rotation, got %d segment(s)", len(segs))
	}

	// Reopen and keep appending; replay must see one continuous stream.
	w, err = Open(Config{Dir: dir, SegmentSize: 128})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	for i := n + 1; i <= n+5; i++ {
		if err := w.Append(NewRecord(RecordBid, uint64(i), []byte("payload"))); err != nil {
			t.Fatalf("append after reopen: %v", err)
		}
	}
	_ = w.Close()

	count := 0
	last, err := Replay(dir, func(*Record) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != n+5 || last != n+5 {
		t.Fatalf("expected %d records, got %d (last=%d)", n+5, count, last)
	}
}

func TestReplayDetectsCorruption(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	for i := 1; i <= 3; i++ {
		_ = w.Append(NewRecord(RecordOpenAuction, uint64(i), []byte("auction-payload")))
	}
	_ = w.Close()

	// Flip a payload byte in the first record (the frame header is 21 bytes).
	path := filepath.Join(dir, "segment-000000.wal")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read segment: %v", err)
	}
	data[25] ^= 0xff
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write segment: %v", err)
	}

	_, err = Replay(dir, func(*Record) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "crc mismatch") {
		t.Fatalf("expected crc mismatch, got %v", err)
	}
}

func TestReopenAfterTruncateResumesHighestSegment(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 64})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	for i := 1; i <= 12; i++ {
		if err := w.Append(NewRecord(RecordTransferBalance, uint64(i), []byte("acct"))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := w.TruncateBefore(8); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	_ = w.Close()

	// Truncation left a hole at the low indices. The reopen must resume
	// at the highest surviving segment; recreating a low index would put
	// new high sequences ahead of surviving older ones in replay order.
	w, err = Open(Config{Dir: dir, SegmentSize: 64})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	for i := 13; i <= 15; i++ {
		if err := w.Append(NewRecord(RecordTransferBalance, uint64(i), []byte("acct"))); err != nil {
			t.Fatalf("append after reopen: %v", err)
		}
	}
	_ = w.Close()

	var seqs []uint64
	last, err := Replay(dir, func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("replay after truncate+reopen: %v", err)
	}
	if last != 15 {
		t.Fatalf("expected last seq 15, got %d", last)
	}
	for i := 1; i < len(seqs); i++ {
		if seqs[i] <= seqs[i-1] {
			t.Fatalf("replay out of order: %v", seqs)
		}
	}
	if n := len(seqs); seqs[n-3] != 13 || seqs[n-1] != 15 {
		t.Fatalf("post-restart records missing from tail: %v", seqs)
	}
}

func TestTruncateBeforeKeepsTail(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 128})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	const n = 20
	for i := 1; i <= n; i++ {
		_ = w.Append(NewRecord(RecordRegisterAccount, uint64(i), []byte("acct")))
	}

	before, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if len(before) < 3 {
		t.Fatalf("expected several segments, got %d", len(before))
	}

	// Everything is committed; all non-current segments go.
	if err := w.TruncateBefore(n); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	after, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if len(after) != 1 {
		t.Fatalf("expected only the current segment, got %d", len(after))
	}
	_ = w.Close()
}
