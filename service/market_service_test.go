package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"bazaar/domain/auction"
	"bazaar/domain/ledger"
	"bazaar/infra/sequence"
	"bazaar/infra/state"
	entrywal "bazaar/infra/wal/entry"
	exitwal "bazaar/infra/wal/exit"
)

type testEnv struct {
	svc      *MarketService
	walDir   string
	entryWAL *entrywal.WAL
	store    *state.Store
	outbox   *exitwal.Outbox
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	walDir := t.TempDir()
	stateDir := t.TempDir()

	w, err := entrywal.Open(entrywal.Config{Dir: walDir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	st, err := state.Open(stateDir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ob, err := exitwal.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() {
		_ = w.Close()
		_ = st.Close()
		_ = ob.Close()
	})

	svc := NewMarketService(ledger.New(), auction.NewRegistry(), sequence.New(0), w, st, ob)
	return &testEnv{
		svc:      svc,
		walDir:   walDir,
		entryWAL: w,
		store:    st,
		outbox:   ob,
	}
}

func TestCommandPipeline(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	seq, err := svc.RegisterAccount("seller")
	if err != nil || seq != 1 {
		t.Fatalf("register seller: seq=%d err=%v", seq, err)
	}
	if _, err := svc.RegisterAccount("alice"); err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if _, err := svc.RegisterAccount("bob"); err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if _, err := svc.RegisterResource("seller", "res-1"); err != nil {
		t.Fatalf("register resource: %v", err)
	}

	id, seq, err := svc.OpenAuction("seller", "res-1", 0)
	if err != nil {
		t.Fatalf("open auction: %v", err)
	}
	if id != auction.FirstAuctionID || seq != 5 {
		t.Fatalf("expected auction %d at seq 5, got %d at %d", auction.FirstAuctionID, id, seq)
	}

	if _, err := svc.Bid("alice", id, "res-1", 100); err != nil {
		t.Fatalf("alice bids: %v", err)
	}
	if _, err := svc.Bid("bob", id, "res-1", 150); err != nil {
		t.Fatalf("bob bids: %v", err)
	}
	if _, err := svc.Bid("alice", id, "res-1", 60); err != nil {
		t.Fatalf("alice tops up: %v", err)
	}

	winner, _, err := svc.FinishAuction("seller", id, "res-1")
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if winner != "alice" {
		t.Fatalf("expected alice to win, got %s", winner)
	}

	if owner, _ := svc.Owner("res-1"); owner != "alice" {
		t.Errorf("owner: %s", owner)
	}
	if bal, _ := svc.Balance("bob"); bal != ledger.TotalSupply {
		t.Errorf("bob not made whole: %d", bal)
	}
	if bal, _ := svc.Balance("seller"); bal != ledger.TotalSupply+160 {
		t.Errorf("seller balance: %d", bal)
	}
	if got := svc.OpenAuctions(); len(got) != 0 {
		t.Errorf("open set should be empty: %v", got)
	}
	if a, ok := svc.Auction(id); !ok || a.State != auction.Finished {
		t.Errorf("finished record: %+v (ok=%v)", a, ok)
	}
}

func TestRejectedCommandBurnsNoSequence(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	if _, err := svc.RegisterAccount("alice"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.RegisterAccount("alice"); !errors.Is(err, ledger.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	// The rejection happened before the WAL append, so the next accepted
	// command takes seq 2.
	seq, err := svc.RegisterAccount("bob")
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if seq != 2 {
		t.Fatalf("expected seq 2, got %d", seq)
	}
}

func TestTransferEmitsOutboxEvent(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	_, _ = svc.RegisterAccount("alice")
	_, _ = svc.RegisterAccount("bob")
	seq, err := svc.TransferBalance("alice", "bob", 500)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	rec, err := env.outbox.Get(seq, 0)
	if err != nil {
		t.Fatalf("outbox get: %v", err)
	}
	if rec.From != "alice" || rec.To != "bob" || rec.Amount != 500 {
		t.Errorf("wrong event: %+v", rec)
	}
	if rec.State != exitwal.StateNew {
		t.Errorf("expected NEW, got %v", rec.State)
	}
}

func TestFinishEmitsOneRefundPerLoser(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	for _, a := range []ledger.AccountID{"seller", "alice", "bob", "carol"} {
		_, _ = svc.RegisterAccount(a)
	}
	_, _ = svc.RegisterResource("seller", "res-1")
	id, _, _ := svc.OpenAuction("seller", "res-1", 0)
	_, _ = svc.Bid("alice", id, "res-1", 100)
	_, _ = svc.Bid("bob", id, "res-1", 200)
	_, _ = svc.Bid("carol", id, "res-1", 300)

	_, seq, err := svc.FinishAuction("seller", id, "res-1")
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	// alice and bob lost; two refund events under the finish sequence.
	var count int
	_ = env.outbox.ScanPending(func(rec exitwal.EventRecord) error {
		if rec.Seq == seq {
			count++
			if rec.From != "seller" {
				t.Errorf("refund must come from the caller: %+v", rec)
			}
		}
		return nil
	})
	if count != 2 {
		t.Fatalf("expected 2 refund events, got %d", count)
	}
}

func TestJournalFailureHaltsInsteadOfDiverging(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	if _, err := svc.RegisterAccount("alice"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Closing the journal makes the next append fail. By that point the
	// domain maps are already mutated, so the service must halt rather
	// than keep serving state it can never persist.
	_ = env.entryWAL.Close()

	defer func(orig func(string, ...any)) { fatalf = orig }(fatalf)
	var msg string
	fatalf = func(format string, args ...any) {
		msg = fmt.Sprintf(format, args...)
		panic("halt")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected halt on journal failure")
		}
		if !strings.Contains(msg, "wal append failed") {
			t.Errorf("unexpected halt reason: %q", msg)
		}
	}()
	_, _ = svc.RegisterAccount("bob")
}

func TestRecoverFromStateStore(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	_, _ = svc.RegisterAccount("seller")
	_, _ = svc.RegisterAccount("alice")
	_, _ = svc.RegisterResource("seller", "res-1")
	id, _, _ := svc.OpenAuction("seller", "res-1", 0)
	lastSeq, _ := svc.Bid("alice", id, "res-1", 100)

	// Fresh domain state, same store and WAL: everything was committed, so
	// recovery is a pure state-store load.
	seqGen := sequence.New(0)
	svc2 := NewMarketService(ledger.New(), auction.NewRegistry(), seqGen, env.entryWAL, env.store, env.outbox)
	if err := svc2.Recover(env.walDir); err != nil {
		t.Fatalf("recover: %v", err)
	}

	if seqGen.Current() != lastSeq {
		t.Errorf("sequencer: expected %d, got %d", lastSeq, seqGen.Current())
	}
	if bal, _ := svc2.Balance("alice"); bal != ledger.TotalSupply-100 {
		t.Errorf("alice balance: %d", bal)
	}
	if bal, _ := svc2.Balance("seller"); bal != ledger.TotalSupply+100 {
		t.Errorf("seller balance: %d", bal)
	}
	a, ok := svc2.Auction(id)
	if !ok || a.State != auction.Open || a.MaxBid != 100 || a.MaxBidOwner != "alice" {
		t.Fatalf("auction not restored: %+v (ok=%v)", a, ok)
	}

	// The restored service keeps allocating ids where the old one left off.
	_, _ = svc2.RegisterResource("seller", "res-2")
	id2, _, err := svc2.OpenAuction("seller", "res-2", 0)
	if err != nil {
		t.Fatalf("open after recovery: %v", err)
	}
	if id2 != id+1 {
		t.Errorf("expected id %d, got %d", id+1, id2)
	}
}

func TestRecoverReplaysWALTail(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	_, _ = svc.RegisterAccount("seller")
	_, _ = svc.RegisterAccount("alice")
	_, _ = svc.RegisterResource("seller", "res-1")
	id, _, _ := svc.OpenAuction("seller", "res-1", 0)
	_, _ = svc.Bid("alice", id, "res-1", 100)
	winner, lastSeq, err := svc.FinishAuction("seller", id, "res-1")
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	// Empty state store: every journaled command is a tail record and must
	// re-execute to the same final state.
	st, err := state.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open empty store: %v", err)
	}
	defer st.Close()

	seqGen := sequence.New(0)
	svc2 := NewMarketService(ledger.New(), auction.NewRegistry(), seqGen, env.entryWAL, st, nil)
	if err := svc2.Recover(env.walDir); err != nil {
		t.Fatalf("recover: %v", err)
	}

	if seqGen.Current() != lastSeq {
		t.Errorf("sequencer: expected %d, got %d", lastSeq, seqGen.Current())
	}
	if owner, _ := svc2.Owner("res-1"); owner != winner {
		t.Errorf("owner after replay: %s", owner)
	}
	if bal, _ := svc2.Balance("seller"); bal != ledger.TotalSupply+100 {
		t.Errorf("seller balance after replay: %d", bal)
	}
	if bal, _ := svc2.Balance("alice"); bal != ledger.TotalSupply-100 {
		t.Errorf("alice balance after replay: %d", bal)
	}
	if a, ok := svc2.Auction(id); !ok || a.State != auction.Finished || a.FinalOwner != winner {
		t.Errorf("auction after replay: %+v (ok=%v)", a, ok)
	}
}

func TestCommandCodecRoundTrip(t *testing.T) {
	cmds := []command{
		{typ: entrywal.RecordRegisterAccount, caller: "alice"},
		{typ: entrywal.RecordRegisterResource, caller: "alice", res: "res|pipe"},
		{typ: entrywal.RecordTransferBalance, caller: "alice", to: "bob", amount: 42},
		{typ: entrywal.RecordTransferResource, caller: "alice", to: "bob", res: "res-1"},
		{typ: entrywal.RecordOpenAuction, caller: "alice", res: "res-1", amount: 7},
		{typ: entrywal.RecordBid, caller: "bob", auctionID: 10, res: "res-1", amount: 99},
		{typ: entrywal.RecordFinishAuction, caller: "alice", auctionID: 10, res: "res-1"},
	}

	for _, in := range cmds {
		rec := entrywal.NewRecord(in.typ, 1, in.encode())
		out, err := decodeCommand(rec)
		if err != nil {
			t.Fatalf("decode type %d: %v", in.typ, err)
		}
		if out != in {
			t.Errorf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
		}
	}
}
