package state

import (
	"testing"

	"bazaar/domain/auction"
	"bazaar/domain/ledger"
)

func TestCommitLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// --- commit phase ---
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	a := &auction.Auction{
		ID:           10,
		Resource:     "res-1",
		State:        auction.Open,
		InitialOwner: "seller",
		MaxBidOwner:  "alice",
		MaxBid:       160,
		Bids: []auction.BidEntry{
			{Bidder: "alice", Amount: 160},
			{Bidder: "bob", Amount: 150},
		},
	}

	cs := ChangeSet{
		Seq: 7,
		Balances: map[ledger.AccountID]uint64{
			"seller": ledger.TotalSupply + 310,
			"alice":  ledger.TotalSupply - 160,
			"bob":    ledger.TotalSupply - 150,
		},
		Resources:     map[ledger.ResourceID]ledger.AccountID{"res-1": "seller"},
		Auctions:      []*auction.Auction{a},
		NextAuctionID: 11,
	}
	if err := s.Commit(cs); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// --- load phase ---
	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s.Close()

	l := ledger.New()
	r := auction.NewRegistry()
	lastSeq, err := s.Load(l, r)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if lastSeq != 7 {
		t.Errorf("last seq: expected 7, got %d", lastSeq)
	}
	if bal, ok := l.Balance("seller"); !ok || bal != ledger.TotalSupply+310 {
		t.Errorf("seller balance: %d (ok=%v)", bal, ok)
	}
	if owner, ok := l.Owner("res-1"); !ok || owner != "seller" {
		t.Errorf("owner: %q (ok=%v)", owner, ok)
	}
	if r.NextID() != 11 {
		t.Errorf("next auction id: expected 11, got %d", r.NextID())
	}

	got, ok := r.Get(10)
	if !ok {
		t.Fatal("auction 10 not restored")
	}
	if got.State != auction.Open || got.MaxBidOwner != "alice" || got.MaxBid != 160 {
		t.Errorf("auction fields wrong: %+v", got)
	}
	if len(got.Bids) != 2 || got.Bids[1].Bidder != "bob" || got.Bids[1].Amount != 150 {
		t.Errorf("bids wrong: %+v", got.Bids)
	}
	if id, ok := r.OpenID("res-1"); !ok || id != 10 {
		t.Errorf("open index not rebuilt: %d (ok=%v)", id, ok)
	}
}

func TestLaterCommitOverwrites(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	_ = s.Commit(ChangeSet{
		Seq:      1,
		Balances: map[ledger.AccountID]uint64{"alice": 100},
	})
	_ = s.Commit(ChangeSet{
		Seq:      2,
		Balances: map[ledger.AccountID]uint64{"alice": 40, "bob": 60},
	})

	l := ledger.New()
	r := auction.NewRegistry()
	lastSeq, err := s.Load(l, r)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lastSeq != 2 {
		t.Errorf("last seq: expected 2, got %d", lastSeq)
	}
	if bal, _ := l.Balance("alice"); bal != 40 {
		t.Errorf("alice balance: expected 40, got %d", bal)
	}
	if bal, _ := l.Balance("bob"); bal != 60 {
		t.Errorf("bob balance: expected 60, got %d", bal)
	}
}

func TestFinishedAuctionRestoresClosed(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	_ = s.Commit(ChangeSet{
		Seq: 3,
		Auctions: []*auction.Auction{{
			ID:         10,
			Resource:   "res-1",
			State:      auction.Finished,
			FinalOwner: "alice",
		}},
	})

	l := ledger.New()
	r := auction.NewRegistry()
	if _, err := s.Load(l, r); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, ok := r.OpenID("res-1"); ok {
		t.Error("finished auction must not rebuild the open index")
	}
	if got, ok := r.Get(10); !ok || got.FinalOwner != "alice" {
		t.Errorf("finished record wrong: %+v (ok=%v)", got, ok)
	}
}

func TestAuctionCodecRoundTrip(t *testing.T) {
	a := &auction.Auction{
		ID:           42,
		Resource:     "res-xyz",
		State:        auction.Finished,
		InitialOwner: "seller",
		FinalOwner:   "winner",
		MaxBidOwner:  "winner",
		MaxBid:       999,
		Bids: []auction.BidEntry{
			{Bidder: "winner", Amount: 999},
		},
	}

	got, err := decodeAuction(encodeAuction(a))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != a.ID || got.Resource != a.Resource || got.State != a.State ||
		got.InitialOwner != a.InitialOwner || got.FinalOwner != a.FinalOwner ||
		got.MaxBidOwner != a.MaxBidOwner || got.MaxBid != a.MaxBid {
		t.Errorf("fields wrong: %+v", got)
	}
	if len(got.Bids) != 1 || got.Bids[0] != a.Bids[0] {
		t.Errorf("bids wrong: %+v", got.Bids)
	}
}

func TestDecodeAuctionTruncated(t *testing.T) {
	a := &auction.Auction{ID: 10, Resource: "res-1", MaxBidOwner: "x"}
	buf := encodeAuction(a)

	if _, err := decodeAuction(buf[:len(buf)-3]); err == nil {
		t.Fatal("expected error on truncated record")
	}
}
