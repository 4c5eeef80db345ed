package snapshot

import (
	"testing"

	"bazaar/domain/auction"
	"bazaar/domain/ledger"
)

func TestBuildSortsEntries(t *testing.T) {
	l := ledger.New()
	for _, a := range []ledger.AccountID{"charlie", "alice", "bob"} {
		_ = l.RegisterAccount(a)
	}
	_ = l.RegisterResource("bob", "res-z")
	_ = l.RegisterResource("alice", "res-a")

	r := auction.NewRegistry()
	a1, _ := r.OpenForResource(l, "bob", "res-z", 0)
	a2, _ := r.OpenForResource(l, "alice", "res-a", 0)

	s := Build(42, l, r)

	if s.Seq != 42 {
		t.Errorf("seq: %d", s.Seq)
	}
	if len(s.Accounts) != 3 || s.Accounts[0].Account != "alice" || s.Accounts[2].Account != "charlie" {
		t.Errorf("accounts not sorted: %+v", s.Accounts)
	}
	if len(s.Resources) != 2 || s.Resources[0].Resource != "res-a" {
		t.Errorf("resources not sorted: %+v", s.Resources)
	}
	if len(s.Auctions) != 2 || s.Auctions[0].ID != a1.ID || s.Auctions[1].ID != a2.ID {
		t.Errorf("auctions not sorted: %+v", s.Auctions)
	}
}

func TestBuildCopiesBids(t *testing.T) {
	l := ledger.New()
	_ = l.RegisterAccount("seller")
	_ = l.RegisterAccount("alice")
	_ = l.RegisterResource("seller", "res-1")

	r := auction.NewRegistry()
	a, _ := r.OpenForResource(l, "seller", "res-1", 0)
	_, _, _ = r.BidForResource(l, "alice", a.ID, "res-1", 100)

	s := Build(1, l, r)
	if len(s.Auctions) != 1 || len(s.Auctions[0].Bids) != 1 {
		t.Fatalf("snapshot missing bids: %+v", s.Auctions)
	}

	// Mutating the snapshot must not leak back into the live record.
	s.Auctions[0].Bids[0].Amount = 1
	if a.Bids[0].Amount != 100 {
		t.Error("snapshot shares bid storage with the registry")
	}
}
