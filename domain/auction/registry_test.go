package auction

import (
	"testing"

	"bazaar/domain/ledger"
)

func TestRestoreRebuildsOpenSet(t *testing.T) {
	r := NewRegistry()

	r.RestoreAuction(&Auction{ID: 10, Resource: "res-a", State: Finished, FinalOwner: "alice"})
	r.RestoreAuction(&Auction{ID: 11, Resource: "res-b", State: Open, InitialOwner: "bob", MaxBidOwner: "bob"})
	r.RestoreAuction(&Auction{ID: 12, Resource: "res-c", State: Open, InitialOwner: "carl", MaxBidOwner: "carl"})
	r.RestoreNextID(13)

	open := r.OpenIDs()
	if len(open) != 2 || open[0] != 11 || open[1] != 12 {
		t.Fatalf("open set wrong: %v", open)
	}
	if id, ok := r.OpenID("res-b"); !ok || id != 11 {
		t.Errorf("reverse index wrong for res-b: %d (ok=%v)", id, ok)
	}
	if _, ok := r.OpenID("res-a"); ok {
		t.Error("finished auction must not be indexed by resource")
	}
	if r.NextID() != 13 {
		t.Errorf("next id: expected 13, got %d", r.NextID())
	}
}

func TestRestoredRegistryAcceptsNewAuctions(t *testing.T) {
	l := ledger.New()
	_ = l.RegisterAccount("alice")
	_ = l.RegisterResource("alice", "res-a")

	r := NewRegistry()
	r.RestoreAuction(&Auction{ID: 10, Resource: "res-x", State: Finished})
	r.RestoreNextID(11)

	a, err := r.OpenForResource(l, "alice", "res-a", 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if a.ID != 11 {
		t.Fatalf("expected id 11, got %d", a.ID)
	}
}
