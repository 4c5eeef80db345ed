package auction

import "bazaar/domain/ledger"

type State uint8

const (
	Open State = iota
	Finished
)

func (s State) String() string {
	switch s {
	case Open:
		return "OPEN"
	case Finished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// BidEntry records one bidder's cumulative commitment. A bidder appears at
// most once; repeat bids raise the same entry.
type BidEntry struct {
	Bidder ledger.AccountID
	Amount uint64
}

// Auction is a time-unbounded bidding process over one resource. It is
// closed only by an explicit Finish from the resource owner.
//
// Invariants:
//   - State == Open implies FinalOwner is empty.
//   - MaxBid is the highest cumulative amount in Bids, or the floor set at
//     open time while Bids is empty.
//   - MaxBidOwner is the account behind MaxBid.
type Auction struct {
	ID           uint64
	Resource     ledger.ResourceID
	State        State
	InitialOwner ledger.AccountID
	FinalOwner   ledger.AccountID
	MaxBidOwner  ledger.AccountID
	MaxBid       uint64
	Bids         []BidEntry
}

// bidIndex returns the position of bidder's entry, or -1.
func (a *Auction) bidIndex(bidder ledger.AccountID) int {
	for i, b := range a.Bids {
		if b.Bidder == bidder {
			return i
		}
	}
	return -1
}

// CumulativeBid returns bidder's running total (0 if the bidder never bid).
func (a *Auction) CumulativeBid(bidder ledger.AccountID) uint64 {
	if i := a.bidIndex(bidder); i >= 0 {
		return a.Bids[i].Amount
	}
	return 0
}
