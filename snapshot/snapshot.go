// Package snapshot builds a consistent, sorted export of the whole market
// state. It backs the snapshot query; durability is the state store's job.
package snapshot

import (
	"sort"
	"time"

	"bazaar/domain/auction"
	"bazaar/domain/ledger"
)

type Snapshot struct {
	Seq       uint64
	Created   time.Time
	Accounts  []AccountEntry
	Resources []ResourceEntry
	Auctions  []AuctionEntry
}

type AccountEntry struct {
	Account ledger.AccountID
	Balance uint64
}

type ResourceEntry struct {
	Resource ledger.ResourceID
	Owner    ledger.AccountID
}

type AuctionEntry struct {
	ID           uint64
	Resource     ledger.ResourceID
	State        auction.State
	InitialOwner ledger.AccountID
	FinalOwner   ledger.AccountID
	MaxBidOwner  ledger.AccountID
	MaxBid       uint64
	Bids         []auction.BidEntry
}

// Build captures the current state. The caller must hold the command lock;
// entries are sorted so two captures of identical state compare equal.
func Build(seq uint64, l *ledger.Ledger, reg *auction.Registry) *Snapshot {
	s := &Snapshot{
		Seq:     seq,
		Created: time.Now(),
	}

	l.AccountsWalk(func(a ledger.AccountID, bal uint64) {
		s.Accounts = append(s.Accounts, AccountEntry{Account: a, Balance: bal})
	})
	sort.Slice(s.Accounts, func(i, j int) bool {
		return s.Accounts[i].Account < s.Accounts[j].Account
	})

	l.ResourcesWalk(func(r ledger.ResourceID, owner ledger.AccountID) {
		s.Resources = append(s.Resources, ResourceEntry{Resource: r, Owner: owner})
	})
	sort.Slice(s.Resources, func(i, j int) bool {
		return s.Resources[i].Resource < s.Resources[j].Resource
	})

	reg.Walk(func(a *auction.Auction) {
		s.Auctions = append(s.Auctions, AuctionEntry{
			ID:           a.ID,
			Resource:     a.Resource,
			State:        a.State,
			InitialOwner: a.InitialOwner,
			FinalOwner:   a.FinalOwner,
			MaxBidOwner:  a.MaxBidOwner,
			MaxBid:       a.MaxBid,
			Bids:         append([]auction.BidEntry(nil), a.Bids...),
		})
	})
	sort.Slice(s.Auctions, func(i, j int) bool {
		return s.Auctions[i].ID < s.Auctions[j].ID
	})

	return s
}
