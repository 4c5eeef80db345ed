package auction

import "bazaar/domain/ledger"

// Settlement orchestration. Every operation validates all of its
// preconditions before the first write, so a failed call leaves both the
// Registry and the Ledger byte-for-byte unchanged.

// OpenForResource opens an auction for a resource the caller owns.
// initialBid is a floor, not an escrowed amount: no funds move at open time.
func (r *Registry) OpenForResource(l *ledger.Ledger, caller ledger.AccountID, res ledger.ResourceID, initialBid uint64) (*Auction, error) {
	owner, ok := l.Owner(res)
	if !ok {
		return nil, ledger.ErrResourceNotPresent
	}
	if owner != caller {
		return nil, ledger.ErrSenderDoesNotOwnResource
	}
	if _, ok := r.byResource[res]; ok {
		return nil, ErrAuctionAlreadyExists
	}

	id := r.nextID
	r.nextID = id + 1
	r.byResource[res] = id
	r.open = append(r.open, id)

	a := &Auction{
		ID:           id,
		Resource:     res,
		State:        Open,
		InitialOwner: caller,
		MaxBidOwner:  caller,
		MaxBid:       initialBid,
		Bids:         make([]BidEntry, 0, 20),
	}
	r.auctions[id] = a
	return a, nil
}

// BidForResource raises the caller's cumulative bid by amount.
//
// Acceptance is strict: the new cumulative total must exceed the current
// max bid; a tie is rejected since the mechanism has no tiebreak rule.
// Each accepted increment is paid to the seller immediately, so the seller
// receives funds progressively and losers are made whole at finish time.
func (r *Registry) BidForResource(l *ledger.Ledger, caller ledger.AccountID, auctionID uint64, res ledger.ResourceID, amount uint64) (*Auction, ledger.Transfer, error) {
	id, ok := r.byResource[res]
	if !ok || id != auctionID {
		return nil, ledger.Transfer{}, ErrAuctionDoesNotExist
	}
	a := r.auctions[id]

	newTotal := a.CumulativeBid(caller) + amount
	if newTotal <= a.MaxBid {
		return nil, ledger.Transfer{}, ErrBidRejected
	}

	// The increment moves first: if the caller cannot fund it, the bid
	// aborts with no record mutation.
	tr, err := l.TransferBalance(caller, a.InitialOwner, amount)
	if err != nil {
		return nil, ledger.Transfer{}, err
	}

	if i := a.bidIndex(caller); i >= 0 {
		a.Bids[i].Amount = newTotal
	} else {
		a.Bids = append(a.Bids, BidEntry{Bidder: caller, Amount: newTotal})
	}
	a.MaxBid = newTotal
	a.MaxBidOwner = caller

	return a, tr, nil
}

// FinishForResource closes an auction: the record flips to Finished, every
// losing bidder is refunded their full cumulative amount by the caller, and
// ownership of the resource moves to the highest bidder.
//
// All transfers are pre-validated (winner registration, refund coverage)
// before the first write, so settlement can never half-complete.
func (r *Registry) FinishForResource(l *ledger.Ledger, caller ledger.AccountID, auctionID uint64, res ledger.ResourceID) (*Auction, []ledger.Transfer, error) {
	owner, ok := l.Owner(res)
	if !ok {
		return nil, nil, ledger.ErrResourceNotPresent
	}
	if owner != caller {
		return nil, nil, ledger.ErrSenderDoesNotOwnResource
	}
	id, ok := r.byResource[res]
	if !ok || id != auctionID {
		return nil, nil, ErrAuctionDoesNotExist
	}
	a := r.auctions[id]
	winner := a.MaxBidOwner

	// Resource-transfer preconditions, checked up front.
	if !l.Registered(winner) || !l.Registered(caller) {
		return nil, nil, ledger.ErrReceiverNotRegistered
	}

	// Refund coverage, checked up front. The caller received every
	// accepted increment during bidding, but may have spent some of it.
	var owed uint64
	for _, b := range a.Bids {
		if b.Bidder != winner {
			owed += b.Amount
		}
	}
	if bal, _ := l.Balance(caller); bal < owed {
		return nil, nil, ledger.ErrInsufficientFunds
	}

	a.State = Finished
	a.FinalOwner = winner
	delete(r.byResource, res)
	r.dropOpen(id)

	var transfers []ledger.Transfer
	for _, b := range a.Bids {
		if b.Bidder == winner {
			continue
		}
		tr, err := l.TransferBalance(caller, b.Bidder, b.Amount)
		if err != nil {
			// Coverage was checked above.
			panic("auction: refund failed after validation")
		}
		transfers = append(transfers, tr)
	}

	if err := l.TransferResource(caller, winner, res); err != nil {
		// Ownership and registration were checked above.
		panic("auction: resource transfer failed after validation")
	}

	return a, transfers, nil
}
