package service

import (
	"fmt"
	"log"
	"sync"

	"bazaar/domain/auction"
	"bazaar/domain/ledger"
	"bazaar/infra/sequence"
	"bazaar/infra/state"
	entrywal "bazaar/infra/wal/entry"
	exitwal "bazaar/infra/wal/exit"
	"bazaar/snapshot"
)

/*
MarketService is the ONLY write entry point into the system.

All coordination between:
- domain (ledger, auction)
- infra (wal, state, outbox)
happens here.

Commands execute strictly sequentially under one mutex, and each command
either commits fully or leaves every map untouched: domain rejections
happen before the first write, and a journal or state-store write failure
halts the process, since by then the in-memory mutation cannot be undone
or persisted. Restart rebuilds from the store and the WAL tail.
*/

// fatalf halts the process on an unrecoverable infra failure.
// Swappable so tests can observe the halt.
var fatalf = log.Fatalf

type MarketService struct {
	mu sync.Mutex

	ledger *ledger.Ledger
	reg    *auction.Registry

	seqGen   *sequence.Sequencer
	entryWAL *entrywal.WAL
	store    *state.Store
	outbox   *exitwal.Outbox
}

// NewMarketService wires all dependencies.
// No globals. No magic.
func NewMarketService(
	l *ledger.Ledger,
	reg *auction.Registry,
	seqGen *sequence.Sequencer,
	entryWAL *entrywal.WAL,
	store *state.Store,
	outbox *exitwal.Outbox,
) *MarketService {
	return &MarketService{
		ledger:   l,
		reg:      reg,
		seqGen:   seqGen,
		entryWAL: entryWAL,
		store:    store,
		outbox:   outbox,
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// RegisterAccount credits the caller with the one-time total supply.
func (s *MarketService) RegisterAccount(caller ledger.AccountID) (uint64, error) {
	_, seq, err := s.exec(command{typ: entrywal.RecordRegisterAccount, caller: caller})
	return seq, err
}

// RegisterResource assigns an unowned resource to the caller.
func (s *MarketService) RegisterResource(caller ledger.AccountID, res ledger.ResourceID) (uint64, error) {
	_, seq, err := s.exec(command{typ: entrywal.RecordRegisterResource, caller: caller, res: res})
	return seq, err
}

// TransferBalance moves funds between two accounts.
func (s *MarketService) TransferBalance(caller, to ledger.AccountID, amount uint64) (uint64, error) {
	_, seq, err := s.exec(command{typ: entrywal.RecordTransferBalance, caller: caller, to: to, amount: amount})
	return seq, err
}

// TransferResource reassigns resource ownership.
func (s *MarketService) TransferResource(caller, to ledger.AccountID, res ledger.ResourceID) (uint64, error) {
	_, seq, err := s.exec(command{typ: entrywal.RecordTransferResource, caller: caller, to: to, res: res})
	return seq, err
}

// OpenAuction opens an auction for a resource the caller owns and returns
// the allocated auction id.
func (s *MarketService) OpenAuction(caller ledger.AccountID, res ledger.ResourceID, initialBid uint64) (uint64, uint64, error) {
	out, seq, err := s.exec(command{typ: entrywal.RecordOpenAuction, caller: caller, res: res, amount: initialBid})
	return out.auctionID, seq, err
}

// Bid raises the caller's cumulative bid on an open auction.
func (s *MarketService) Bid(caller ledger.AccountID, auctionID uint64, res ledger.ResourceID, amount uint64) (uint64, error) {
	_, seq, err := s.exec(command{typ: entrywal.RecordBid, caller: caller, auctionID: auctionID, res: res, amount: amount})
	return seq, err
}

// FinishAuction closes an open auction, refunds losers and hands the
// resource to the winner. Returns the final owner.
func (s *MarketService) FinishAuction(caller ledger.AccountID, auctionID uint64, res ledger.ResourceID) (ledger.AccountID, uint64, error) {
	out, seq, err := s.exec(command{typ: entrywal.RecordFinishAuction, caller: caller, auctionID: auctionID, res: res})
	return out.finalOwner, seq, err
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

func (s *MarketService) Balance(a ledger.AccountID) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Balance(a)
}

func (s *MarketService) Owner(res ledger.ResourceID) (ledger.AccountID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Owner(res)
}

// Auction returns a copy of the record, bids included.
func (s *MarketService) Auction(id uint64) (auction.Auction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.reg.Get(id)
	if !ok {
		return auction.Auction{}, false
	}
	cp := *a
	cp.Bids = append([]auction.BidEntry(nil), a.Bids...)
	return cp, true
}

func (s *MarketService) OpenAuctions() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.OpenIDs()
}

// Snapshot exports the full market state, sorted and consistent.
func (s *MarketService) Snapshot() *snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot.Build(s.seqGen.Current(), s.ledger, s.reg)
}

//
// ──────────────────────────────────────────────────────────
// Execution pipeline
// ──────────────────────────────────────────────────────────
//

// applyResult carries everything the commit step needs: the touched
// entries and the transfer notifications the command produced.
type applyResult struct {
	cs         state.ChangeSet
	events     []ledger.Transfer
	auctionID  uint64
	finalOwner ledger.AccountID
}

// exec runs one command through the full pipeline: domain apply, WAL
// append, atomic state commit, notification enqueue.
func (s *MarketService) exec(c command) (applyResult, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.apply(c)
	if err != nil {
		return out, 0, err
	}
	return out, s.commit(c, out), nil
}

// apply executes the domain operation. On error, no state was touched.
// Shared between the live path and WAL-tail replay.
func (s *MarketService) apply(c command) (applyResult, error) {
	var out applyResult

	switch c.typ {
	case entrywal.RecordRegisterAccount:
		if err := s.ledger.RegisterAccount(c.caller); err != nil {
			return out, err
		}
		out.cs.Balances = s.balancesOf(c.caller)

	case entrywal.RecordRegisterResource:
		if err := s.ledger.RegisterResource(c.caller, c.res); err != nil {
			return out, err
		}
		out.cs.Resources = map[ledger.ResourceID]ledger.AccountID{c.res: c.caller}

	case entrywal.RecordTransferBalance:
		tr, err := s.ledger.TransferBalance(c.caller, c.to, c.amount)
		if err != nil {
			return out, err
		}
		out.cs.Balances = s.balancesOf(c.caller, c.to)
		out.events = []ledger.Transfer{tr}

	case entrywal.RecordTransferResource:
		if err := s.ledger.TransferResource(c.caller, c.to, c.res); err != nil {
			return out, err
		}
		out.cs.Resources = map[ledger.ResourceID]ledger.AccountID{c.res: c.to}

	case entrywal.RecordOpenAuction:
		a, err := s.reg.OpenForResource(s.ledger, c.caller, c.res, c.amount)
		if err != nil {
			return out, err
		}
		out.cs.Auctions = []*auction.Auction{a}
		out.cs.NextAuctionID = s.reg.NextID()
		out.auctionID = a.ID

	case entrywal.RecordBid:
		a, tr, err := s.reg.BidForResource(s.ledger, c.caller, c.auctionID, c.res, c.amount)
		if err != nil {
			return out, err
		}
		out.cs.Auctions = []*auction.Auction{a}
		out.cs.Balances = s.balancesOf(c.caller, a.InitialOwner)
		out.events = []ledger.Transfer{tr}
		out.auctionID = a.ID

	case entrywal.RecordFinishAuction:
		a, transfers, err := s.reg.FinishForResource(s.ledger, c.caller, c.auctionID, c.res)
		if err != nil {
			return out, err
		}
		touched := []ledger.AccountID{c.caller}
		for _, tr := range transfers {
			touched = append(touched, tr.To)
		}
		out.cs.Auctions = []*auction.Auction{a}
		out.cs.Resources = map[ledger.ResourceID]ledger.AccountID{c.res: a.FinalOwner}
		out.cs.Balances = s.balancesOf(touched...)
		out.events = transfers
		out.auctionID = a.ID
		out.finalOwner = a.FinalOwner

	default:
		return out, fmt.Errorf("unknown command type %d", c.typ)
	}

	return out, nil
}

// commit journals the accepted command, persists its change set atomically
// and enqueues its notifications. The domain maps were already mutated by
// apply, so a journal or store write failure is unrecoverable here: serving
// on would hand out state that a restart cannot reproduce, and an
// unjournaled command retried by the caller would double-apply. Outbox
// failure is deliberately swallowed: the sink is fire-and-forget and must
// never roll back a committed command.
func (s *MarketService) commit(c command, out applyResult) uint64 {
	seq := s.seqGen.Next()

	if err := s.entryWAL.Append(entrywal.NewRecord(c.typ, seq, c.encode())); err != nil {
		fatalf("[market] wal append failed at seq %d: %v", seq, err)
	}

	out.cs.Seq = seq
	if err := s.store.Commit(out.cs); err != nil {
		fatalf("[market] state commit failed at seq %d: %v", seq, err)
	}

	s.enqueue(seq, out.events)
	return seq
}

func (s *MarketService) enqueue(seq uint64, events []ledger.Transfer) {
	if s.outbox == nil {
		return
	}
	for i, tr := range events {
		_ = s.outbox.PutNew(exitwal.Event{
			Seq:    seq,
			Index:  uint32(i),
			From:   string(tr.From),
			To:     string(tr.To),
			Amount: tr.Amount,
		})
	}
}

// balancesOf snapshots the current balances of the touched accounts.
func (s *MarketService) balancesOf(accounts ...ledger.AccountID) map[ledger.AccountID]uint64 {
	m := make(map[ledger.AccountID]uint64, len(accounts))
	for _, a := range accounts {
		bal, _ := s.ledger.Balance(a)
		m[a] = bal
	}
	return m
}
