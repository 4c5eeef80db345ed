package auction

import "bazaar/domain/ledger"

// FirstAuctionID is where the id counter starts. Ids are strictly
// increasing, gapless, never reused.
const FirstAuctionID uint64 = 10

// Registry owns the auction bookkeeping: the id counter, the set of open
// auction ids, the resource→auction reverse index, and the records
// themselves. Finished records persist; only the open-set membership and
// the reverse-index entry are dropped at finish, which is what makes a
// resource auctionable again.
//
// Like the Ledger, the Registry is single-writer: commands arrive strictly
// sequentially through the service layer.
type Registry struct {
	nextID     uint64
	open       []uint64
	byResource map[ledger.ResourceID]uint64
	auctions   map[uint64]*Auction
}

func NewRegistry() *Registry {
	return &Registry{
		nextID:     FirstAuctionID,
		open:       make([]uint64, 0, 20),
		byResource: make(map[ledger.ResourceID]uint64),
		auctions:   make(map[uint64]*Auction),
	}
}

// -------------------- Queries --------------------

func (r *Registry) Get(id uint64) (*Auction, bool) {
	a, ok := r.auctions[id]
	return a, ok
}

// OpenID returns the id of the open auction for res, if any.
func (r *Registry) OpenID(res ledger.ResourceID) (uint64, bool) {
	id, ok := r.byResource[res]
	return id, ok
}

// OpenIDs returns the ids of all open auctions, oldest first.
func (r *Registry) OpenIDs() []uint64 {
	out := make([]uint64, len(r.open))
	copy(out, r.open)
	return out
}

// NextID returns the id the next opened auction will receive.
func (r *Registry) NextID() uint64 {
	return r.nextID
}

func (r *Registry) Walk(fn func(*Auction)) {
	for _, a := range r.auctions {
		fn(a)
	}
}

// -------------------- Internal bookkeeping --------------------

func (r *Registry) dropOpen(id uint64) {
	for i, v := range r.open {
		if v == id {
			r.open = append(r.open[:i], r.open[i+1:]...)
			return
		}
	}
}

// -------------------- Recovery --------------------

// RestoreAuction installs a record loaded from the state store and rebuilds
// the open-set and reverse-index entries it implies. ONLY used before the
// service accepts traffic.
func (r *Registry) RestoreAuction(a *Auction) {
	r.auctions[a.ID] = a
	if a.State == Open {
		r.open = append(r.open, a.ID)
		r.byResource[a.Resource] = a.ID
	}
}

// RestoreNextID resumes the id counter after recovery.
func (r *Registry) RestoreNextID(v uint64) {
	r.nextID = v
}
