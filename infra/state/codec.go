package state

import (
	"encoding/binary"
	"errors"
	"fmt"

	"bazaar/domain/auction"
	"bazaar/domain/ledger"
)

// Key layout:
//
//	acct/<account id>        -> [balance:8]
//	res/<resource id>        -> owner account id
//	auc/<auction id, padded> -> encoded auction record
//	meta/next_id             -> [id:8]
//	meta/last_seq            -> [seq:8]
const (
	acctPrefix = "acct/"
	resPrefix  = "res/"
	aucPrefix  = "auc/"

	keyNextID  = "meta/next_id"
	keyLastSeq = "meta/last_seq"
)

func acctKey(a ledger.AccountID) []byte {
	return []byte(acctPrefix + string(a))
}

func resKey(r ledger.ResourceID) []byte {
	return []byte(resPrefix + string(r))
}

// Padded so pebble iteration yields auctions in id order.
func aucKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", aucPrefix, id))
}

func encodeU64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func decodeU64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, errors.New("invalid u64 value length")
	}
	return binary.BigEndian.Uint64(b), nil
}

// -------------------- Auction record --------------------

// Encoding:
// [id:8][state:1][maxBid:8]
// [resource:str][initialOwner:str][finalOwner:str][maxBidOwner:str]
// [nbids:4] then per bid: [bidder:str][amount:8]
// where str = [len:4][bytes].

func encodeAuction(a *auction.Auction) []byte {
	n := 8 + 1 + 8 +
		4 + len(a.Resource) +
		4 + len(a.InitialOwner) +
		4 + len(a.FinalOwner) +
		4 + len(a.MaxBidOwner) +
		4
	for _, b := range a.Bids {
		n += 4 + len(b.Bidder) + 8
	}

	buf := make([]byte, 0, n)
	buf = binary.BigEndian.AppendUint64(buf, a.ID)
	buf = append(buf, byte(a.State))
	buf = binary.BigEndian.AppendUint64(buf, a.MaxBid)
	buf = appendStr(buf, string(a.Resource))
	buf = appendStr(buf, string(a.InitialOwner))
	buf = appendStr(buf, string(a.FinalOwner))
	buf = appendStr(buf, string(a.MaxBidOwner))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(a.Bids)))
	for _, b := range a.Bids {
		buf = appendStr(buf, string(b.Bidder))
		buf = binary.BigEndian.AppendUint64(buf, b.Amount)
	}
	return buf
}

func decodeAuction(b []byte) (*auction.Auction, error) {
	d := &decoder{buf: b}

	a := &auction.Auction{}
	a.ID = d.u64()
	a.State = auction.State(d.u8())
	a.MaxBid = d.u64()
	a.Resource = ledger.ResourceID(d.str())
	a.InitialOwner = ledger.AccountID(d.str())
	a.FinalOwner = ledger.AccountID(d.str())
	a.MaxBidOwner = ledger.AccountID(d.str())

	nbids := d.u32()
	a.Bids = make([]auction.BidEntry, 0, nbids)
	for i := uint32(0); i < nbids; i++ {
		bidder := ledger.AccountID(d.str())
		amount := d.u64()
		a.Bids = append(a.Bids, auction.BidEntry{Bidder: bidder, Amount: amount})
	}

	if d.err != nil {
		return nil, d.err
	}
	return a, nil
}

func appendStr(buf []byte, s string) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

// decoder reads the fixed layout above and latches the first error.
type decoder struct {
	buf []byte
	err error
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if len(d.buf) < n {
		d.err = errors.New("truncated auction record")
		return nil
	}
	out := d.buf[:n]
	d.buf = d.buf[n:]
	return out
}

func (d *decoder) u8() uint8 {
	b := d.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *decoder) u32() uint32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (d *decoder) u64() uint64 {
	b := d.take(8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

func (d *decoder) str() string {
	n := d.u32()
	b := d.take(int(n))
	return string(b)
}
