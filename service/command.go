package service

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"bazaar/domain/ledger"
	entrywal "bazaar/infra/wal/entry"
)

// command is one parsed, caller-identity-carrying request. Identity fields
// are opaque byte sequences, so WAL payloads hex-encode them to keep the
// pipe framing unambiguous.
type command struct {
	typ       entrywal.RecordType
	caller    ledger.AccountID
	to        ledger.AccountID
	res       ledger.ResourceID
	auctionID uint64
	amount    uint64
}

func (c command) encode() []byte {
	caller := hex.EncodeToString([]byte(c.caller))
	to := hex.EncodeToString([]byte(c.to))
	res := hex.EncodeToString([]byte(c.res))

	var payload string
	switch c.typ {
	case entrywal.RecordRegisterAccount:
		payload = caller
	case entrywal.RecordRegisterResource:
		payload = fmt.Sprintf("%s|%s", caller, res)
	case entrywal.RecordTransferBalance:
		payload = fmt.Sprintf("%s|%s|%d", caller, to, c.amount)
	case entrywal.RecordTransferResource:
		payload = fmt.Sprintf("%s|%s|%s", caller, to, res)
	case entrywal.RecordOpenAuction:
		payload = fmt.Sprintf("%s|%s|%d", caller, res, c.amount)
	case entrywal.RecordBid:
		payload = fmt.Sprintf("%s|%d|%s|%d", caller, c.auctionID, res, c.amount)
	case entrywal.RecordFinishAuction:
		payload = fmt.Sprintf("%s|%d|%s", caller, c.auctionID, res)
	}
	return []byte(payload)
}

func decodeCommand(rec *entrywal.Record) (command, error) {
	parts := strings.Split(string(rec.Data), "|")
	c := command{typ: rec.Type}

	want := map[entrywal.RecordType]int{
		entrywal.RecordRegisterAccount:  1,
		entrywal.RecordRegisterResource: 2,
		entrywal.RecordTransferBalance:  3,
		entrywal.RecordTransferResource: 3,
		entrywal.RecordOpenAuction:      3,
		entrywal.RecordBid:              4,
		entrywal.RecordFinishAuction:    3,
	}[rec.Type]
	if want == 0 || len(parts) != want {
		return c, fmt.Errorf("invalid WAL payload for type %d: %q", rec.Type, rec.Data)
	}

	var err error
	switch rec.Type {
	case entrywal.RecordRegisterAccount:
		c.caller, err = decodeAccount(parts[0])

	case entrywal.RecordRegisterResource:
		if c.caller, err = decodeAccount(parts[0]); err == nil {
			c.res, err = decodeResource(parts[1])
		}

	case entrywal.RecordTransferBalance:
		if c.caller, err = decodeAccount(parts[0]); err == nil {
			if c.to, err = decodeAccount(parts[1]); err == nil {
				c.amount, err = strconv.ParseUint(parts[2], 10, 64)
			}
		}

	case entrywal.RecordTransferResource:
		if c.caller, err = decodeAccount(parts[0]); err == nil {
			if c.to, err = decodeAccount(parts[1]); err == nil {
				c.res, err = decodeResource(parts[2])
			}
		}

	case entrywal.RecordOpenAuction:
		if c.caller, err = decodeAccount(parts[0]); err == nil {
			if c.res, err = decodeResource(parts[1]); err == nil {
				c.amount, err = strconv.ParseUint(parts[2], 10, 64)
			}
		}

	case entrywal.RecordBid:
		if c.caller, err = decodeAccount(parts[0]); err == nil {
			if c.auctionID, err = strconv.ParseUint(parts[1], 10, 64); err == nil {
				if c.res, err = decodeResource(parts[2]); err == nil {
					c.amount, err = strconv.ParseUint(parts[3], 10, 64)
				}
			}
		}

	case entrywal.RecordFinishAuction:
		if c.caller, err = decodeAccount(parts[0]); err == nil {
			if c.auctionID, err = strconv.ParseUint(parts[1], 10, 64); err == nil {
				c.res, err = decodeResource(parts[2])
			}
		}
	}

	return c, err
}

func decodeAccount(s string) (ledger.AccountID, error) {
	b, err := hex.DecodeString(s)
	return ledger.AccountID(b), err
}

func decodeResource(s string) (ledger.ResourceID, error) {
	b, err := hex.DecodeString(s)
	return ledger.ResourceID(b), err
}
