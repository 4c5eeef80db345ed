package entry

import "time"

type RecordType uint8

const (
	RecordRegisterAccount RecordType = iota
	RecordRegisterResource
	RecordTransferBalance
	RecordTransferResource
	RecordOpenAuction
	RecordBid
	RecordFinishAuction
)

// Record is one accepted command. The payload is the pipe-separated command
// arguments; the WAL itself never interprets it.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
