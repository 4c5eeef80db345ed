package grpcserver

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "bazaar/api/pb"
	"bazaar/domain/auction"
	"bazaar/domain/ledger"
	"bazaar/service"
)

// Server adapts MarketService to gRPC.
type Server struct {
	pb.UnimplementedMarketServer
	svc *service.MarketService
}

func NewServer(svc *service.MarketService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) RegisterAccount(
	ctx context.Context,
	req *pb.RegisterAccountRequest,
) (*pb.CommandReply, error) {
	seq, err := s.svc.RegisterAccount(ledger.AccountID(req.Caller))
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf("[gRPC] RegisterAccount caller=%s seq=%d", req.Caller, seq)
	return &pb.CommandReply{Status: "ok", Seq: seq}, nil
}

func (s *Server) RegisterResource(
	ctx context.Context,
	req *pb.RegisterResourceRequest,
) (*pb.CommandReply, error) {
	seq, err := s.svc.RegisterResource(
		ledger.AccountID(req.Caller),
		ledger.ResourceID(req.Resource),
	)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf("[gRPC] RegisterResource caller=%s seq=%d", req.Caller, seq)
	return &pb.CommandReply{Status: "ok", Seq: seq}, nil
}

func (s *Server) TransferBalance(
	ctx context.Context,
	req *pb.TransferBalanceRequest,
) (*pb.CommandReply, error) {
	seq, err := s.svc.TransferBalance(
		ledger.AccountID(req.Caller),
		ledger.AccountID(req.To),
		req.Amount,
	)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] TransferBalance from=%s to=%s amount=%d seq=%d",
		req.Caller, req.To, req.Amount, seq,
	)
	return &pb.CommandReply{Status: "ok", Seq: seq}, nil
}

func (s *Server) TransferResource(
	ctx context.Context,
	req *pb.TransferResourceRequest,
) (*pb.CommandReply, error) {
	seq, err := s.svc.TransferResource(
		ledger.AccountID(req.Caller),
		ledger.AccountID(req.To),
		ledger.ResourceID(req.Resource),
	)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf("[gRPC] TransferResource from=%s to=%s seq=%d", req.Caller, req.To, seq)
	return &pb.CommandReply{Status: "ok", Seq: seq}, nil
}

func (s *Server) OpenAuction(
	ctx context.Context,
	req *pb.OpenAuctionRequest,
) (*pb.OpenAuctionReply, error) {
	id, seq, err := s.svc.OpenAuction(
		ledger.AccountID(req.Caller),
		ledger.ResourceID(req.Resource),
		req.InitialBid,
	)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] OpenAuction caller=%s auction=%d initial_bid=%d seq=%d",
		req.Caller, id, req.InitialBid, seq,
	)
	return &pb.OpenAuctionReply{Status: "ok", Seq: seq, AuctionId: id}, nil
}

func (s *Server) Bid(
	ctx context.Context,
	req *pb.BidRequest,
) (*pb.CommandReply, error) {
	seq, err := s.svc.Bid(
		ledger.AccountID(req.Caller),
		req.AuctionId,
		ledger.ResourceID(req.Resource),
		req.Amount,
	)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] Bid caller=%s auction=%d amount=%d seq=%d",
		req.Caller, req.AuctionId, req.Amount, seq,
	)
	return &pb.CommandReply{Status: "ok", Seq: seq}, nil
}

func (s *Server) FinishAuction(
	ctx context.Context,
	req *pb.FinishAuctionRequest,
) (*pb.FinishAuctionReply, error) {
	winner, seq, err := s.svc.FinishAuction(
		ledger.AccountID(req.Caller),
		req.AuctionId,
		ledger.ResourceID(req.Resource),
	)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] FinishAuction auction=%d winner=%s seq=%d",
		req.AuctionId, winner, seq,
	)
	return &pb.FinishAuctionReply{
		Status:     "ok",
		Seq:        seq,
		FinalOwner: string(winner),
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetSnapshot(
	ctx context.Context,
	req *pb.SnapshotRequest,
) (*pb.SnapshotReply, error) {
	snap := s.svc.Snapshot()

	resp := &pb.SnapshotReply{
		Seq:       snap.Seq,
		Accounts:  make([]*pb.AccountEntry, 0, len(snap.Accounts)),
		Resources: make([]*pb.ResourceEntry, 0, len(snap.Resources)),
		Auctions:  make([]*pb.AuctionEntry, 0, len(snap.Auctions)),
	}

	for _, a := range snap.Accounts {
		resp.Accounts = append(resp.Accounts, &pb.AccountEntry{
			Account: string(a.Account),
			Balance: a.Balance,
		})
	}
	for _, r := range snap.Resources {
		resp.Resources = append(resp.Resources, &pb.ResourceEntry{
			Resource: []byte(r.Resource),
			Owner:    string(r.Owner),
		})
	}
	for _, a := range snap.Auctions {
		resp.Auctions = append(resp.Auctions, &pb.AuctionEntry{
			Id:          a.ID,
			Resource:    []byte(a.Resource),
			State:       a.State.String(),
			MaxBidOwner: string(a.MaxBidOwner),
			MaxBid:      a.MaxBid,
			FinalOwner:  string(a.FinalOwner),
		})
	}

	return resp, nil
}

// -------------------- Error mapping --------------------

// toStatus maps domain rejections to gRPC codes. Anything unrecognized is
// an internal pipeline failure (WAL, state store).
func toStatus(err error) error {
	switch {
	case errors.Is(err, ledger.ErrAlreadyRegistered),
		errors.Is(err, ledger.ErrResourceAlreadyOwned),
		errors.Is(err, auction.ErrAuctionAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, ledger.ErrResourceNotPresent),
		errors.Is(err, auction.ErrAuctionDoesNotExist):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, ledger.ErrSenderNotRegistered),
		errors.Is(err, ledger.ErrReceiverNotRegistered),
		errors.Is(err, ledger.ErrSenderDoesNotOwnResource),
		errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, auction.ErrBidRejected):
		return status.Error(codes.FailedPrecondition, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
