package auction

import "errors"

var (
	ErrAuctionAlreadyExists = errors.New("auction already exists for resource")
	ErrAuctionDoesNotExist  = errors.New("auction does not exist")
	ErrBidRejected          = errors.New("bid rejected: cumulative total does not beat max bid")
)
