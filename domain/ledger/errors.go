package ledger

import "errors"

// Every error here is a caller-input precondition violation. There is no
// internal-fault category: the only unrecoverable condition (credit overflow
// past total supply) is asserted, not returned.
var (
	ErrAlreadyRegistered        = errors.New("account already registered")
	ErrSenderNotRegistered      = errors.New("sender not registered")
	ErrReceiverNotRegistered    = errors.New("receiver not registered")
	ErrResourceNotPresent       = errors.New("resource not present")
	ErrSenderDoesNotOwnResource = errors.New("sender does not own resource")
	ErrResourceAlreadyOwned     = errors.New("resource already owned")
	ErrInsufficientFunds        = errors.New("insufficient funds")
)
