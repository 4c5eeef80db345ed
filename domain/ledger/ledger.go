package ledger

// AccountID is an opaque, already-authenticated caller identity.
type AccountID string

// ResourceID is an opaque byte sequence chosen by the caller (expected to be
// a content hash, but never validated or hashed here).
type ResourceID string

// TotalSupply is credited to every account exactly once, at registration.
const TotalSupply uint64 = 21_000_000

// Transfer is the notification payload emitted after every successful
// balance movement. Delivery is fire-and-forget; it never affects state.
type Transfer struct {
	From   AccountID
	To     AccountID
	Amount uint64
}

// Ledger owns the authoritative account→balance and resource→owner maps.
// It is single-writer and deterministic: all mutation goes through the
// service layer, one command at a time.
type Ledger struct {
	balances  map[AccountID]uint64
	resources map[ResourceID]AccountID
}

func New() *Ledger {
	return &Ledger{
		balances:  make(map[AccountID]uint64),
		resources: make(map[ResourceID]AccountID),
	}
}

// -------------------- Commands --------------------

// RegisterAccount creates the caller's balance entry and credits the full
// total supply. One-time faucet per account.
func (l *Ledger) RegisterAccount(caller AccountID) error {
	if _, ok := l.balances[caller]; ok {
		return ErrAlreadyRegistered
	}
	l.balances[caller] = TotalSupply
	return nil
}

// RegisterResource assigns an unowned resource to the caller.
// Registration is owner-exclusive: re-registering an owned resource fails
// instead of silently overwriting the owner.
func (l *Ledger) RegisterResource(caller AccountID, res ResourceID) error {
	if _, ok := l.balances[caller]; !ok {
		return ErrSenderNotRegistered
	}
	if _, ok := l.resources[res]; ok {
		return ErrResourceAlreadyOwned
	}
	l.resources[res] = caller
	return nil
}

// TransferBalance debits from and credits to by exactly amount.
// The receiver does not need a balance entry yet; a first credit creates one.
func (l *Ledger) TransferBalance(from, to AccountID, amount uint64) (Transfer, error) {
	bal := l.balances[from]
	if bal < amount {
		return Transfer{}, ErrInsufficientFunds
	}

	updated := l.balances[to] + amount
	if updated < l.balances[to] {
		// Total supply is fixed and bounded; a credit can never wrap.
		panic("ledger: balance overflow")
	}

	l.balances[from] = bal - amount
	l.balances[to] = updated

	return Transfer{From: from, To: to, Amount: amount}, nil
}

// TransferResource reassigns ownership from the caller to another
// registered account.
func (l *Ledger) TransferResource(caller, to AccountID, res ResourceID) error {
	owner, ok := l.resources[res]
	if !ok {
		return ErrResourceNotPresent
	}
	if owner != caller {
		return ErrSenderDoesNotOwnResource
	}
	if _, ok := l.balances[to]; !ok {
		return ErrReceiverNotRegistered
	}
	if _, ok := l.balances[caller]; !ok {
		return ErrReceiverNotRegistered
	}
	l.resources[res] = to
	return nil
}

// -------------------- Queries --------------------

func (l *Ledger) Balance(a AccountID) (uint64, bool) {
	b, ok := l.balances[a]
	return b, ok
}

func (l *Ledger) Registered(a AccountID) bool {
	_, ok := l.balances[a]
	return ok
}

func (l *Ledger) Owner(res ResourceID) (AccountID, bool) {
	o, ok := l.resources[res]
	return o, ok
}

// ---- traversal helpers ----

func (l *Ledger) AccountsWalk(fn func(AccountID, uint64)) {
	for a, b := range l.balances {
		fn(a, b)
	}
}

func (l *Ledger) ResourcesWalk(fn func(ResourceID, AccountID)) {
	for r, o := range l.resources {
		fn(r, o)
	}
}

// -------------------- Recovery --------------------

// RestoreBalance and RestoreResource install entries loaded from the state
// store. They are ONLY used before the service accepts traffic.

func (l *Ledger) RestoreBalance(a AccountID, amount uint64) {
	l.balances[a] = amount
}

func (l *Ledger) RestoreResource(res ResourceID, owner AccountID) {
	l.resources[res] = owner
}
