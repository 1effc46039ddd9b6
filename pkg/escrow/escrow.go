package escrow

import "context"

// Escrow holds staked value in a per-game pool between deposit and
// payout. Implementations must be thread-safe. The game manager is
// the only caller; it deposits at create/join and pays out exactly
// once when a game finishes.
type Escrow interface {
	// Deposit moves amount from party into the pool for gameID.
	Deposit(ctx context.Context, gameID int64, party string, amount int64) error
	// Payout moves amount from the pool for gameID to recipient.
	Payout(ctx context.Context, gameID int64, recipient string, amount int64) error
	// Pool returns the value currently held for gameID.
	Pool(ctx context.Context, gameID int64) (int64, error)
	// Balance returns the value paid out to party so far.
	Balance(ctx context.Context, party string) (int64, error)
}
