package escrow

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryLedger implements Escrow with in-process bookkeeping. It
// stands in for the native value-transfer primitive, which is an
// external collaborator behind the Escrow interface.
type InMemoryLedger struct {
	lock     sync.Mutex
	pools    map[int64]int64
	balances map[string]int64
}

func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{
		pools:    make(map[int64]int64),
		balances: make(map[string]int64),
	}
}

func (l *InMemoryLedger) Deposit(ctx context.Context, gameID int64, party string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive, got %d", amount)
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	l.pools[gameID] += amount
	return nil
}

func (l *InMemoryLedger) Payout(ctx context.Context, gameID int64, recipient string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("payout amount must be positive, got %d", amount)
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	pool := l.pools[gameID]
	if amount > pool {
		// Paying out more than was collected for a game breaks value
		// conservation and is never recoverable.
		return fmt.Errorf("payout of %d exceeds pool of %d for game %d", amount, pool, gameID)
	}
	l.pools[gameID] = pool - amount
	l.balances[recipient] += amount
	return nil
}

func (l *InMemoryLedger) Pool(ctx context.Context, gameID int64) (int64, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.pools[gameID], nil
}

func (l *InMemoryLedger) Balance(ctx context.Context, party string) (int64, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.balances[party], nil
}
