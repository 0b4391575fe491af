package database

import "context"

// TxRunner runs fn inside a single logical transaction. The engine
// depends on this interface rather than on pgx directly so unit tests
// can substitute a pass-through runner with fixture repositories.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
