package repository

import "context"

// TxManager runs a function inside a database transaction. The transaction
// travels on the returned context, so repository calls made with that context
// share it and commit or roll back together.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
