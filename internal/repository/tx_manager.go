package repository

import "context"

// Repositories visible inside a transaction.
type TxRepos interface {
	Orders() OrderRepository
	Shops() ShopRepository
	Items() ItemRepository
}

// TransactionManager hides begin/commit/rollback from the usecases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
