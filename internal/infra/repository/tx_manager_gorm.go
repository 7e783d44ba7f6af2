package repository

import (
	"context"

	repo "swadwala/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders repo.OrderRepository
	shops  repo.ShopRepository
	items  repo.ItemRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository { return r.orders }
func (r *txReposGorm) Shops() repo.ShopRepository   { return r.shops }
func (r *txReposGorm) Items() repo.ItemRepository   { return r.items }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// rebuild the repos on the tx-scoped DB handle
		r := &txReposGorm{
			orders: NewOrderGormRepository(tx),
			shops:  NewShopGormRepository(tx),
			items:  NewItemGormRepository(tx),
		}
		return fn(r)
	})
}
