package accountrepo

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bankledger/internal/account"
	"github.com/GlebRadaev/bankledger/internal/domain"
)

// Repository keeps accounts in memory for the lifetime of the process.
type Repository struct {
	mu       sync.RWMutex
	accounts map[string]*account.Account
}

func New() *Repository {
	return &Repository{
		accounts: make(map[string]*account.Account),
	}
}

func (r *Repository) FindByNumber(ctx context.Context, number string) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[number]
	if !ok {
		return nil, nil
	}
	return acc, nil
}

func (r *Repository) Create(ctx context.Context, acc *account.Account) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[acc.Number()]; ok {
		zap.L().Error("can't save account", zap.String("number", acc.Number()), zap.Error(domain.ErrAccountExists))
		return nil, domain.ErrAccountExists
	}
	r.accounts[acc.Number()] = acc
	return acc, nil
}

// List returns every stored account ordered by account number.
func (r *Repository) List(ctx context.Context) ([]*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	accounts := make([]*account.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		accounts = append(accounts, acc)
	}
	r.mu.RUnlock()

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Number() < accounts[j].Number()
	})
	return accounts, nil
}
