package ports

import (
	"context"

	"github.com/hublead/marketplace-api/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
//
// Balance mutations are atomic server-side updates; callers never write a
// balance computed from a client-held copy.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)

	// DebitCredit decrements the balance by one, guarded server-side by
	// balance > 0. Returns domain.ErrInsufficientCredit when the guard
	// rejects the update, so the balance can never go negative.
	DebitCredit(ctx context.Context, id string) error

	// CreditBalance atomically adds delta to the balance (top-up, refund).
	CreditBalance(ctx context.Context, id string, delta int) error

	CountAccounts(ctx context.Context) (int64, error)
}
