package ports

import (
	"context"

	"github.com/hublead/marketplace-api/internal/core/domain"
)

// MarketplaceStats is the admin dashboard summary.
type MarketplaceStats struct {
	PendingRequests  int64
	ApprovedRequests int64
	TotalDisclosures int64
	TotalAccounts    int64
	CreatedPerMonth  map[string]int64
}

// AdminService defines moderation and account-maintenance use-cases.
type AdminService interface {
	// Approve transitions a pending request to approved. Approving an
	// already-approved request is a no-op success.
	Approve(ctx context.Context, requestID string) error

	// Delete removes a request at any status.
	Delete(ctx context.Context, requestID string) error

	// ListPending returns the moderation queue.
	ListPending(ctx context.Context) ([]*domain.Request, error)

	// TopUpCredits adds amount credits to a supplier account.
	TopUpCredits(ctx context.Context, accountID string, amount int) error

	Stats(ctx context.Context) (*MarketplaceStats, error)
}
