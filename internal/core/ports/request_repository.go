package ports

import (
	"context"
	"time"

	"github.com/hublead/marketplace-api/internal/core/domain"
)

// StatusCounts summarizes the request collection for the admin dashboard.
type StatusCounts struct {
	Pending          int64
	Approved         int64
	TotalDisclosures int64
	// CreatedPerMonth maps "2006-01" to the number of requests created
	// in that month.
	CreatedPerMonth map[string]int64
}

// RequestRepository defines persistence operations for service requests.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.Request) (*domain.Request, error)
	FindByID(ctx context.Context, id string) (*domain.Request, error)
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.Request, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Request, error)

	// AddDisclosureRecipient appends supplierID to the request's disclosure
	// set with set-union semantics. firstTime is true only for the call that
	// actually grew the set; among concurrent calls for one pair, exactly one
	// caller observes firstTime.
	AddDisclosureRecipient(ctx context.Context, requestID, supplierID string) (firstTime bool, err error)

	// RemoveDisclosureRecipient undoes a grant. Used only as the
	// compensating action when the paired debit is rejected.
	RemoveDisclosureRecipient(ctx context.Context, requestID, supplierID string) error

	SetStatus(ctx context.Context, requestID string, status domain.RequestStatus, at time.Time) error
	Delete(ctx context.Context, requestID string) error

	Stats(ctx context.Context) (*StatusCounts, error)
}
