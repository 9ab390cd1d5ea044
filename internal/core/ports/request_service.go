package ports

import (
	"context"
	"time"

	"github.com/hublead/marketplace-api/internal/core/domain"
)

// CreateRequestInput carries the buyer-supplied fields for a new request.
type CreateRequestInput struct {
	Title       string
	Description string
	OwnerID     string
}

// RequestSummary is the buyer-facing view of an own request.
type RequestSummary struct {
	ID          string
	Title       string
	Description string
	Status      string
	Disclosures int
	CreatedAt   time.Time
}

// RequestService defines buyer use-cases for service requests.
type RequestService interface {
	CreateRequest(ctx context.Context, input CreateRequestInput) (*domain.Request, error)
	ListMine(ctx context.Context, ownerID string) ([]RequestSummary, error)
}
