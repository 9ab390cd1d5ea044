package ports

import (
	"context"
	"time"

	"github.com/hublead/marketplace-api/internal/core/domain"
)

// DiscloseResult is returned by DiscloseContact. The UI reconciles from this
// authoritative result; it never assumes success ahead of it.
type DiscloseResult struct {
	Contact domain.Contact
	// AlreadyGranted is true when the pair was disclosed before this call
	// (idempotent replay — no charge happened now).
	AlreadyGranted bool
	// Charged is true when exactly one credit was debited by this call.
	Charged bool
}

// LeadView is a supplier-facing projection of an approved request. Contact is
// populated only when Granted is true.
type LeadView struct {
	ID          string
	Title       string
	Description string
	Granted     bool
	Contact     *domain.Contact
	CreatedAt   time.Time
}

// DisclosureService is the credit-metered contact-disclosure ledger.
type DisclosureService interface {
	// DiscloseContact grants the supplier access to the request's contact
	// payload, debiting one credit for standard-entitlement suppliers.
	// Repeated calls for an already-granted pair are a no-op success.
	DiscloseContact(ctx context.Context, requestID, supplierID string) (*DiscloseResult, error)

	// ListApproved returns all approved requests, optionally filtered by a
	// case-insensitive substring match on title or description, projected
	// for the given supplier.
	ListApproved(ctx context.Context, supplierID, filterText string) ([]LeadView, error)
}
