package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hublead/marketplace-api/internal/core/domain"
	"github.com/hublead/marketplace-api/internal/core/ports"
)

// GrantCache abstracts the advisory grant store (Redis). A hit means the pair
// was disclosed before, so the contact payload can be served without touching
// the primary store. Mongo state stays authoritative; cache failures are
// logged and ignored.
type GrantCache interface {
	Lookup(ctx context.Context, requestID, supplierID string) (*domain.Contact, error)
	Store(ctx context.Context, requestID, supplierID string, contact domain.Contact) error
}

type disclosureService struct {
	requests ports.RequestRepository
	accounts ports.AccountRepository
	grants   GrantCache
	log      zerolog.Logger
}

// NewDisclosureService returns a DisclosureService implementation.
func NewDisclosureService(
	requests ports.RequestRepository,
	accounts ports.AccountRepository,
	grants GrantCache,
	log zerolog.Logger,
) ports.DisclosureService {
	return &disclosureService{
		requests: requests,
		accounts: accounts,
		grants:   grants,
		log:      log,
	}
}

// DiscloseContact applies the credit-metered disclosure rule: at most one
// debit per (request, supplier) pair, balance never negative, unlimited
// entitlement never billed.
func (s *disclosureService) DiscloseContact(ctx context.Context, requestID, supplierID string) (*ports.DiscloseResult, error) {
	// 1. Advisory cache fast-path for replayed calls.
	if contact, err := s.grants.Lookup(ctx, requestID, supplierID); err != nil {
		s.log.Warn().Err(err).Str("request", requestID).Msg("grant cache lookup failed, falling through")
	} else if contact != nil {
		return &ports.DiscloseResult{Contact: *contact, AlreadyGranted: true}, nil
	}

	// 2. Load both records and check eligibility.
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("disclose contact: %w", err)
	}
	if req.Status != domain.StatusApproved {
		return nil, domain.ErrRequestNotEligible
	}

	acct, err := s.accounts.FindByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("disclose contact: %w", err)
	}
	if acct.Role != domain.RoleSupplier {
		return nil, domain.ErrNotSupplier
	}

	// 3. Idempotent replay: an already-granted pair is a no-op success.
	if req.DisclosedToContains(supplierID) {
		s.cacheGrant(ctx, requestID, supplierID, req.Contact)
		return &ports.DiscloseResult{Contact: req.Contact, AlreadyGranted: true}, nil
	}

	// 4. Pre-check the balance before claiming. The snapshot may be stale;
	//    the debit below re-validates server-side.
	if acct.IsMetered() && acct.CreditBalance <= 0 {
		return nil, domain.ErrInsufficientCredit
	}

	// 5. Claim the grant. The set-union append is atomic: among concurrent
	//    first-time calls for this pair, exactly one observes firstTime and
	//    owns the debit. Losers take the replay path.
	firstTime, err := s.requests.AddDisclosureRecipient(ctx, requestID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("disclose contact: claim grant: %w", err)
	}
	if !firstTime {
		s.cacheGrant(ctx, requestID, supplierID, req.Contact)
		return &ports.DiscloseResult{Contact: req.Contact, AlreadyGranted: true}, nil
	}

	// 6. Debit, guarded server-side by balance > 0. On rejection the claim is
	//    compensated so the supplier is never disclosed without being billed.
	charged := false
	if acct.IsMetered() {
		if err := s.accounts.DebitCredit(ctx, supplierID); err != nil {
			s.rollbackGrant(ctx, requestID, supplierID)
			if errors.Is(err, domain.ErrInsufficientCredit) {
				return nil, domain.ErrInsufficientCredit
			}
			return nil, fmt.Errorf("disclose contact: debit: %w", err)
		}
		charged = true
	}

	s.cacheGrant(ctx, requestID, supplierID, req.Contact)

	s.log.Info().
		Str("request", requestID).
		Str("supplier", supplierID).
		Bool("charged", charged).
		Msg("contact disclosed")

	return &ports.DiscloseResult{Contact: req.Contact, Charged: charged}, nil
}

// ListApproved returns all approved requests projected for the supplier,
// optionally filtered by a case-insensitive substring on title or description.
func (s *disclosureService) ListApproved(ctx context.Context, supplierID, filterText string) ([]ports.LeadView, error) {
	requests, err := s.requests.ListByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(filterText))
	views := make([]ports.LeadView, 0, len(requests))
	for _, r := range requests {
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Description), needle) {
			continue
		}

		view := ports.LeadView{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Granted:     r.DisclosedToContains(supplierID),
			CreatedAt:   r.CreatedAt,
		}
		if view.Granted {
			contact := r.Contact
			view.Contact = &contact
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *disclosureService) cacheGrant(ctx context.Context, requestID, supplierID string, contact domain.Contact) {
	if err := s.grants.Store(ctx, requestID, supplierID, contact); err != nil {
		s.log.Warn().Err(err).Str("request", requestID).Msg("failed to cache grant")
	}
}

func (s *disclosureService) rollbackGrant(ctx context.Context, requestID, supplierID string) {
	if err := s.requests.RemoveDisclosureRecipient(ctx, requestID, supplierID); err != nil {
		// The pair is now disclosed but unbilled; flag loudly for reconciliation.
		s.log.Error().Err(err).
			Str("request", requestID).
			Str("supplier", supplierID).
			Msg("failed to roll back disclosure grant after debit failure")
	}
}
