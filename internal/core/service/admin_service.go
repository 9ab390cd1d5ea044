package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hublead/marketplace-api/internal/core/domain"
	"github.com/hublead/marketplace-api/internal/core/ports"
)

type AdminService struct {
	requests ports.RequestRepository
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewAdminService(requests ports.RequestRepository, accounts ports.AccountRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{requests: requests, accounts: accounts, logger: logger}
}

// Approve transitions a pending request to approved and stamps the approval
// time. Re-approving is a no-op success; there is no way back to pending.
func (s *AdminService) Approve(ctx context.Context, requestID string) error {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("approve request: %w", err)
	}
	if req.Status == domain.StatusApproved {
		return nil
	}

	if err := s.requests.SetStatus(ctx, requestID, domain.StatusApproved, time.Now().UTC()); err != nil {
		return fmt.Errorf("approve request: %w", err)
	}

	s.logger.Info().Str("request", requestID).Msg("request approved")
	return nil
}

// Delete removes a request at any status.
func (s *AdminService) Delete(ctx context.Context, requestID string) error {
	if err := s.requests.Delete(ctx, requestID); err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	s.logger.Info().Str("request", requestID).Msg("request deleted")
	return nil
}

// ListPending returns the moderation queue.
func (s *AdminService) ListPending(ctx context.Context) ([]*domain.Request, error) {
	requests, err := s.requests.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}
	return requests, nil
}

// TopUpCredits adds amount credits to a supplier account via the store's
// atomic increment.
func (s *AdminService) TopUpCredits(ctx context.Context, accountID string, amount int) error {
	if amount <= 0 {
		return domain.ErrInvalidTopUp
	}

	acct, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("top up credits: %w", err)
	}
	if acct.Role != domain.RoleSupplier {
		return domain.ErrNotSupplier
	}

	if err := s.accounts.CreditBalance(ctx, accountID, amount); err != nil {
		return fmt.Errorf("top up credits: %w", err)
	}

	s.logger.Info().Str("account", accountID).Int("amount", amount).Msg("credits added")
	return nil
}

// Stats aggregates the admin dashboard figures.
func (s *AdminService) Stats(ctx context.Context) (*ports.MarketplaceStats, error) {
	counts, err := s.requests.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	users, err := s.accounts.CountAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	return &ports.MarketplaceStats{
		PendingRequests:  counts.Pending,
		ApprovedRequests: counts.Approved,
		TotalDisclosures: counts.TotalDisclosures,
		TotalAccounts:    users,
		CreatedPerMonth:  counts.CreatedPerMonth,
	}, nil
}
