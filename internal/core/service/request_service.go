package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hublead/marketplace-api/internal/core/domain"
	"github.com/hublead/marketplace-api/internal/core/ports"
)

// placeholderContact is stamped on every new request. The original product
// reveals a fixed payload instead of buyer-supplied data.
// TODO: capture real buyer contact details at creation.
var placeholderContact = domain.Contact{
	Name:  "Cliente Teste",
	Phone: "(11) 99999-9999",
	Email: "cliente@email.com",
}

type RequestService struct {
	repo   ports.RequestRepository
	logger zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, logger zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, logger: logger}
}

// CreateRequest posts a new service request. It always starts pending with an
// empty disclosure set; only an administrator can approve it.
func (s *RequestService) CreateRequest(ctx context.Context, input ports.CreateRequestInput) (*domain.Request, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, domain.ErrInvalidRequest
	}

	request := &domain.Request{
		Title:       title,
		Description: description,
		OwnerID:     input.OwnerID,
		Status:      domain.StatusPending,
		DisclosedTo: []string{},
		Contact:     placeholderContact,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, request)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create request")
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info().Str("request", created.ID).Str("owner", input.OwnerID).Msg("request created")
	return created, nil
}

// ListMine returns the caller's own requests, newest first ordering is left
// to the repository.
func (s *RequestService) ListMine(ctx context.Context, ownerID string) ([]ports.RequestSummary, error) {
	requests, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list own requests: %w", err)
	}

	summaries := make([]ports.RequestSummary, 0, len(requests))
	for _, r := range requests {
		summaries = append(summaries, ports.RequestSummary{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Status:      string(r.Status),
			Disclosures: len(r.DisclosedTo),
			CreatedAt:   r.CreatedAt,
		})
	}
	return summaries, nil
}
