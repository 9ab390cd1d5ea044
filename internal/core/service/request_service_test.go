package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hublead/marketplace-api/internal/core/domain"
	"github.com/hublead/marketplace-api/internal/core/ports"
)

func TestRequestService_Create_StartsPendingWithEmptyDisclosures(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, discardLogger)

	created, err := svc.CreateRequest(context.Background(), ports.CreateRequestInput{
		Title:       "Reforma de telhado",
		Description: "Trocar telhas em casa de 120m2",
		OwnerID:     "buyer_1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Status != domain.StatusPending {
		t.Errorf("status: want pending, got %q", created.Status)
	}
	if len(created.DisclosedTo) != 0 {
		t.Errorf("disclosed_to must start empty, got %v", created.DisclosedTo)
	}
	if created.OwnerID != "buyer_1" {
		t.Errorf("owner: want buyer_1, got %q", created.OwnerID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("created_at must be stamped")
	}
	if created.Contact.Phone == "" || created.Contact.Email == "" {
		t.Errorf("contact payload must be populated, got %+v", created.Contact)
	}
}

func TestRequestService_Create_RejectsEmptyFields(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, discardLogger)

	cases := []ports.CreateRequestInput{
		{Title: "", Description: "desc", OwnerID: "buyer_1"},
		{Title: "titulo", Description: "", OwnerID: "buyer_1"},
		{Title: "   ", Description: "   ", OwnerID: "buyer_1"},
	}
	for _, input := range cases {
		if _, err := svc.CreateRequest(context.Background(), input); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("input %+v: expected ErrInvalidRequest, got %v", input, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Errorf("no request must be stored on validation failure, got %d", len(repo.byID))
	}
}

func TestRequestService_ListMine_ReturnsOnlyOwnRequests(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, discardLogger)

	for _, owner := range []string{"buyer_1", "buyer_1", "buyer_2"} {
		if _, err := svc.CreateRequest(context.Background(), ports.CreateRequestInput{
			Title: "t", Description: "d", OwnerID: owner,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	mine, err := svc.ListMine(context.Background(), "buyer_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 own requests, got %d", len(mine))
	}
	for _, summary := range mine {
		if summary.Status != string(domain.StatusPending) {
			t.Errorf("fresh request must report pending, got %q", summary.Status)
		}
	}
}

func TestRequestService_ListMine_CountsDisclosures(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, discardLogger)

	created, err := svc.CreateRequest(context.Background(), ports.CreateRequestInput{
		Title: "t", Description: "d", OwnerID: "buyer_1",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo.byID[created.ID].Status = domain.StatusApproved
	repo.byID[created.ID].DisclosedTo = []string{"sup_1", "sup_2"}

	mine, err := svc.ListMine(context.Background(), "buyer_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mine[0].Disclosures != 2 {
		t.Errorf("disclosures: want 2, got %d", mine[0].Disclosures)
	}
}
