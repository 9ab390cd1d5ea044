package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hublead/marketplace-api/internal/core/domain"
)

func TestAdminService_Approve_TransitionsPending(t *testing.T) {
	requests := newStubRequestRepo()
	accounts := newStubAccountRepo()
	svc := NewAdminService(requests, accounts, discardLogger)
	seedRequest(t, requests, "req_1", domain.StatusPending)

	if err := svc.Approve(context.Background(), "req_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := requests.byID["req_1"]
	if stored.Status != domain.StatusApproved {
		t.Errorf("status: want approved, got %q", stored.Status)
	}
	if stored.ApprovedAt.IsZero() {
		t.Error("approved_at must be stamped")
	}
}

func TestAdminService_Approve_AlreadyApprovedIsNoOp(t *testing.T) {
	requests := newStubRequestRepo()
	accounts := newStubAccountRepo()
	svc := NewAdminService(requests, accounts, discardLogger)
	seedRequest(t, requests, "req_1", domain.StatusApproved)
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	requests.byID["req_1"].ApprovedAt = stamp

	if err := svc.Approve(context.Background(), "req_1"); err != nil {
		t.Fatalf("re-approval must be a no-op success, got %v", err)
	}
	if !requests.byID["req_1"].ApprovedAt.Equal(stamp) {
		t.Error("re-approval must not restamp approved_at")
	}
}

func TestAdminService_Approve_NotFound(t *testing.T) {
	requests := newStubRequestRepo()
	accounts := newStubAccountRepo()
	svc := NewAdminService(requests, accounts, discardLogger)

	err := svc.Approve(context.Background(), "req_missing")
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestAdminService_Delete_AnyStatus(t *testing.T) {
	requests := newStubRequestRepo()
	accounts := newStubAccountRepo()
	svc := NewAdminService(requests, accounts, discardLogger)
	seedRequest(t, requests, "req_pending", domain.StatusPending)
	seedRequest(t, requests, "req_approved", domain.StatusApproved)

	for _, id := range []string{"req_pending", "req_approved"} {
		if err := svc.Delete(context.Background(), id); err != nil {
			t.Errorf("delete %s: %v", id, err)
		}
	}
	if len(requests.byID) != 0 {
		t.Errorf("expected empty store, got %d requests", len(requests.byID))
	}

	err := svc.Delete(context.Background(), "req_pending")
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound for second delete, got %v", err)
	}
}

func TestAdminService_ListPending(t *testing.T) {
	requests := newStubRequestRepo()
	accounts := newStubAccountRepo()
	svc := NewAdminService(requests, accounts, discardLogger)
	seedRequest(t, requests, "req_1", domain.StatusPending)
	seedRequest(t, requests, "req_2", domain.StatusApproved)

	queue, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue) != 1 || queue[0].ID != "req_1" {
		t.Errorf("expected only req_1 in the queue, got %+v", queue)
	}
}

func TestAdminService_TopUpCredits(t *testing.T) {
	requests := newStubRequestRepo()
	accounts := newStubAccountRepo()
	svc := NewAdminService(requests, accounts, discardLogger)
	seedSupplier(t, accounts, "sup_1", domain.EntitlementStandard, 3)

	if err := svc.TopUpCredits(context.Background(), "sup_1", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := accounts.balance("sup_1"); got != 13 {
		t.Errorf("balance: want 13, got %d", got)
	}
}

func TestAdminService_TopUpCredits_Rejections(t *testing.T) {
	requests := newStubRequestRepo()
	accounts := newStubAccountRepo()
	svc := NewAdminService(requests, accounts, discardLogger)
	seedSupplier(t, accounts, "sup_1", domain.EntitlementStandard, 3)
	accounts.byID["buyer_1"] = &domain.Account{ID: "buyer_1", Role: domain.RoleBuyer}

	if err := svc.TopUpCredits(context.Background(), "sup_1", 0); !errors.Is(err, domain.ErrInvalidTopUp) {
		t.Errorf("zero amount: expected ErrInvalidTopUp, got %v", err)
	}
	if err := svc.TopUpCredits(context.Background(), "sup_1", -5); !errors.Is(err, domain.ErrInvalidTopUp) {
		t.Errorf("negative amount: expected ErrInvalidTopUp, got %v", err)
	}
	if err := svc.TopUpCredits(context.Background(), "buyer_1", 10); !errors.Is(err, domain.ErrNotSupplier) {
		t.Errorf("buyer target: expected ErrNotSupplier, got %v", err)
	}
	if err := svc.TopUpCredits(context.Background(), "ghost", 10); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("missing target: expected ErrAccountNotFound, got %v", err)
	}
}

func TestAdminService_Stats(t *testing.T) {
	requests := newStubRequestRepo()
	accounts := newStubAccountRepo()
	svc := NewAdminService(requests, accounts, discardLogger)

	seedRequest(t, requests, "req_1", domain.StatusPending)
	seedRequest(t, requests, "req_2", domain.StatusApproved)
	seedRequest(t, requests, "req_3", domain.StatusApproved)
	requests.byID["req_2"].DisclosedTo = []string{"sup_1", "sup_2"}
	requests.byID["req_3"].DisclosedTo = []string{"sup_1"}
	seedSupplier(t, accounts, "sup_1", domain.EntitlementStandard, 1)
	seedSupplier(t, accounts, "sup_2", domain.EntitlementUnlimited, 0)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.PendingRequests != 1 {
		t.Errorf("pending: want 1, got %d", stats.PendingRequests)
	}
	if stats.ApprovedRequests != 2 {
		t.Errorf("approved: want 2, got %d", stats.ApprovedRequests)
	}
	if stats.TotalDisclosures != 3 {
		t.Errorf("disclosures: want 3, got %d", stats.TotalDisclosures)
	}
	if stats.TotalAccounts != 2 {
		t.Errorf("accounts: want 2, got %d", stats.TotalAccounts)
	}
	month := time.Now().UTC().Format("2006-01")
	if stats.CreatedPerMonth[month] != 3 {
		t.Errorf("per-month[%s]: want 3, got %d", month, stats.CreatedPerMonth[month])
	}
}
