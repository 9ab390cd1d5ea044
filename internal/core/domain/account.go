package domain

import (
	"errors"
	"time"
)

const (
	RoleBuyer    = "buyer"
	RoleSupplier = "supplier"
	RoleAdmin    = "admin"
)

// Entitlement is a supplier's billing mode.
type Entitlement string

const (
	// EntitlementStandard meters disclosures against the credit balance.
	EntitlementStandard Entitlement = "standard"
	// EntitlementUnlimited grants free disclosure (VIP); the balance is never touched.
	EntitlementUnlimited Entitlement = "unlimited"
)

// WelcomeCredits is the signup bonus granted to new standard suppliers.
const WelcomeCredits = 50

var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotSupplier = errors.New("account is not a supplier")
var ErrInsufficientCredit = errors.New("insufficient credit balance")
var ErrInvalidTopUp = errors.New("top-up amount must be positive")

// Account models a registered user: buyer, supplier, or admin.
// CreditBalance is meaningful only for standard-entitlement suppliers and
// is mutated exclusively through atomic store operations.
type Account struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	PasswordHash  string      `json:"-"`
	Role          string      `json:"role"`
	Entitlement   Entitlement `json:"entitlement,omitempty"`
	CreditBalance int         `json:"credit_balance"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// IsMetered reports whether disclosures by this account consume credits.
func (a *Account) IsMetered() bool {
	return a.Entitlement != EntitlementUnlimited
}
