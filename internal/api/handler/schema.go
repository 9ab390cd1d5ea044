package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=buyer supplier"`
}

type accountResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Entitlement   string `json:"entitlement,omitempty"`
	CreditBalance int    `json:"credit_balance"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token   string           `json:"token,omitempty"`
	Account *accountResponse `json:"account,omitempty"`
}

// --- Requests (buyer) ---

type createRequestRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=120"`
	Description string `json:"description" validate:"required,min=3,max=2000"`
}

type requestResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Disclosures int       `json:"disclosures"`
	CreatedAt   time.Time `json:"created_at"`
}

// --- Leads (supplier) ---

type contactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// leadResponse hides the contact payload until the caller holds a grant.
type leadResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Granted     bool             `json:"granted"`
	Contact     *contactResponse `json:"contact,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type discloseResponse struct {
	Contact        contactResponse `json:"contact"`
	AlreadyGranted bool            `json:"already_granted"`
	Charged        bool            `json:"charged"`
}

// --- Admin ---

type topUpRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

type statsResponse struct {
	PendingRequests  int64            `json:"pending_requests"`
	ApprovedRequests int64            `json:"approved_requests"`
	TotalDisclosures int64            `json:"total_disclosures"`
	TotalAccounts    int64            `json:"total_accounts"`
	CreatedPerMonth  map[string]int64 `json:"created_per_month"`
}
