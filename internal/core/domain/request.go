package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the moderation state of a service request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
)

var ErrRequestNotFound = errors.New("request not found")
var ErrInvalidRequest = errors.New("title and description are required")
var ErrRequestNotEligible = errors.New("request is not approved for disclosure")
var ErrForbidden = errors.New("access forbidden")

// Contact is the payload revealed to a supplier upon disclosure. It is owned
// by the request and treated as opaque by the ledger.
type Contact struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

// Request is the core aggregate: a buyer's posted service need.
//
// DisclosedTo is the set of supplier account ids granted the contact payload.
// It grows monotonically and membership is idempotent; the store-level
// set-union append is the arbiter for concurrent first-time disclosures.
type Request struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	OwnerID     string        `json:"owner_id"`
	Status      RequestStatus `json:"status"`
	DisclosedTo []string      `json:"disclosed_to"`
	Contact     Contact       `json:"contact"`
	CreatedAt   time.Time     `json:"created_at"`
	ApprovedAt  time.Time     `json:"approved_at,omitempty"`
}

// DisclosedToContains reports whether the supplier already holds a grant.
func (r *Request) DisclosedToContains(supplierID string) bool {
	for _, id := range r.DisclosedTo {
		if id == supplierID {
			return true
		}
	}
	return false
}
