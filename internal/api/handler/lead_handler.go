package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hublead/marketplace-api/internal/api/metrics"
	"github.com/hublead/marketplace-api/internal/core/domain"
	"github.com/hublead/marketplace-api/internal/core/ports"
)

// LeadHandler exposes the supplier-facing lead board and the disclosure
// operation.
type LeadHandler struct {
	service ports.DisclosureService
}

func NewLeadHandler(service ports.DisclosureService) *LeadHandler {
	return &LeadHandler{service: service}
}

// List handles GET /v1/requests — the board of approved requests.
//
// @Summary      List approved requests
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Case-insensitive substring filter on title or description"
// @Success      200  {array}   leadResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/requests [get]
func (h *LeadHandler) List(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListApproved(c.Request().Context(), accountID, c.QueryParam("q"))
	if err != nil {
		return err
	}

	out := make([]leadResponse, 0, len(views))
	for _, v := range views {
		lead := leadResponse{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Granted:     v.Granted,
			CreatedAt:   v.CreatedAt,
		}
		if v.Contact != nil {
			lead.Contact = &contactResponse{
				Name:  v.Contact.Name,
				Phone: v.Contact.Phone,
				Email: v.Contact.Email,
			}
		}
		out = append(out, lead)
	}
	return c.JSON(http.StatusOK, out)
}

// Disclose handles POST /v1/requests/:id/disclose — the credit-metered
// contact disclosure. Replays are a no-op success.
//
// @Summary      Reveal a request's contact details
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Request id"
// @Success      200  {object}  discloseResponse
// @Failure      402  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/requests/{id}/disclose [post]
func (h *LeadHandler) Disclose(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.DiscloseContact(c.Request().Context(), c.Param("id"), accountID)
	if err != nil {
		metrics.DisclosuresTotal.WithLabelValues(discloseFailureLabel(err)).Inc()
		return err
	}

	switch {
	case result.AlreadyGranted:
		metrics.DisclosuresTotal.WithLabelValues("replay").Inc()
	default:
		metrics.DisclosuresTotal.WithLabelValues("granted").Inc()
	}
	if result.Charged {
		metrics.CreditsSpentTotal.Inc()
	}

	return c.JSON(http.StatusOK, discloseResponse{
		Contact: contactResponse{
			Name:  result.Contact.Name,
			Phone: result.Contact.Phone,
			Email: result.Contact.Email,
		},
		AlreadyGranted: result.AlreadyGranted,
		Charged:        result.Charged,
	})
}

func discloseFailureLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientCredit):
		return "insufficient_credit"
	case errors.Is(err, domain.ErrRequestNotEligible):
		return "not_eligible"
	case errors.Is(err, domain.ErrRequestNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrNotSupplier):
		return "not_supplier"
	default:
		return "error"
	}
}
