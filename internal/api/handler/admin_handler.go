package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hublead/marketplace-api/internal/api/metrics"
	"github.com/hublead/marketplace-api/internal/core/ports"
)

// AdminHandler exposes moderation and account-maintenance operations.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListPending handles GET /v1/admin/requests — the moderation queue.
//
// @Summary      List pending requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   requestResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/requests [get]
func (h *AdminHandler) ListPending(c echo.Context) error {
	requests, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]requestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, requestResponse{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Status:      string(r.Status),
			Disclosures: len(r.DisclosedTo),
			CreatedAt:   r.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Approve handles POST /v1/admin/requests/:id/approve.
//
// @Summary      Approve a pending request
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Request id"
// @Success      204  "approved"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/requests/{id}/approve [post]
func (h *AdminHandler) Approve(c echo.Context) error {
	if err := h.service.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RequestsApprovedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/admin/requests/:id.
//
// @Summary      Delete a request at any status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Request id"
// @Success      204  "deleted"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/requests/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// TopUp handles POST /v1/admin/accounts/:id/credit.
//
// @Summary      Add credits to a supplier account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string        true  "Account id"
// @Param        body  body  topUpRequest  true  "Credit amount"
// @Success      204  "credited"
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/accounts/{id}/credit [post]
func (h *AdminHandler) TopUp(c echo.Context) error {
	var req topUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.TopUpCredits(c.Request().Context(), c.Param("id"), req.Amount); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/admin/stats — the dashboard summary.
//
// @Summary      Marketplace statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statsResponse{
		PendingRequests:  stats.PendingRequests,
		ApprovedRequests: stats.ApprovedRequests,
		TotalDisclosures: stats.TotalDisclosures,
		TotalAccounts:    stats.TotalAccounts,
		CreatedPerMonth:  stats.CreatedPerMonth,
	})
}
