package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hublead/marketplace-api/internal/api/metrics"
	"github.com/hublead/marketplace-api/internal/core/ports"
)

// RequestHandler exposes the buyer-facing request operations.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create handles POST /v1/requests.
//
// @Summary      Post a new service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestRequest  true  "Request details"
// @Success      201   {object}  requestResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.CreateRequest(c.Request().Context(), ports.CreateRequestInput{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     accountID,
	})
	if err != nil {
		return err
	}

	metrics.RequestsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, requestResponse{
		ID:          created.ID,
		Title:       created.Title,
		Description: created.Description,
		Status:      string(created.Status),
		CreatedAt:   created.CreatedAt,
	})
}

// ListMine handles GET /v1/my/requests.
//
// @Summary      List the caller's own requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   requestResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/my/requests [get]
func (h *RequestHandler) ListMine(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	summaries, err := h.service.ListMine(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	out := make([]requestResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, requestResponse{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Status:      s.Status,
			Disclosures: s.Disclosures,
			CreatedAt:   s.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}
