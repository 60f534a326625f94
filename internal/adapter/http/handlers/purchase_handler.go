package handlers

import (
	"net/http"

	request "nextribe/internal/adapter/http/dto/request"
	response "nextribe/internal/adapter/http/dto/response"
	"nextribe/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PurchaseHandler handles share purchases and the investments they create.
type PurchaseHandler struct {
	usecase usecase.ISharePurchaseUseCase
	logger  *zap.Logger
}

func NewPurchaseHandler(uc usecase.ISharePurchaseUseCase, logger *zap.Logger) *PurchaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseHandler{usecase: uc, logger: logger}
}

// CreatePurchase godoc
// @Summary      Buy shares of an opportunity
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Opportunity id"
// @Param        body  body  request.PurchaseRequest  true  "Purchase"
// @Success      201  {object}  response.InvestmentResponse
// @Failure      400  {object}  response.ValidationErrorResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /opportunities/{id}/purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	opportunityID := c.Param("id")
	log := h.logger.With(zap.String("opportunity_id", opportunityID))
	log.Info("[purchase][handler] create start")

	var payload request.PurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warn("[purchase][handler] invalid payload", zap.Error(err))
		writeBindingError(c, err)
		return
	}

	inv, err := h.usecase.Purchase(c.Request.Context(), opportunityID, payload.ProfileID, payload.Shares, payload.ResolvePayload())
	if err != nil {
		appErr := mapPurchaseError(err)
		log.Warn("[purchase][handler] create failed", zap.String("code", appErr.Code), zap.Error(err))
		writeError(c, appErr)
		return
	}
	log.Info("[purchase][handler] create success",
		zap.String("investment_id", inv.ID), zap.String("status", string(inv.Status)))

	c.JSON(http.StatusCreated, response.FromInvestment(inv))
}

// GetPurchase godoc
// @Summary      Get an investment by id
// @Tags         purchases
// @Produce      json
// @Param        id   path  string  true  "Investment id"
// @Success      200  {object}  response.InvestmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /purchases/{id} [get]
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPurchaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvestment(inv))
}

// ListProfileInvestments godoc
// @Summary      List the investments of a profile, newest first
// @Tags         purchases
// @Produce      json
// @Param        id   path  string  true  "Profile id"
// @Success      200  {array}   response.InvestmentResponse
// @Router       /profiles/{id}/investments [get]
func (h *PurchaseHandler) ListProfileInvestments(c *gin.Context) {
	invs, err := h.usecase.ListByProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPurchaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvestments(invs))
}
