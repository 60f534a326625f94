package handlers

import (
	"net/http"

	request "nextribe/internal/adapter/http/dto/request"
	response "nextribe/internal/adapter/http/dto/response"
	"nextribe/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OpportunityHandler struct {
	usecase usecase.IOpportunityUseCase
}

func NewOpportunityHandler(uc usecase.IOpportunityUseCase) *OpportunityHandler {
	return &OpportunityHandler{usecase: uc}
}

// ListOpportunities godoc
// @Summary      List marketplace opportunities
// @Tags         opportunities
// @Produce      json
// @Success      200  {array}   response.OpportunityResponse
// @Router       /opportunities [get]
func (h *OpportunityHandler) ListOpportunities(c *gin.Context) {
	opps, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapOpportunityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOpportunities(opps))
}

// GetOpportunity godoc
// @Summary      Get an opportunity
// @Tags         opportunities
// @Produce      json
// @Param        id   path  string  true  "Opportunity id"
// @Success      200  {object}  response.OpportunityResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /opportunities/{id} [get]
func (h *OpportunityHandler) GetOpportunity(c *gin.Context) {
	o, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapOpportunityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOpportunity(o))
}

// GetProjection godoc
// @Summary      Project cost, returns and free nights for a share count
// @Tags         opportunities
// @Produce      json
// @Param        id      path   string  true  "Opportunity id"
// @Param        shares  query  int     true  "Shares (1-12)"
// @Success      200  {object}  response.ProjectionResponse
// @Failure      400  {object}  response.ValidationErrorResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /opportunities/{id}/projection [get]
func (h *OpportunityHandler) GetProjection(c *gin.Context) {
	var q request.ProjectionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindingError(c, err)
		return
	}

	sim, err := h.usecase.Simulate(c.Request.Context(), c.Param("id"), q.Shares)
	if err != nil {
		writeError(c, mapOpportunityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSimulation(sim))
}
