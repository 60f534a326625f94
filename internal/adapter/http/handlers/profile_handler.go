package handlers

import (
	"net/http"

	request "nextribe/internal/adapter/http/dto/request"
	"nextribe/internal/usecase"
	"nextribe/pkg"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// GetProfile godoc
// @Summary      Profile with portfolio in the requested currency
// @Tags         profiles
// @Produce      json
// @Param        id        path   string  true   "Profile id, or demo"
// @Param        currency  query  string  false  "Display currency (USD, EUR, SOL, BTC, ETH)"
// @Success      200  {object}  usecase.ProfileView
// @Failure      400  {object}  response.ValidationErrorResponse
// @Router       /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	var q request.ProfileQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindingError(c, err)
		return
	}

	view, err := h.usecase.Get(c.Request.Context(), c.Param("id"), q.Currency)
	if err != nil {
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, view)
}
