package handlers

import (
	"net/http"

	request "nextribe/internal/adapter/http/dto/request"
	response "nextribe/internal/adapter/http/dto/response"
	"nextribe/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CountryHandler serves the expansion map and country selection.
type CountryHandler struct {
	usecase usecase.ICountryUseCase
	logger  *zap.Logger
}

func NewCountryHandler(uc usecase.ICountryUseCase, logger *zap.Logger) *CountryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CountryHandler{usecase: uc, logger: logger}
}

// ListCountries godoc
// @Summary      List country progress records
// @Tags         countries
// @Produce      json
// @Success      200  {array}   response.CountryResponse
// @Router       /countries [get]
func (h *CountryHandler) ListCountries(c *gin.Context) {
	countries, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCountryError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCountries(countries))
}

// GetCountry godoc
// @Summary      Select a country
// @Tags         countries
// @Produce      json
// @Param        id      path   string  true   "ISO alpha-3 code"
// @Param        name    query  string  false  "Display name"
// @Param        status  query  string  false  "Status shown on the map"
// @Success      200  {object}  response.CountryResponse
// @Failure      400  {object}  response.ValidationErrorResponse
// @Router       /countries/{id} [get]
func (h *CountryHandler) GetCountry(c *gin.Context) {
	var q request.CountryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindingError(c, err)
		return
	}

	country, err := h.usecase.Select(c.Request.Context(), c.Param("id"), q.Name, q.ResolveStatus())
	if err != nil {
		writeError(c, mapCountryError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCountry(country))
}

// GetCountryDetail godoc
// @Summary      Select a country with its generated insight
// @Tags         countries
// @Produce      json
// @Param        id      path   string  true   "ISO alpha-3 code"
// @Param        name    query  string  false  "Display name"
// @Param        status  query  string  false  "Status shown on the map"
// @Param        viewer  query  string  false  "Viewer key; a newer selection by the same viewer supersedes this one"
// @Success      200  {object}  response.CountryDetailResponse
// @Failure      400  {object}  response.ValidationErrorResponse
// @Router       /countries/{id}/detail [get]
func (h *CountryHandler) GetCountryDetail(c *gin.Context) {
	var q request.CountryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindingError(c, err)
		return
	}

	viewer := q.Viewer
	if viewer == "" {
		viewer = c.ClientIP()
	}
	detail, err := h.usecase.Detail(c.Request.Context(), viewer, c.Param("id"), q.Name, q.ResolveStatus())
	if err != nil {
		writeError(c, mapCountryError(err))
		return
	}
	h.logger.Debug("[country][handler] detail served",
		zap.String("country_id", detail.Country.ID), zap.Bool("generated", detail.Generated))
	c.JSON(http.StatusOK, response.FromCountryDetail(detail))
}

// MapRegions godoc
// @Summary      Region fills for the world map
// @Tags         countries
// @Produce      json
// @Success      200  {array}   geography.RegionStatus
// @Router       /map/regions [get]
func (h *CountryHandler) MapRegions(c *gin.Context) {
	regions, err := h.usecase.MapRegions(c.Request.Context())
	if err != nil {
		writeError(c, mapCountryError(err))
		return
	}
	c.JSON(http.StatusOK, regions)
}
