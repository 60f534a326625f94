package handlers

import (
	"net/http"

	request "nextribe/internal/adapter/http/dto/request"
	response "nextribe/internal/adapter/http/dto/response"
	"nextribe/internal/domain/currency"

	"github.com/gin-gonic/gin"
)

type CurrencyHandler struct {
	formatter *currency.Formatter
}

func NewCurrencyHandler(formatter *currency.Formatter) *CurrencyHandler {
	if formatter == nil {
		formatter = currency.NewFormatter(nil, currency.DefaultTag)
	}
	return &CurrencyHandler{formatter: formatter}
}

// Format godoc
// @Summary      Convert and format a USD amount
// @Tags         currency
// @Produce      json
// @Param        amount  query  number  true   "Amount in USD"
// @Param        code    query  string  false  "Target currency, USD when omitted"
// @Success      200  {object}  response.FormatResponse
// @Failure      400  {object}  response.ValidationErrorResponse
// @Router       /currency/format [get]
func (h *CurrencyHandler) Format(c *gin.Context) {
	var q request.FormatQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindingError(c, err)
		return
	}

	code, _ := h.formatter.Resolve(q.Code)
	c.JSON(http.StatusOK, response.FormatResponse{
		AmountUSD: *q.Amount,
		Code:      code,
		Converted: h.formatter.Convert(*q.Amount, code),
		Formatted: h.formatter.Format(*q.Amount, code),
	})
}
