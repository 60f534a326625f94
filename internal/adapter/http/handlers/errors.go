package handlers

import (
	"errors"
	"net/http"

	request "nextribe/internal/adapter/http/dto/request"
	response "nextribe/internal/adapter/http/dto/response"
	"nextribe/internal/domain/investment"
	"nextribe/internal/usecase"
	"nextribe/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/country_usecase.go -destination=mocks/country_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/opportunity_usecase.go -destination=mocks/opportunity_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/share_purchase_usecase.go -destination=mocks/share_purchase_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/profile_usecase.go -destination=mocks/profile_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/dashboard_usecase.go -destination=mocks/dashboard_usecase_mock.go -package=mocks

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// writeBindingError answers 400 with the offending fields.
func writeBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
		Code:    errInvalidRequest.Code,
		Message: errInvalidRequest.Message,
		Fields:  request.FormatValidationError(err),
	})
}

func mapCountryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCountryID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrCountryNotFound):
		return pkg.NewDomainErrorSimple("COUNTRY_NOT_FOUND", "Country not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapOpportunityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOpportunityID), errors.Is(err, usecase.ErrInvalidShareCount):
		return errInvalidRequest
	case errors.Is(err, investment.ErrInvalidOpportunity):
		return pkg.NewDomainError("OPPORTUNITY_NOT_PRICED", "Opportunity has no valid price", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOpportunityNotFound):
		return pkg.NewDomainErrorSimple("OPPORTUNITY_NOT_FOUND", "Opportunity not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPurchaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOpportunityID), errors.Is(err, usecase.ErrInvalidProfileID),
		errors.Is(err, usecase.ErrInvalidInvestmentID), errors.Is(err, usecase.ErrInvalidShareCount),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOpportunityNotFound):
		return pkg.NewDomainErrorSimple("OPPORTUNITY_NOT_FOUND", "Opportunity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientShares):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_SHARES", "Not enough shares available", http.StatusConflict)
	case errors.Is(err, investment.ErrInvalidOpportunity):
		return pkg.NewDomainError("OPPORTUNITY_NOT_PRICED", "Opportunity has no valid price", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvestmentNotFound):
		return pkg.NewDomainErrorSimple("INVESTMENT_NOT_FOUND", "Investment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
