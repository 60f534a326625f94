package routes

import (
	"nextribe/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCountries     = "/countries"
	PathMap           = "/map"
	PathOpportunities = "/opportunities"
	PathPurchases     = "/purchases"
	PathProfiles      = "/profiles"
	PathDashboard     = "/dashboard"
	PathCurrency      = "/currency"
)

// Handlers is every HTTP handler mounted under /v1.
type Handlers struct {
	Country     *handlers.CountryHandler
	Opportunity *handlers.OpportunityHandler
	Purchase    *handlers.PurchaseHandler
	Profile     *handlers.ProfileHandler
	Dashboard   *handlers.DashboardHandler
	Currency    *handlers.CurrencyHandler
}

func addNextribeRoutes(rg *gin.RouterGroup, h Handlers) {
	countries := rg.Group(PathCountries)
	{
		countries.GET("", h.Country.ListCountries)
		countries.GET("/:id", h.Country.GetCountry)
		countries.GET("/:id/detail", h.Country.GetCountryDetail)
	}
	rg.GET(PathMap+"/regions", h.Country.MapRegions)

	opportunities := rg.Group(PathOpportunities)
	{
		opportunities.GET("", h.Opportunity.ListOpportunities)
		opportunities.GET("/:id", h.Opportunity.GetOpportunity)
		opportunities.GET("/:id/projection", h.Opportunity.GetProjection)
		opportunities.POST("/:id/purchases", h.Purchase.CreatePurchase)
	}
	rg.GET(PathPurchases+"/:id", h.Purchase.GetPurchase)

	profiles := rg.Group(PathProfiles)
	{
		profiles.GET("/:id", h.Profile.GetProfile)
		profiles.GET("/:id/investments", h.Purchase.ListProfileInvestments)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/leaderboard", h.Dashboard.Leaderboard)
		dashboard.GET("/stats", h.Dashboard.GlobalStats)
	}

	rg.GET(PathCurrency+"/format", h.Currency.Format)
}
