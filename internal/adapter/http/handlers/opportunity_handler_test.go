package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"nextribe/internal/adapter/http/handlers/mocks"
	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/investment"
	"nextribe/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOpportunityRouter(t *testing.T) (*gin.Engine, *mocks.MockIOpportunityUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOpportunityUseCase(ctrl)
	h := NewOpportunityHandler(uc)

	r := gin.New()
	r.GET("/v1/opportunities", h.ListOpportunities)
	r.GET("/v1/opportunities/:id", h.GetOpportunity)
	r.GET("/v1/opportunities/:id/projection", h.GetProjection)
	return r, uc
}

func TestOpportunityHandler_ListOpportunities(t *testing.T) {
	r, uc := newOpportunityRouter(t)
	uc.EXPECT().List(gomock.Any()).Return([]entities.Opportunity{
		{ID: "opt-1", Title: "Cabin", TotalPrice: 120000, AvailableSharesPct: 60},
	}, nil)

	w := serve(r, http.MethodGet, "/v1/opportunities", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != 1 || body[0]["shares_available"] != float64(7) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestOpportunityHandler_GetOpportunity(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, uc := newOpportunityRouter(t)
		uc.EXPECT().Get(gomock.Any(), "opt-2").Return(entities.Opportunity{ID: "opt-2"}, nil)

		w := serve(r, http.MethodGet, "/v1/opportunities/opt-2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newOpportunityRouter(t)
		uc.EXPECT().Get(gomock.Any(), "nope").Return(entities.Opportunity{}, usecase.ErrOpportunityNotFound)

		w := serve(r, http.MethodGet, "/v1/opportunities/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOpportunityHandler_GetProjection(t *testing.T) {
	t.Run("missing shares", func(t *testing.T) {
		r, _ := newOpportunityRouter(t)

		w := serve(r, http.MethodGet, "/v1/opportunities/opt-1/projection", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("shares above twelve", func(t *testing.T) {
		r, _ := newOpportunityRouter(t)

		w := serve(r, http.MethodGet, "/v1/opportunities/opt-1/projection?shares=13", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newOpportunityRouter(t)
		uc.EXPECT().Simulate(gomock.Any(), "opt-1", 4).Return(usecase.Simulation{
			Opportunity:     entities.Opportunity{ID: "opt-1", Title: "Cabin"},
			SharesAvailable: 6,
			Projection:      investment.Projection{Shares: 4, TotalShares: 12, InvestmentCost: 50000},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/opportunities/opt-1/projection?shares=4", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["opportunity_id"] != "opt-1" || body["shares_available"] != float64(6) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unpriced opportunity", func(t *testing.T) {
		r, uc := newOpportunityRouter(t)
		uc.EXPECT().Simulate(gomock.Any(), "opt-1", 2).Return(usecase.Simulation{}, investment.ErrInvalidOpportunity)

		w := serve(r, http.MethodGet, "/v1/opportunities/opt-1/projection?shares=2", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
