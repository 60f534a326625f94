package handlers

import (
	"errors"
	"net/http"
	"testing"

	"nextribe/internal/adapter/http/handlers/mocks"
	"nextribe/internal/domain/entities"
	"nextribe/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProfileHandler_GetProfile(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIProfileUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProfileUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/profiles/:id", NewProfileHandler(uc).GetProfile)
		return r, uc
	}

	t.Run("currency forwarded", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Get(gomock.Any(), "demo", "EUR").Return(usecase.ProfileView{
			Profile:  entities.Profile{ID: "demo"},
			Currency: "EUR",
			Demo:     true,
		}, nil)

		w := serve(r, http.MethodGet, "/v1/profiles/demo?currency=EUR", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown currency is forwarded", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Get(gomock.Any(), "demo", "XYZ").Return(usecase.ProfileView{Currency: "USD"}, nil)

		w := serve(r, http.MethodGet, "/v1/profiles/demo?currency=XYZ", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Get(gomock.Any(), "p-1", "").Return(usecase.ProfileView{}, errors.New("boom"))

		w := serve(r, http.MethodGet, "/v1/profiles/p-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
