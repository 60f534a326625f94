package request

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"nextribe/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestCountryQuery_Validation(t *testing.T) {
	v := newValidator(t)

	if err := v.Struct(CountryQuery{Status: "Signed"}); err != nil {
		t.Fatalf("expected valid status, got %v", err)
	}
	if err := v.Struct(CountryQuery{}); err != nil {
		t.Fatalf("expected empty status to pass, got %v", err)
	}

	if err := v.Struct(CountryQuery{Status: "launched"}); err != nil {
		t.Fatalf("expected unknown status to pass, got %v", err)
	}

	err := v.Struct(CountryQuery{Viewer: strings.Repeat("v", 65)})
	if got := FormatValidationError(err)["viewer"]; got != "Must be at most 64" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestCountryQuery_ResolveStatus(t *testing.T) {
	if got := (CountryQuery{Status: " Operating "}).ResolveStatus(); got != entities.CountryStatusOperating {
		t.Fatalf("expected operating, got %q", got)
	}
	if got := (CountryQuery{Status: "martian"}).ResolveStatus(); got != entities.CountryStatusNone {
		t.Fatalf("expected none, got %q", got)
	}
	if got := (CountryQuery{}).ResolveStatus(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestProfileQuery_UnknownCurrencyPasses(t *testing.T) {
	v := newValidator(t)

	for _, code := range []string{"EUR", "XYZ", ""} {
		if err := v.Struct(ProfileQuery{Currency: code}); err != nil {
			t.Fatalf("expected %q to pass, got %v", code, err)
		}
	}
	if err := v.Struct(FormatQuery{Amount: new(float64), Code: "DOGE"}); err != nil {
		t.Fatalf("expected unknown code to pass, got %v", err)
	}
}

func TestPurchaseRequest(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(PurchaseRequest{ProfileID: "p1", Shares: 13})
	if got := FormatValidationError(err)["shares"]; got != "Must be at most 12" {
		t.Fatalf("unexpected message %q", got)
	}
	if err := v.Struct(PurchaseRequest{ProfileID: "p1", Shares: 3}); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	if got := string((PurchaseRequest{}).ResolvePayload()); got != "{}" {
		t.Fatalf("expected {}, got %s", got)
	}
	if got := string((PurchaseRequest{MPPayload: json.RawMessage("null")}).ResolvePayload()); got != "{}" {
		t.Fatalf("expected {}, got %s", got)
	}
	if got := string((PurchaseRequest{MPPayload: json.RawMessage(`{"a":1}`)}).ResolvePayload()); got != `{"a":1}` {
		t.Fatalf("unexpected payload %s", got)
	}
}

func TestFormatValidationError_NonValidation(t *testing.T) {
	if got := FormatValidationError(errors.New("bad json"))["error"]; got != "Invalid request format" {
		t.Fatalf("unexpected message %q", got)
	}
	if FormatValidationError(nil) != nil {
		t.Fatalf("expected nil")
	}
}
