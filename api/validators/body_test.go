package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

type samplePayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func postJSON(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(postJSON(`{"name":"Ritu","email":"ritu@example.com"}`), &dest)
	if err != nil {
		t.Fatalf("DecodeJSONBody: %v", err)
	}
	if dest.Name != "Ritu" {
		t.Fatalf("unexpected name %q", dest.Name)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(postJSON(`{"name":"Ritu","email":"r@e.com","extra":true}`), &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyRunsStructTags(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(postJSON(`{"name":"","email":"not-an-email"}`), &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(typed.Message(), "name") {
		t.Fatalf("expected first failing field in message, got %q", typed.Message())
	}
}

func TestParseQueryHelpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?limit=10&wholesaler=4b4e63ee-5b5a-4b4e-9f3c-1f0d86f3a001", nil)

	limit, err := ParseQueryInt(r, "limit", 25, 1, 100)
	if err != nil || limit != 10 {
		t.Fatalf("ParseQueryInt: %d, %v", limit, err)
	}

	id, err := ParseQueryUUID(r, "wholesaler")
	if err != nil || id == nil {
		t.Fatalf("ParseQueryUUID: %v, %v", id, err)
	}

	missing, err := ParseQueryUUID(r, "absent")
	if err != nil || missing != nil {
		t.Fatalf("expected nil for absent param, got %v, %v", missing, err)
	}

	bad := httptest.NewRequest(http.MethodGet, "/?wholesaler=nope", nil)
	if _, err := ParseQueryUUID(bad, "wholesaler"); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
}
