package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/rkhatri/vastra-backend/pkg/errors"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	return body["error"]
}

func TestWriteErrorExposesClientFacingMessages(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        pkgerrors.New(pkgerrors.CodeValidation, "Name is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Name is required",
		},
		{
			name:       "not found",
			err:        pkgerrors.New(pkgerrors.CodeNotFound, "Product not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   "Product not found",
		},
		{
			name:       "conflict",
			err:        pkgerrors.New(pkgerrors.CodeConflict, "Email already registered"),
			wantStatus: http.StatusConflict,
			wantBody:   "Email already registered",
		},
		{
			name:       "rate limit",
			err:        pkgerrors.New(pkgerrors.CodeRateLimit, "Too many attempts"),
			wantStatus: http.StatusTooManyRequests,
			wantBody:   "Too many attempts",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), nil, rec, tc.err)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if got := decodeErrorBody(t, rec); got != tc.wantBody {
				t.Fatalf("expected body %q, got %q", tc.wantBody, got)
			}
		})
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	cause := errors.New("pq: connection refused on 10.0.0.7")
	WriteError(context.Background(), nil, rec, pkgerrors.Wrap(pkgerrors.CodeDependency, cause, "db: list products"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := decodeErrorBody(t, rec); got != "internal server error" {
		t.Fatalf("dependency detail leaked: %q", got)
	}
}

func TestWriteErrorWrapsUntypedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestWriteSuccessShapes(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"status": "ok"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	rec = httptest.NewRecorder()
	WriteCreated(rec, map[string]string{"id": "x"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	WriteNoContent(rec)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
