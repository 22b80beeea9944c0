package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewForbidden("nope")
	got := ToDomainError(fmt.Errorf("wrapped: %w", original))
	if got.Code != "FORBIDDEN" || got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	got := ToDomainError(pgx.ErrNoRows)
	if got.Code != "NOT_FOUND" || got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("pgx.ErrNoRows mapped to %+v", got)
	}
}

func TestToDomainErrorDefaultsToInternal(t *testing.T) {
	got := ToDomainError(errors.New("boom"))
	if got.Code != "INTERNAL_ERROR" || got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if !errors.Is(got, got.Err) {
		t.Fatalf("cause not preserved")
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatalf("nil error should map to nil")
	}
}

func TestConstructorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		code string
		want int
	}{
		{NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewNotFound("thing", nil), "NOT_FOUND", http.StatusNotFound},
		{NewUnauthorized("who"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewForbidden("no"), "FORBIDDEN", http.StatusForbidden},
		{NewConflict("dup", nil), "CONFLICT", http.StatusConflict},
		{NewTooManyRequests("slow down"), "RATE_LIMITED", http.StatusTooManyRequests},
		{NewInternalError(nil), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		var de *DomainError
		if !errors.As(tc.err, &de) {
			t.Fatalf("%v is not a DomainError", tc.err)
		}
		if de.Code != tc.code || de.HTTPStatus != tc.want {
			t.Errorf("%s: got status %d", tc.code, de.HTTPStatus)
		}
	}
}
