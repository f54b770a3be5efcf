package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/matchdayhq/roster-api/internal/domain/formation"
	"github.com/matchdayhq/roster-api/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_StatusTable(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: name is required", usecase.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "unknown formation",
			err:        fmt.Errorf("%w: 9-0-1", formation.ErrFormationNotInCatalog),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: player=pl-1", usecase.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantReason: "notFound",
		},
		{
			name:       "jersey conflict",
			err:        fmt.Errorf("%w: jersey number 9 already taken", usecase.ErrConflict),
			wantStatus: http.StatusConflict,
			wantReason: "conflict",
		},
		{
			name:       "empty roster",
			err:        formation.ErrNoPlayersAvailable,
			wantStatus: http.StatusUnprocessableEntity,
			wantReason: "lineupNotSatisfiable",
		},
		{
			name:       "short roster",
			err:        &formation.InsufficientPlayersError{Required: 11, Available: 7},
			wantStatus: http.StatusUnprocessableEntity,
			wantReason: "lineupNotSatisfiable",
		},
		{
			name:       "unclassified error",
			err:        errors.New("database offline"),
			wantStatus: http.StatusInternalServerError,
			wantReason: "internalError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(context.Background(), tt.err)
			if mapped.HTTPStatus != tt.wantStatus {
				t.Fatalf("http status: got=%d want=%d", mapped.HTTPStatus, tt.wantStatus)
			}
			if mapped.Reason != tt.wantReason {
				t.Fatalf("reason: got=%s want=%s", mapped.Reason, tt.wantReason)
			}
		})
	}
}
