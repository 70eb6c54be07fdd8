package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidJSON, http.StatusBadRequest},
		{ErrCodeMissingScope, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeRequestInFlight, http.StatusConflict},
		{ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeTimeout, http.StatusGatewayTimeout},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind     shared.ErrorKind
		expected int
	}{
		{shared.KindValidation, http.StatusBadRequest},
		{shared.KindOutOfBalance, http.StatusUnprocessableEntity},
		{shared.KindAccountResolution, http.StatusUnprocessableEntity},
		{shared.KindStateConflict, http.StatusConflict},
		{shared.KindPersistence, http.StatusInternalServerError},
		{shared.KindNotFound, http.StatusNotFound},
		{shared.ErrorKind("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, KindHTTPStatus(tt.kind))
		})
	}
}

func TestErrorCodeFormat(t *testing.T) {
	for code := range ErrorCodeHTTPStatus {
		assert.Contains(t, code, "ERR_", "Error code should start with ERR_")
	}
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Run not found", "req-123-456")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Run not found", resp.Error.Message)
	assert.Equal(t, "req-123-456", resp.Error.RequestID)
	assert.NotZero(t, resp.Error.Timestamp)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "entry_date", Message: "must be a date in YYYY-MM-DD format"},
		{Field: "lines", Message: "must have at least 2 items"},
	}

	resp := NewValidationErrorResponse("Request validation failed", "req-789", details)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, string(shared.KindValidation), resp.Error.Kind)
	assert.Equal(t, "req-789", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "entry_date", resp.Error.Details[0].Field)
}

func TestNewDomainErrorResponse(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantKind    string
		wantMessage string
	}{
		{
			name:        "validation",
			err:         shared.NewValidationError("INVALID_AMOUNT", "amount cannot be negative"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_AMOUNT",
			wantKind:    "VALIDATION",
			wantMessage: "amount cannot be negative",
		},
		{
			name:        "wrapped state conflict",
			err:         fmt.Errorf("failed to approve run: %w", shared.NewStateConflictError("INVALID_RUN_STATUS", "run is not DRAFT")),
			wantStatus:  http.StatusConflict,
			wantCode:    "INVALID_RUN_STATUS",
			wantKind:    "STATE_CONFLICT",
			wantMessage: "run is not DRAFT",
		},
		{
			name:        "account resolution",
			err:         shared.NewAccountResolutionError("9999", "unknown account"),
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    "ACCOUNT_NOT_RESOLVED",
			wantKind:    "ACCOUNT_RESOLUTION",
			wantMessage: "account 9999: unknown account",
		},
		{
			name:        "out of balance",
			err:         shared.NewOutOfBalanceError("debits 10.00 do not equal credits 9.00"),
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    "OUT_OF_BALANCE",
			wantKind:    "OUT_OF_BALANCE",
			wantMessage: "debits 10.00 do not equal credits 9.00",
		},
		{
			name:        "persistence hides driver message",
			err:         shared.NewPersistenceError("insert entry", errors.New("pq: connection reset")),
			wantStatus:  http.StatusInternalServerError,
			wantKind:    "PERSISTENCE",
			wantMessage: "The request could not be completed",
		},
		{
			name:        "not found",
			err:         shared.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantKind:    "NOT_FOUND",
			wantMessage: "Resource not found",
		},
		{
			name:        "plain error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrCodeInternal,
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := NewDomainErrorResponse(tt.err, "req-1")

			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "req-1", resp.Error.RequestID)
			assert.Equal(t, tt.wantKind, resp.Error.Kind)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			}
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp.Error.Message)
			}
		})
	}
}

func TestErrorResponseJSON(t *testing.T) {
	_, resp := NewDomainErrorResponse(shared.NewValidationError("INVALID_PERIOD", "period end precedes start"), "req-test-123")

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, false, decoded["success"])
	assert.NotContains(t, decoded, "data")
	errObj, ok := decoded["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INVALID_PERIOD", errObj["code"])
	assert.Equal(t, "VALIDATION", errObj["kind"])
	assert.Equal(t, "req-test-123", errObj["request_id"])
	assert.NotContains(t, errObj, "details")
}
