package handler

import (
	"net/http"
	"testing"

	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalHandler_Post(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/journal-entries", map[string]any{
		"entry_date":  "2024-03-01",
		"description": "Owner capital injection",
		"reference":   "CAP-1",
		"lines": []map[string]any{
			line("1010", "5000.00", ""),
			line("3000", "", "5000.00"),
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var result dto.PostResultResponse
	resp := decode(t, w, &result)
	assert.True(t, resp.Success)
	assert.NotEqual(t, uuid.Nil, result.EntryID)
	assert.Equal(t, int64(1), result.EntryNumber)

	w = f.do(t, http.MethodPost, "/api/v1/journal-entries", map[string]any{
		"entry_date":  "2024-03-02",
		"description": "Petty cash float",
		"lines": []map[string]any{
			line("1000", "200", ""),
			line("1010", "", "200"),
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &result)
	assert.Equal(t, int64(2), result.EntryNumber, "entry numbers are sequential per company")
}

func TestJournalHandler_PostRejections(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{
			name: "out of balance",
			body: map[string]any{
				"entry_date": "2024-03-01", "description": "Bad entry",
				"lines": []map[string]any{line("1010", "10.00", ""), line("3000", "", "9.00")},
			},
			status: http.StatusUnprocessableEntity,
			code:   "OUT_OF_BALANCE",
		},
		{
			name: "unknown account",
			body: map[string]any{
				"entry_date": "2024-03-01", "description": "Typo",
				"lines": []map[string]any{line("1010", "10.00", ""), line("9999", "", "10.00")},
			},
			status: http.StatusUnprocessableEntity,
			code:   "ACCOUNT_NOT_RESOLVED",
		},
		{
			name: "debit and credit on one line",
			body: map[string]any{
				"entry_date": "2024-03-01", "description": "Both sides",
				"lines": []map[string]any{line("1010", "10.00", "10.00"), line("3000", "", "10.00")},
			},
			status: http.StatusBadRequest,
			code:   "INVALID_LINE_AMOUNT",
		},
		{
			name: "sub-cent amount",
			body: map[string]any{
				"entry_date": "2024-03-01", "description": "Precision",
				"lines": []map[string]any{line("1010", "10.005", ""), line("3000", "", "10.005")},
			},
			status: http.StatusBadRequest,
			code:   "INVALID_LINE_PRECISION",
		},
		{
			name: "missing lines",
			body: map[string]any{
				"entry_date": "2024-03-01", "description": "Empty",
			},
			status: http.StatusBadRequest,
			code:   dto.ErrCodeValidation,
		},
		{
			name: "bad date",
			body: map[string]any{
				"entry_date": "01/03/2024", "description": "Date",
				"lines": []map[string]any{line("1010", "1", ""), line("3000", "", "1")},
			},
			status: http.StatusBadRequest,
			code:   dto.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/api/v1/journal-entries", tt.body)
			requireErrorCode(t, w, tt.status, tt.code)
		})
	}
}

func TestJournalHandler_Reverse(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/journal-entries", map[string]any{
		"entry_date":  "2024-03-01",
		"description": "Deposit",
		"lines":       []map[string]any{line("1010", "100.00", ""), line("1000", "", "100.00")},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var original dto.PostResultResponse
	decode(t, w, &original)

	path := "/api/v1/journal-entries/" + original.EntryID.String() + "/reverse"
	w = f.do(t, http.MethodPost, path, map[string]any{"reason": "Posted to the wrong account"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var reversal dto.PostResultResponse
	decode(t, w, &reversal)
	assert.NotEqual(t, original.EntryID, reversal.EntryID)
	assert.Equal(t, int64(2), reversal.EntryNumber)

	t.Run("twice", func(t *testing.T) {
		w := f.do(t, http.MethodPost, path, map[string]any{"reason": "again"})
		requireErrorCode(t, w, http.StatusConflict, "ENTRY_ALREADY_REVERSED")
	})

	t.Run("the reversal itself", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/journal-entries/"+reversal.EntryID.String()+"/reverse",
			map[string]any{"reason": "undo the undo"})
		requireErrorCode(t, w, http.StatusConflict, "ENTRY_IS_REVERSAL")
	})

	t.Run("unknown entry", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/journal-entries/"+uuid.NewString()+"/reverse",
			map[string]any{"reason": "missing"})
		requireErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	})

	t.Run("another company's entry", func(t *testing.T) {
		w := f.doAs(t, uuid.New(), http.MethodPost, path, map[string]any{"reason": "not mine"})
		requireErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	})

	t.Run("malformed id", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/journal-entries/not-a-uuid/reverse", map[string]any{"reason": "x"})
		requireErrorCode(t, w, http.StatusBadRequest, dto.ErrCodeValidation)
	})

	t.Run("reason required", func(t *testing.T) {
		w := f.do(t, http.MethodPost, path, map[string]any{})
		requireErrorCode(t, w, http.StatusBadRequest, dto.ErrCodeValidation)
	})
}

func TestJournalHandler_Events(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name string
		path string
		body map[string]any
	}{
		{
			name: "invoice created",
			path: "/api/v1/events/invoice-created",
			body: map[string]any{
				"event_date": "2024-03-04", "invoice_number": "INV-001",
				"subtotal": "1000.00", "tax": "150.00",
			},
		},
		{
			name: "payment received",
			path: "/api/v1/events/payment-received",
			body: map[string]any{
				"event_date": "2024-03-05", "reference": "RCPT-001", "amount": "1150.00", "method": "BANK_TRANSFER",
			},
		},
		{
			name: "expense recorded",
			path: "/api/v1/events/expense-recorded",
			body: map[string]any{
				"event_date": "2024-03-06", "reference": "EXP-001", "category": "RENT",
				"amount": "800.00", "payment_method": "CASH",
			},
		},
		{
			name: "pos order completed",
			path: "/api/v1/events/pos-order-completed",
			body: map[string]any{
				"event_date": "2024-03-07", "order_number": "POS-001",
				"subtotal": "100.00", "tax": "15.00", "cost_of_goods": "60.00",
				"tenders": []map[string]any{{"method": "CASH", "amount": "115.00"}},
			},
		},
		{
			name: "invoice cancelled",
			path: "/api/v1/events/invoice-cancelled",
			body: map[string]any{
				"event_date": "2024-03-08", "invoice_number": "INV-001",
				"subtotal": "1000.00", "tax": "150.00",
				"document_id": uuid.NewString(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			var result dto.PostResultResponse
			decode(t, w, &result)
			assert.NotEqual(t, uuid.Nil, result.EntryID)
		})
	}

	t.Run("rejected event", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/events/payment-received", map[string]any{
			"event_date": "2024-03-05", "reference": "RCPT-002", "amount": "-5.00", "method": "CASH",
		})
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("missing event date", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/events/invoice-created", map[string]any{
			"invoice_number": "INV-002", "subtotal": "1.00",
		})
		requireErrorCode(t, w, http.StatusBadRequest, dto.ErrCodeValidation)
	})
}
