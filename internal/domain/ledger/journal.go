package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Source modules recorded on journal entries
const (
	SourceManual     = "MANUAL"
	SourceInvoice    = "INVOICE"
	SourcePayment    = "PAYMENT"
	SourceExpense    = "EXPENSE"
	SourcePayroll    = "PAYROLL"
	SourcePOS        = "POS"
	SourceRemittance = "REMITTANCE"
	SourceReversal   = "REVERSAL"
)

// EntryStatus is the lifecycle status of a journal entry
type EntryStatus string

const (
	EntryStatusPosted EntryStatus = "POSTED"
)

// DraftLine is a caller-proposed journal line before validation.
// Exactly one of Debit or Credit may be non-zero.
type DraftLine struct {
	AccountNumber string
	Description   string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// DebitLine builds a debit draft line
func DebitLine(account string, amount decimal.Decimal, description string) DraftLine {
	return DraftLine{AccountNumber: account, Description: description, Debit: amount, Credit: decimal.Zero}
}

// CreditLine builds a credit draft line
func CreditLine(account string, amount decimal.Decimal, description string) DraftLine {
	return DraftLine{AccountNumber: account, Description: description, Debit: decimal.Zero, Credit: amount}
}

// IsZero reports whether both sides are zero
func (l DraftLine) IsZero() bool {
	return l.Debit.IsZero() && l.Credit.IsZero()
}

// Mirror swaps debit and credit
func (l DraftLine) Mirror() DraftLine {
	return DraftLine{AccountNumber: l.AccountNumber, Description: l.Description, Debit: l.Credit, Credit: l.Debit}
}

// MirrorLines swaps debit and credit on every line
func MirrorLines(lines []DraftLine) []DraftLine {
	out := make([]DraftLine, len(lines))
	for i, l := range lines {
		out[i] = l.Mirror()
	}
	return out
}

// PostingHeader is the descriptive part of a posting request
type PostingHeader struct {
	CompanyID        uuid.UUID
	EntryDate        time.Time
	Description      string
	Reference        string
	SourceModule     string
	SourceDocumentID *uuid.UUID
	PostedBy         uuid.UUID
}

// Validate checks the header fields required to post
func (h PostingHeader) Validate() error {
	if h.CompanyID == uuid.Nil {
		return shared.NewValidationError("INVALID_COMPANY", "Company ID is required")
	}
	if h.EntryDate.IsZero() {
		return shared.NewValidationError("INVALID_ENTRY_DATE", "Entry date is required")
	}
	if strings.TrimSpace(h.Description) == "" {
		return shared.NewValidationError("INVALID_DESCRIPTION", "Description is required")
	}
	if len(h.Description) > 500 {
		return shared.NewValidationError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	if strings.TrimSpace(h.SourceModule) == "" {
		return shared.NewValidationError("INVALID_SOURCE_MODULE", "Source module is required")
	}
	return nil
}

// PreparedLines is the normalized, balanced line set ready for account resolution
type PreparedLines struct {
	Lines        []DraftLine
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

// PrepareLines validates draft lines, drops zero-amount lines and checks
// balance. Every posting path goes through here.
func PrepareLines(lines []DraftLine) (PreparedLines, error) {
	kept := make([]DraftLine, 0, len(lines))
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for i, l := range lines {
		l.AccountNumber = strings.TrimSpace(l.AccountNumber)
		if l.AccountNumber == "" {
			return PreparedLines{}, shared.NewValidationError("INVALID_LINE_ACCOUNT",
				fmt.Sprintf("line %d: account code is required", i+1))
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return PreparedLines{}, shared.NewValidationError("INVALID_LINE_AMOUNT",
				fmt.Sprintf("line %d: amounts cannot be negative", i+1))
		}
		if l.Debit.IsPositive() && l.Credit.IsPositive() {
			return PreparedLines{}, shared.NewValidationError("INVALID_LINE_AMOUNT",
				fmt.Sprintf("line %d: a line cannot carry both a debit and a credit", i+1))
		}
		if !valueobject.HasMoneyPrecision(l.Debit) || !valueobject.HasMoneyPrecision(l.Credit) {
			return PreparedLines{}, shared.NewValidationError("INVALID_LINE_PRECISION",
				fmt.Sprintf("line %d: amounts cannot have more than 2 decimal places", i+1))
		}
		if l.IsZero() {
			continue
		}
		totalDebits = totalDebits.Add(l.Debit)
		totalCredits = totalCredits.Add(l.Credit)
		kept = append(kept, l)
	}

	if len(kept) < 2 {
		return PreparedLines{}, shared.NewValidationError("INSUFFICIENT_LINES",
			"A journal entry needs at least two non-zero lines")
	}

	if totalDebits.Sub(totalCredits).Abs().GreaterThan(valueobject.BalanceTolerance) {
		return PreparedLines{}, shared.NewOutOfBalanceError(fmt.Sprintf(
			"debits %s do not equal credits %s", totalDebits.StringFixed(2), totalCredits.StringFixed(2)))
	}

	return PreparedLines{Lines: kept, TotalDebits: totalDebits, TotalCredits: totalCredits}, nil
}

// JournalLine is a persisted line of a journal entry
type JournalLine struct {
	ID            uuid.UUID
	LineNo        int
	AccountID     uuid.UUID
	AccountNumber string
	Description   string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// JournalEntry is a posted, balanced journal entry. Entries are never
// edited; corrections are made by posting a reversal.
type JournalEntry struct {
	shared.CompanyAggregateRoot
	EntryNumber      int64
	EntryDate        time.Time
	Description      string
	Reference        string
	SourceModule     string
	SourceDocumentID *uuid.UUID
	TotalDebits      decimal.Decimal
	TotalCredits     decimal.Decimal
	Status           EntryStatus
	ReversalOfID     *uuid.UUID
	ReversedByID     *uuid.UUID
	PostedBy         uuid.UUID
	Lines            []JournalLine
}

// NewJournalEntry assembles a posted entry from prepared lines and resolved
// accounts keyed by account number.
func NewJournalEntry(header PostingHeader, entryNumber int64, prepared PreparedLines, accounts map[string]*Account) (*JournalEntry, error) {
	if err := header.Validate(); err != nil {
		return nil, err
	}
	if entryNumber <= 0 {
		return nil, shared.NewValidationError("INVALID_ENTRY_NUMBER", "Entry number must be positive")
	}

	entry := &JournalEntry{
		CompanyAggregateRoot: shared.NewCompanyAggregateRootWithCreator(header.CompanyID, header.PostedBy),
		EntryNumber:          entryNumber,
		EntryDate:            header.EntryDate,
		Description:          strings.TrimSpace(header.Description),
		Reference:            header.Reference,
		SourceModule:         header.SourceModule,
		SourceDocumentID:     header.SourceDocumentID,
		TotalDebits:          prepared.TotalDebits,
		TotalCredits:         prepared.TotalCredits,
		Status:               EntryStatusPosted,
		PostedBy:             header.PostedBy,
		Lines:                make([]JournalLine, 0, len(prepared.Lines)),
	}

	for i, l := range prepared.Lines {
		account, ok := accounts[l.AccountNumber]
		if !ok || account == nil {
			return nil, shared.NewAccountResolutionError(l.AccountNumber, "not resolved")
		}
		entry.Lines = append(entry.Lines, JournalLine{
			ID:            uuid.New(),
			LineNo:        i + 1,
			AccountID:     account.ID,
			AccountNumber: l.AccountNumber,
			Description:   l.Description,
			Debit:         l.Debit,
			Credit:        l.Credit,
		})
	}
	return entry, nil
}

// IsReversed reports whether a reversal has been posted against this entry
func (e *JournalEntry) IsReversed() bool {
	return e.ReversedByID != nil
}

// ReversalLines returns draft lines that exactly undo this entry
func (e *JournalEntry) ReversalLines() []DraftLine {
	lines := make([]DraftLine, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = DraftLine{
			AccountNumber: l.AccountNumber,
			Description:   l.Description,
			Debit:         l.Credit,
			Credit:        l.Debit,
		}
	}
	return lines
}

// CanReverse checks that the entry is eligible for reversal
func (e *JournalEntry) CanReverse() error {
	if e.IsReversed() {
		return shared.NewStateConflictError("ENTRY_ALREADY_REVERSED", "Journal entry has already been reversed")
	}
	if e.ReversalOfID != nil {
		return shared.NewStateConflictError("ENTRY_IS_REVERSAL", "A reversal entry cannot itself be reversed")
	}
	return nil
}
