package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TrialBalanceService reports account balances under the normal-side
// sign convention
type TrialBalanceService struct {
	accountRepo ledger.AccountRepository
	journalRepo ledger.JournalEntryRepository
	logger      *zap.Logger
}

// NewTrialBalanceService creates a new TrialBalanceService
func NewTrialBalanceService(
	accountRepo ledger.AccountRepository,
	journalRepo ledger.JournalEntryRepository,
	logger *zap.Logger,
) *TrialBalanceService {
	return &TrialBalanceService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		logger:      logger,
	}
}

// TrialBalance builds the trial balance of entries dated on or before asOf
func (s *TrialBalanceService) TrialBalance(ctx context.Context, companyID uuid.UUID, asOf time.Time) (*ledger.TrialBalance, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ledger", "trial_balance")
	defer span.End()
	telemetry.SetAttributes(span, telemetry.SpanAttrCompanyID, companyID.String())

	accounts, err := s.accountRepo.FindAll(ctx, companyID)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("failed to load chart of accounts", zap.String("company_id", companyID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}
	totals, err := s.journalRepo.AccountTotals(ctx, companyID, asOf)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("failed to sum account activity", zap.String("company_id", companyID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to sum account activity: %w", err)
	}

	tb := ledger.BuildTrialBalance(accounts, totals)
	sort.Slice(tb.Lines, func(i, j int) bool {
		return tb.Lines[i].AccountNumber < tb.Lines[j].AccountNumber
	})
	if !tb.IsBalanced() {
		s.logger.Error("trial balance does not balance",
			zap.String("company_id", companyID.String()),
			zap.String("total_debits", tb.TotalDebits.StringFixed(2)),
			zap.String("total_credits", tb.TotalCredits.StringFixed(2)))
	}
	telemetry.SetOK(span)
	return &tb, nil
}
