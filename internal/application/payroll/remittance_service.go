package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	appledger "github.com/erp/ledgercore/internal/application/ledger"
	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/domain/posting"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GenerateCommand selects the company and month to build remittances for
type GenerateCommand struct {
	CompanyID uuid.UUID
	Year      int
	Month     time.Month
}

// PayRemittanceCommand records a payment against a remittance. A zero
// Amount pays the outstanding balance.
type PayRemittanceCommand struct {
	CompanyID    uuid.UUID
	UserID       uuid.UUID
	RemittanceID uuid.UUID
	Amount       decimal.Decimal
	PaidAt       time.Time
}

// RemittanceService builds and settles the monthly statutory remittances
type RemittanceService struct {
	scope   TransactionScope
	posting *appledger.PostingService
	logger  *zap.Logger
	options
}

// NewRemittanceService creates a new RemittanceService
func NewRemittanceService(
	scope TransactionScope,
	postingService *appledger.PostingService,
	logger *zap.Logger,
	opts ...Option,
) *RemittanceService {
	return &RemittanceService{
		scope:   scope,
		posting: postingService,
		logger:  logger,
		options: buildOptions(opts),
	}
}

// Generate sums the statutory amounts of approved and paid runs whose period
// ends in the month and upserts one remittance per non-zero type. Re-running
// it refreshes unpaid amounts and leaves paid remittances untouched.
func (s *RemittanceService) Generate(ctx context.Context, cmd GenerateCommand) ([]payroll.StatutoryRemittance, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payroll", "generate_remittances")
	defer span.End()

	if cmd.CompanyID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_COMPANY", "Company ID is required")
	}
	if cmd.Month < time.January || cmd.Month > time.December || cmd.Year < 1 {
		return nil, shared.NewValidationError("INVALID_PERIOD", "A valid year and month are required")
	}
	periodMonth := payroll.PeriodMonth(cmd.Year, cmd.Month)
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, cmd.CompanyID.String(),
		telemetry.SpanAttrPeriodMonth, periodMonth,
	)

	var result []payroll.StatutoryRemittance
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		from, to := payroll.MonthBounds(cmd.Year, cmd.Month)
		entries, err := repos.RunRepo().EntriesForPeriodEnd(ctx, cmd.CompanyID, from, to, payroll.RemittableStatuses)
		if err != nil {
			return fmt.Errorf("failed to load payroll entries: %w", err)
		}

		sums := payroll.SumRemittances(entries)
		for _, t := range payroll.RemittanceTypes() {
			amounts := sums[t]
			if amounts.Total().IsZero() {
				continue
			}
			if err := s.upsert(ctx, repos.RemittanceRepo(), cmd, t, amounts); err != nil {
				return err
			}
		}

		result, err = repos.RemittanceRepo().ListByPeriod(ctx, cmd.CompanyID, periodMonth)
		if err != nil {
			return fmt.Errorf("failed to list remittances: %w", err)
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("failed to generate remittances",
			zap.String("company_id", cmd.CompanyID.String()),
			zap.String("period_month", periodMonth),
			zap.Error(err))
		return nil, err
	}

	telemetry.SetOK(span)
	s.logger.Info("remittances generated",
		zap.String("company_id", cmd.CompanyID.String()),
		zap.String("period_month", periodMonth),
		zap.Int("count", len(result)))
	return result, nil
}

func (s *RemittanceService) upsert(ctx context.Context, repo payroll.RemittanceRepository, cmd GenerateCommand, t payroll.RemittanceType, amounts payroll.RemittanceAmounts) error {
	periodMonth := payroll.PeriodMonth(cmd.Year, cmd.Month)

	existing, err := repo.FindByPeriod(ctx, cmd.CompanyID, t, periodMonth)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return fmt.Errorf("failed to find %s remittance: %w", t, err)
	}

	if existing == nil {
		fresh, err := payroll.NewStatutoryRemittance(cmd.CompanyID, t, cmd.Year, cmd.Month, amounts)
		if err != nil {
			return err
		}
		inserted, err := repo.CreateIfAbsent(ctx, fresh)
		if err != nil {
			return fmt.Errorf("failed to create %s remittance: %w", t, err)
		}
		if inserted {
			s.metrics.RecordRemittance(ctx, cmd.CompanyID, string(t), "generated", fresh.AmountDue)
			return nil
		}
		// Lost the race to a concurrent generator; refresh its row instead.
		existing, err = repo.FindByPeriod(ctx, cmd.CompanyID, t, periodMonth)
		if err != nil {
			return fmt.Errorf("failed to find %s remittance: %w", t, err)
		}
	}

	if existing.Status == payroll.RemittanceStatusPaid {
		return nil
	}
	changed, err := existing.UpdateAmounts(amounts)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := repo.Save(ctx, existing); err != nil {
		return fmt.Errorf("failed to update %s remittance: %w", t, err)
	}
	s.metrics.RecordRemittance(ctx, cmd.CompanyID, string(t), "updated", existing.AmountDue)
	return nil
}

// Pay posts a remittance payment from the operating bank account and
// applies it to the remittance.
func (s *RemittanceService) Pay(ctx context.Context, cmd PayRemittanceCommand) (*payroll.StatutoryRemittance, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payroll", "pay_remittance")
	defer span.End()
	telemetry.SetAttributes(span, telemetry.SpanAttrCompanyID, cmd.CompanyID.String())

	if cmd.Amount.IsNegative() {
		return nil, shared.NewValidationError("INVALID_PAYMENT_AMOUNT", "Payment amount cannot be negative")
	}
	paidAt := cmd.PaidAt
	if paidAt.IsZero() {
		paidAt = s.now().UTC()
	}

	var rem *payroll.StatutoryRemittance
	var amount decimal.Decimal
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		rem, err = repos.RemittanceRepo().FindByID(ctx, cmd.CompanyID, cmd.RemittanceID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewNotFoundError("remittance")
			}
			return fmt.Errorf("failed to find remittance: %w", err)
		}
		if rem.Status == payroll.RemittanceStatusPaid {
			return shared.NewStateConflictError("REMITTANCE_PAID",
				fmt.Sprintf("%s remittance for %s has already been paid", rem.RemittanceType, rem.PeriodMonth))
		}

		amount = cmd.Amount
		if amount.IsZero() {
			amount = rem.Outstanding()
		}
		if !amount.IsPositive() {
			return shared.NewValidationError("INVALID_PAYMENT_AMOUNT", "Nothing is outstanding on this remittance")
		}

		lines, err := posting.RemittancePaid(rem.RemittanceType, rem.PeriodMonth, amount)
		if err != nil {
			return err
		}
		remID := rem.ID
		posted, err := s.posting.PostInTx(ctx, repos, appledger.PostCommand{
			CompanyID:        cmd.CompanyID,
			UserID:           cmd.UserID,
			Date:             paidAt,
			Description:      fmt.Sprintf("%s remittance %s", rem.RemittanceType, rem.PeriodMonth),
			Reference:        fmt.Sprintf("%s-%s", rem.RemittanceType, rem.PeriodMonth),
			SourceModule:     ledger.SourceRemittance,
			SourceDocumentID: &remID,
			Lines:            lines,
		})
		if err != nil {
			return err
		}

		if err := rem.RecordPayment(amount, posted.EntryID, paidAt); err != nil {
			return err
		}
		return repos.RemittanceRepo().Save(ctx, rem)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("failed to pay remittance",
			zap.String("company_id", cmd.CompanyID.String()),
			zap.String("remittance_id", cmd.RemittanceID.String()),
			zap.Error(err))
		return nil, err
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrRemittance, string(rem.RemittanceType),
		telemetry.SpanAttrAmount, amount.String(),
	)
	telemetry.SetOK(span)
	s.metrics.RecordRemittance(ctx, cmd.CompanyID, string(rem.RemittanceType), "paid", amount)
	s.logger.Info("remittance paid",
		zap.String("company_id", cmd.CompanyID.String()),
		zap.String("remittance_id", rem.ID.String()),
		zap.String("type", string(rem.RemittanceType)),
		zap.String("period_month", rem.PeriodMonth),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("status", string(rem.Status)))
	return rem, nil
}

// MarkOverdue flags every PENDING remittance whose due date is before asOf
// and returns how many were flagged.
func (s *RemittanceService) MarkOverdue(ctx context.Context, companyID uuid.UUID, asOf time.Time) (int, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payroll", "mark_remittances_overdue")
	defer span.End()
	telemetry.SetAttributes(span, telemetry.SpanAttrCompanyID, companyID.String())

	flagged := 0
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		pending, err := repos.RemittanceRepo().FindPendingDueBefore(ctx, companyID, asOf)
		if err != nil {
			return fmt.Errorf("failed to find pending remittances: %w", err)
		}
		for i := range pending {
			rem := &pending[i]
			if !rem.MarkOverdue(asOf) {
				continue
			}
			if err := repos.RemittanceRepo().Save(ctx, rem); err != nil {
				return fmt.Errorf("failed to update remittance: %w", err)
			}
			s.metrics.RecordRemittance(ctx, companyID, string(rem.RemittanceType), "overdue", rem.Outstanding())
			flagged++
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("failed to mark remittances overdue", zap.String("company_id", companyID.String()), zap.Error(err))
		return 0, err
	}

	telemetry.SetOK(span)
	if flagged > 0 {
		s.logger.Info("remittances marked overdue",
			zap.String("company_id", companyID.String()),
			zap.Int("count", flagged))
	}
	return flagged, nil
}

// ListRemittances returns the remittances of a month
func (s *RemittanceService) ListRemittances(ctx context.Context, companyID uuid.UUID, year int, month time.Month) ([]payroll.StatutoryRemittance, error) {
	var result []payroll.StatutoryRemittance
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		result, err = repos.RemittanceRepo().ListByPeriod(ctx, companyID, payroll.PeriodMonth(year, month))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list remittances: %w", err)
	}
	return result, nil
}
