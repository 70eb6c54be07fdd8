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
	"github.com/erp/ledgercore/internal/domain/shared/valueobject"
	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateRunCommand is a request to calculate a DRAFT payroll run
type CreateRunCommand struct {
	CompanyID   uuid.UUID
	UserID      uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	PayDate     time.Time
	Frequency   payroll.Frequency
	Employees   []payroll.EmployeePay
}

// ApproveRunCommand is a request to approve a DRAFT run and post its journal entry
type ApproveRunCommand struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
	RunID     uuid.UUID
}

// MarkRunPaidCommand is a request to record the payout of an APPROVED run
type MarkRunPaidCommand struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
	RunID     uuid.UUID
	PaidAt    time.Time
}

// Option configures optional payroll service dependencies
type Option func(*options)

type options struct {
	metrics *telemetry.LedgerMetrics
	now     func() time.Time
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMetrics records payroll and remittance counters
func WithMetrics(m *telemetry.LedgerMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithClock overrides the clock used for approval and payment timestamps
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// RunService aggregates employee calculations into payroll runs and drives
// them through approval and payment.
type RunService struct {
	scope      TransactionScope
	posting    *appledger.PostingService
	calculator *payroll.Calculator
	logger     *zap.Logger
	options
}

// NewRunService creates a new RunService
func NewRunService(
	scope TransactionScope,
	postingService *appledger.PostingService,
	calculator *payroll.Calculator,
	logger *zap.Logger,
	opts ...Option,
) *RunService {
	return &RunService{
		scope:      scope,
		posting:    postingService,
		calculator: calculator,
		logger:     logger,
		options:    buildOptions(opts),
	}
}

// CreateRun calculates every employee and stores a DRAFT run. Loan balances
// are drawn down in the same transaction. Nothing is posted to the ledger.
func (s *RunService) CreateRun(ctx context.Context, cmd CreateRunCommand) (*payroll.PayrollRun, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payroll", "create_run")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, cmd.CompanyID.String(),
		telemetry.SpanAttrEmployeeCount, len(cmd.Employees),
	)

	if err := validateCreateRun(cmd); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	var run *payroll.PayrollRun
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		entries, err := s.calculateEntries(ctx, repos, cmd)
		if err != nil {
			return err
		}

		number, err := repos.SequenceRepo().Next(ctx, cmd.CompanyID, ledger.SequencePayrollRun)
		if err != nil {
			return fmt.Errorf("failed to allocate run number: %w", err)
		}
		run, err = payroll.NewPayrollRun(cmd.CompanyID, cmd.UserID, number, cmd.PeriodStart, cmd.PeriodEnd, cmd.PayDate, cmd.Frequency)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := run.AddEntry(entry); err != nil {
				return err
			}
		}
		if err := repos.RunRepo().Create(ctx, run); err != nil {
			return fmt.Errorf("failed to save payroll run: %w", err)
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("failed to create payroll run",
			zap.String("company_id", cmd.CompanyID.String()),
			zap.Error(err))
		return nil, err
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrRunID, run.ID.String(),
		telemetry.SpanAttrRunNumber, run.RunNumber,
	)
	telemetry.SetOK(span)
	s.metrics.RecordPayrollRun(ctx, cmd.CompanyID, string(payroll.RunStatusDraft), run.Totals.GrossPay)
	s.logger.Info("payroll run created",
		zap.String("company_id", cmd.CompanyID.String()),
		zap.String("run_id", run.ID.String()),
		zap.Int64("run_number", run.RunNumber),
		zap.Int("employees", len(run.Entries)),
		zap.String("gross", run.Totals.GrossPay.StringFixed(2)))
	return run, nil
}

func validateCreateRun(cmd CreateRunCommand) error {
	if cmd.CompanyID == uuid.Nil {
		return shared.NewValidationError("INVALID_COMPANY", "Company ID is required")
	}
	if err := payroll.ValidatePeriod(cmd.PeriodStart, cmd.PeriodEnd, cmd.PayDate, cmd.Frequency); err != nil {
		return err
	}
	if len(cmd.Employees) == 0 {
		return shared.NewValidationError("EMPTY_RUN", "A payroll run needs at least one employee")
	}
	seen := make(map[uuid.UUID]bool, len(cmd.Employees))
	for _, e := range cmd.Employees {
		if e.EmployeeID == uuid.Nil {
			return shared.NewValidationError("INVALID_EMPLOYEE", "Employee ID is required")
		}
		if seen[e.EmployeeID] {
			return shared.NewValidationError("DUPLICATE_EMPLOYEE",
				fmt.Sprintf("employee %s appears more than once in the run", e.EmployeeID))
		}
		seen[e.EmployeeID] = true
	}
	return nil
}

// calculateEntries merges YTD totals, loans and pension plans into each
// employee's calculation.
func (s *RunService) calculateEntries(ctx context.Context, repos TransactionalRepositories, cmd CreateRunCommand) ([]payroll.PayrollEntry, error) {
	employeeIDs := make([]uuid.UUID, len(cmd.Employees))
	for i, e := range cmd.Employees {
		employeeIDs[i] = e.EmployeeID
	}

	ytd, err := repos.RunRepo().YTDTotals(ctx, cmd.CompanyID, employeeIDs,
		payroll.FiscalYearStart(cmd.PeriodEnd), cmd.PeriodStart, payroll.YTDStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to load year-to-date totals: %w", err)
	}

	loans, err := repos.LoanRepo().FindActiveByEmployees(ctx, cmd.CompanyID, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load loan deductions: %w", err)
	}
	loansByEmployee := make(map[uuid.UUID][]*payroll.LoanDeduction)
	for i := range loans {
		loansByEmployee[loans[i].EmployeeID] = append(loansByEmployee[loans[i].EmployeeID], &loans[i])
	}

	plans, err := repos.PensionRepo().FindActiveByEmployees(ctx, cmd.CompanyID, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load pension plans: %w", err)
	}
	planByEmployee := make(map[uuid.UUID]*payroll.PensionPlan, len(plans))
	for i := range plans {
		if _, ok := planByEmployee[plans[i].EmployeeID]; !ok {
			planByEmployee[plans[i].EmployeeID] = &plans[i]
		}
	}

	periodNumber := payroll.PeriodNumber(cmd.Frequency, cmd.PeriodEnd)
	entries := make([]payroll.PayrollEntry, 0, len(cmd.Employees))
	for _, pay := range cmd.Employees {
		in := employeeInput{
			pay:          pay,
			plan:         planByEmployee[pay.EmployeeID],
			loans:        loansByEmployee[pay.EmployeeID],
			ytd:          ytd[pay.EmployeeID],
			frequency:    cmd.Frequency,
			periodNumber: periodNumber,
		}
		entry, err := s.calculateEntry(ctx, repos, in)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", pay.EmployeeID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

type employeeInput struct {
	pay          payroll.EmployeePay
	plan         *payroll.PensionPlan
	loans        []*payroll.LoanDeduction
	ytd          payroll.YTDTotals
	frequency    payroll.Frequency
	periodNumber int
}

// calculateEntry runs the calculator for one employee. Contributions to an
// approved pension plan, or an explicit contribution without a plan, reduce
// the taxable base; unapproved plan contributions are only withheld.
//
// Nothing is withheld from an employee without gross pay. Scheduled loan
// repayments are drawn only from the net pay left after every other
// deduction, so net pay never goes negative and a loan is never charged for
// pay the employee did not receive.
func (s *RunService) calculateEntry(ctx context.Context, repos TransactionalRepositories, in employeeInput) (payroll.PayrollEntry, error) {
	pay := in.pay
	if pay.LoanDeductions.IsNegative() {
		return payroll.PayrollEntry{}, shared.NewValidationError("INVALID_DEDUCTION", "loan deductions cannot be negative")
	}
	gross := valueobject.RoundMoney(valueobject.Sum(pay.BasicSalary, pay.Overtime, pay.Bonus, pay.Commission, pay.Allowances))

	employeePension := valueobject.RoundMoney(pay.PensionContribution)
	employerPension := decimal.Zero
	relief := employeePension
	if in.plan != nil {
		employeePension = in.plan.EmployeeAmount(pay.PensionContribution, gross)
		employerPension = in.plan.EmployerAmount(gross)
		relief = decimal.Zero
		if in.plan.IsApproved {
			relief = employeePension
		}
	}

	calc := payroll.CalculationInput{
		BasicSalary:         pay.BasicSalary,
		Overtime:            pay.Overtime,
		Bonus:               pay.Bonus,
		Commission:          pay.Commission,
		Allowances:          pay.Allowances,
		PensionContribution: relief,
		OtherDeductions:     valueobject.Sum(employeePension, pay.LoanDeductions, pay.OtherDeductions),
		Frequency:           in.frequency,
		YTDGross:            in.ytd.Gross,
		YTDNIS:              in.ytd.NIS,
		YTDTaxable:          in.ytd.Taxable,
		YTDIncomeTax:        in.ytd.IncomeTax,
		PeriodNumber:        in.periodNumber,
	}
	result, err := s.calculator.Calculate(calc)
	if err != nil {
		return payroll.PayrollEntry{}, err
	}

	if !result.GrossPay.IsPositive() {
		pay.PensionContribution = decimal.Zero
		pay.LoanDeductions = decimal.Zero
		pay.OtherDeductions = decimal.Zero
		return payroll.NewPayrollEntry(pay, result, decimal.Zero), nil
	}
	if result.NetPay.IsNegative() {
		return payroll.PayrollEntry{}, shared.NewValidationError("DEDUCTIONS_EXCEED_PAY",
			fmt.Sprintf("deductions exceed net pay of %s by %s",
				result.NetPay.Add(result.Employee.Other).StringFixed(2), result.NetPay.Neg().StringFixed(2)))
	}

	drawn, err := s.drawLoans(ctx, repos, in.loans, in.frequency, result.NetPay)
	if err != nil {
		return payroll.PayrollEntry{}, err
	}
	if drawn.IsPositive() {
		pay.LoanDeductions = valueobject.RoundMoney(pay.LoanDeductions.Add(drawn))
		calc.OtherDeductions = calc.OtherDeductions.Add(drawn)
		if result, err = s.calculator.Calculate(calc); err != nil {
			return payroll.PayrollEntry{}, err
		}
	}

	pay.PensionContribution = employeePension
	return payroll.NewPayrollEntry(pay, result, employerPension), nil
}

// drawLoans applies this period's repayment of each active loan, in order,
// until available is used up, and returns the total drawn.
func (s *RunService) drawLoans(ctx context.Context, repos TransactionalRepositories, loans []*payroll.LoanDeduction, f payroll.Frequency, available decimal.Decimal) (decimal.Decimal, error) {
	drawn := decimal.Zero
	for _, loan := range loans {
		amount := decimal.Min(loan.PeriodAmount(f), available.Sub(drawn))
		if !amount.IsPositive() {
			continue
		}
		if err := loan.Apply(amount); err != nil {
			return decimal.Zero, err
		}
		if err := repos.LoanRepo().Save(ctx, loan); err != nil {
			return decimal.Zero, fmt.Errorf("failed to update loan deduction: %w", err)
		}
		drawn = drawn.Add(amount)
	}
	return drawn, nil
}

// ApproveRun posts the run's journal entry and moves it to APPROVED in one
// transaction. A run that is no longer DRAFT is rejected without side effects.
func (s *RunService) ApproveRun(ctx context.Context, cmd ApproveRunCommand) (*payroll.PayrollRun, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payroll", "approve_run")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, cmd.CompanyID.String(),
		telemetry.SpanAttrRunID, cmd.RunID.String(),
	)

	var run *payroll.PayrollRun
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		run, err = findRun(ctx, repos, cmd.CompanyID, cmd.RunID)
		if err != nil {
			return err
		}
		if run.Status != payroll.RunStatusDraft {
			return shared.NewStateConflictError("RUN_NOT_DRAFT",
				fmt.Sprintf("payroll run %d is %s; only DRAFT runs can be approved", run.RunNumber, run.Status))
		}

		run.RecalculateTotals()
		runID := run.ID
		posted, err := s.posting.PostInTx(ctx, repos, appledger.PostCommand{
			CompanyID:        cmd.CompanyID,
			UserID:           cmd.UserID,
			Date:             run.PayDate,
			Description:      fmt.Sprintf("Payroll run %d for %s to %s", run.RunNumber, run.PeriodStart.Format(time.DateOnly), run.PeriodEnd.Format(time.DateOnly)),
			Reference:        fmt.Sprintf("PR-%d", run.RunNumber),
			SourceModule:     ledger.SourcePayroll,
			SourceDocumentID: &runID,
			Lines:            posting.PayrollRunApproved(run.RunNumber, run.Totals),
		})
		if err != nil {
			return err
		}

		if err := run.Approve(cmd.UserID, posted.EntryID, s.now().UTC()); err != nil {
			return err
		}
		return repos.RunRepo().UpdateStatus(ctx, run, payroll.RunStatusDraft)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("failed to approve payroll run",
			zap.String("company_id", cmd.CompanyID.String()),
			zap.String("run_id", cmd.RunID.String()),
			zap.Error(err))
		return nil, err
	}

	telemetry.SetOK(span)
	s.metrics.RecordPayrollRun(ctx, cmd.CompanyID, string(payroll.RunStatusApproved), run.Totals.GrossPay)
	s.logger.Info("payroll run approved",
		zap.String("company_id", cmd.CompanyID.String()),
		zap.String("run_id", run.ID.String()),
		zap.Int64("run_number", run.RunNumber),
		zap.String("journal_entry_id", run.JournalEntryID.String()))
	return run, nil
}

// MarkRunPaid posts the net pay disbursement and moves an APPROVED run to PAID
func (s *RunService) MarkRunPaid(ctx context.Context, cmd MarkRunPaidCommand) (*payroll.PayrollRun, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payroll", "mark_run_paid")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, cmd.CompanyID.String(),
		telemetry.SpanAttrRunID, cmd.RunID.String(),
	)

	paidAt := cmd.PaidAt
	if paidAt.IsZero() {
		paidAt = s.now().UTC()
	}

	var run *payroll.PayrollRun
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		run, err = findRun(ctx, repos, cmd.CompanyID, cmd.RunID)
		if err != nil {
			return err
		}
		if run.Status != payroll.RunStatusApproved {
			return shared.NewStateConflictError("RUN_NOT_APPROVED",
				fmt.Sprintf("payroll run %d is %s; only APPROVED runs can be paid", run.RunNumber, run.Status))
		}

		runID := run.ID
		posted, err := s.posting.PostInTx(ctx, repos, appledger.PostCommand{
			CompanyID:        cmd.CompanyID,
			UserID:           cmd.UserID,
			Date:             paidAt,
			Description:      fmt.Sprintf("Payroll run %d payment", run.RunNumber),
			Reference:        fmt.Sprintf("PR-%d", run.RunNumber),
			SourceModule:     ledger.SourcePayroll,
			SourceDocumentID: &runID,
			Lines:            posting.PayrollRunPaid(run.RunNumber, run.Totals.NetPay),
		})
		if err != nil {
			return err
		}

		if err := run.MarkPaid(posted.EntryID, paidAt); err != nil {
			return err
		}
		return repos.RunRepo().UpdateStatus(ctx, run, payroll.RunStatusApproved)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("failed to mark payroll run paid",
			zap.String("company_id", cmd.CompanyID.String()),
			zap.String("run_id", cmd.RunID.String()),
			zap.Error(err))
		return nil, err
	}

	telemetry.SetOK(span)
	s.metrics.RecordPayrollRun(ctx, cmd.CompanyID, string(payroll.RunStatusPaid), run.Totals.GrossPay)
	s.logger.Info("payroll run paid",
		zap.String("company_id", cmd.CompanyID.String()),
		zap.String("run_id", run.ID.String()),
		zap.Int64("run_number", run.RunNumber))
	return run, nil
}

// GetRun returns a run with its entries
func (s *RunService) GetRun(ctx context.Context, companyID, runID uuid.UUID) (*payroll.PayrollRun, error) {
	var run *payroll.PayrollRun
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		run, err = findRun(ctx, repos, companyID, runID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

func findRun(ctx context.Context, repos TransactionalRepositories, companyID, runID uuid.UUID) (*payroll.PayrollRun, error) {
	run, err := repos.RunRepo().FindByID(ctx, companyID, runID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("payroll run")
		}
		return nil, fmt.Errorf("failed to find payroll run: %w", err)
	}
	return run, nil
}
