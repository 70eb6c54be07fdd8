package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostCommand is a request to post a balanced journal entry
type PostCommand struct {
	CompanyID        uuid.UUID
	UserID           uuid.UUID
	Date             time.Time
	Description      string
	Reference        string
	SourceModule     string
	SourceDocumentID *uuid.UUID
	Lines            []ledger.DraftLine

	reversalOf *uuid.UUID
}

func (c PostCommand) header() ledger.PostingHeader {
	return ledger.PostingHeader{
		CompanyID:        c.CompanyID,
		EntryDate:        c.Date,
		Description:      c.Description,
		Reference:        c.Reference,
		SourceModule:     c.SourceModule,
		SourceDocumentID: c.SourceDocumentID,
		PostedBy:         c.UserID,
	}
}

// PostResult identifies the posted entry
type PostResult struct {
	EntryID     uuid.UUID `json:"entry_id"`
	EntryNumber int64     `json:"entry_number"`
}

// ReverseCommand is a request to reverse a posted entry
type ReverseCommand struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
	EntryID   uuid.UUID
	Date      time.Time
	Reason    string
}

// PostingService is the journal posting engine. It is the only place that
// writes journal entries.
type PostingService struct {
	scope   TransactionScope
	logger  *zap.Logger
	metrics *telemetry.LedgerMetrics
	now     func() time.Time
}

// Option configures optional PostingService dependencies
type Option func(*PostingService)

// WithMetrics records posting counters and latency
func WithMetrics(m *telemetry.LedgerMetrics) Option {
	return func(s *PostingService) {
		s.metrics = m
	}
}

// WithClock overrides the clock used for reversal dates
func WithClock(now func() time.Time) Option {
	return func(s *PostingService) {
		s.now = now
	}
}

// NewPostingService creates a new PostingService
func NewPostingService(scope TransactionScope, logger *zap.Logger, opts ...Option) *PostingService {
	s := &PostingService{
		scope:  scope,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Post validates and persists a journal entry in its own transaction
func (s *PostingService) Post(ctx context.Context, cmd PostCommand) (*PostResult, error) {
	var result *PostResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		result, err = s.PostInTx(ctx, repos, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PostInTx posts an entry through repositories bound to the caller's
// transaction. Nothing is written unless every step succeeds.
func (s *PostingService) PostInTx(ctx context.Context, repos TransactionalRepositories, cmd PostCommand) (*PostResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ledger", "post")
	defer span.End()
	started := time.Now()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, cmd.CompanyID.String(),
		telemetry.SpanAttrSourceModule, cmd.SourceModule,
		telemetry.SpanAttrLineCount, len(cmd.Lines),
	)

	entry, err := s.buildEntry(ctx, repos, cmd)
	if err != nil {
		s.reject(ctx, cmd, err)
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := repos.JournalRepo().Create(ctx, entry); err != nil {
		s.logger.Error("failed to persist journal entry",
			zap.String("company_id", cmd.CompanyID.String()),
			zap.Int64("entry_number", entry.EntryNumber),
			zap.Error(err))
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to persist journal entry: %w", err)
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrEntryID, entry.ID.String(),
		telemetry.SpanAttrEntryNumber, entry.EntryNumber,
		telemetry.SpanAttrAmount, entry.TotalDebits.String(),
	)
	telemetry.SetOK(span)
	s.metrics.RecordJournalPosted(ctx, cmd.CompanyID, cmd.SourceModule, entry.TotalDebits, time.Since(started))

	s.logger.Info("journal entry posted",
		zap.String("company_id", cmd.CompanyID.String()),
		zap.String("entry_id", entry.ID.String()),
		zap.Int64("entry_number", entry.EntryNumber),
		zap.String("source_module", cmd.SourceModule),
		zap.String("total", entry.TotalDebits.StringFixed(2)))

	return &PostResult{EntryID: entry.ID, EntryNumber: entry.EntryNumber}, nil
}

func (s *PostingService) buildEntry(ctx context.Context, repos TransactionalRepositories, cmd PostCommand) (*ledger.JournalEntry, error) {
	header := cmd.header()
	if err := header.Validate(); err != nil {
		return nil, err
	}

	prepared, err := ledger.PrepareLines(cmd.Lines)
	if err != nil {
		return nil, err
	}

	accounts, err := s.resolveAccounts(ctx, repos.AccountRepo(), cmd.CompanyID, prepared.Lines)
	if err != nil {
		return nil, err
	}

	number, err := repos.SequenceRepo().Next(ctx, cmd.CompanyID, ledger.SequenceJournalEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate entry number: %w", err)
	}

	entry, err := ledger.NewJournalEntry(header, number, prepared, accounts)
	if err != nil {
		return nil, err
	}
	entry.ReversalOfID = cmd.reversalOf
	return entry, nil
}

// resolveAccounts maps every account code on the lines to an active account,
// materializing canonical system accounts on first use.
func (s *PostingService) resolveAccounts(ctx context.Context, repo ledger.AccountRepository, companyID uuid.UUID, lines []ledger.DraftLine) (map[string]*ledger.Account, error) {
	accounts := make(map[string]*ledger.Account, len(lines))
	for _, l := range lines {
		if _, ok := accounts[l.AccountNumber]; ok {
			continue
		}
		account, err := s.resolveAccount(ctx, repo, companyID, l.AccountNumber)
		if err != nil {
			return nil, err
		}
		if !account.IsActive {
			return nil, shared.NewAccountResolutionError(l.AccountNumber, "account is inactive")
		}
		accounts[l.AccountNumber] = account
	}
	return accounts, nil
}

func (s *PostingService) resolveAccount(ctx context.Context, repo ledger.AccountRepository, companyID uuid.UUID, number string) (*ledger.Account, error) {
	account, err := repo.FindByNumber(ctx, companyID, number)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("failed to find account %s: %w", number, err)
	}

	def, ok := ledger.SystemAccount(number)
	if !ok {
		return nil, shared.NewAccountResolutionError(number, "account does not exist")
	}
	if err := repo.CreateIfAbsent(ctx, ledger.NewSystemAccount(companyID, def)); err != nil {
		return nil, fmt.Errorf("failed to create system account %s: %w", number, err)
	}
	account, err = repo.FindByNumber(ctx, companyID, number)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewAccountResolutionError(number, "system account could not be created")
		}
		return nil, fmt.Errorf("failed to find account %s: %w", number, err)
	}
	s.logger.Info("system account created",
		zap.String("company_id", companyID.String()),
		zap.String("account_number", number),
		zap.Int("chart_version", ledger.ChartVersion))
	return account, nil
}

// reject logs a refused posting. An unbalanced entry is a defect in the
// caller's template, so it is logged at error level.
func (s *PostingService) reject(ctx context.Context, cmd PostCommand, err error) {
	kind := shared.KindOf(err)
	s.metrics.RecordPostingRejected(ctx, cmd.CompanyID, cmd.SourceModule, string(kind))

	fields := []zap.Field{
		zap.String("company_id", cmd.CompanyID.String()),
		zap.String("source_module", cmd.SourceModule),
		zap.String("error_kind", string(kind)),
		zap.Error(err),
	}
	switch kind {
	case shared.KindOutOfBalance, shared.KindPersistence, "":
		s.logger.Error("journal posting rejected", fields...)
	default:
		s.logger.Warn("journal posting rejected", fields...)
	}
}

// Reverse posts the mirror image of an entry and links the two
func (s *PostingService) Reverse(ctx context.Context, cmd ReverseCommand) (*PostResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ledger", "reverse")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, cmd.CompanyID.String(),
		telemetry.SpanAttrEntryID, cmd.EntryID.String(),
	)

	var result *PostResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		original, err := repos.JournalRepo().FindByID(ctx, cmd.CompanyID, cmd.EntryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewNotFoundError("journal entry")
			}
			return fmt.Errorf("failed to find journal entry: %w", err)
		}
		if err := original.CanReverse(); err != nil {
			return err
		}

		date := cmd.Date
		if date.IsZero() {
			date = s.now().UTC()
		}
		description := fmt.Sprintf("Reversal of entry %d", original.EntryNumber)
		if cmd.Reason != "" {
			description += ": " + cmd.Reason
		}
		originalID := original.ID

		result, err = s.PostInTx(ctx, repos, PostCommand{
			CompanyID:        cmd.CompanyID,
			UserID:           cmd.UserID,
			Date:             date,
			Description:      description,
			Reference:        original.Reference,
			SourceModule:     ledger.SourceReversal,
			SourceDocumentID: &originalID,
			Lines:            original.ReversalLines(),
			reversalOf:       &originalID,
		})
		if err != nil {
			return err
		}
		return repos.JournalRepo().MarkReversed(ctx, cmd.CompanyID, original.ID, result.EntryID)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("failed to reverse journal entry",
			zap.String("company_id", cmd.CompanyID.String()),
			zap.String("entry_id", cmd.EntryID.String()),
			zap.Error(err))
		return nil, err
	}

	telemetry.SetOK(span)
	s.logger.Info("journal entry reversed",
		zap.String("company_id", cmd.CompanyID.String()),
		zap.String("entry_id", cmd.EntryID.String()),
		zap.String("reversal_id", result.EntryID.String()))
	return result, nil
}
