package payroll

import (
	"context"

	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// BackPayService previews retroactive salary adjustments. It never writes.
type BackPayService struct {
	calculator *payroll.Calculator
	logger     *zap.Logger
}

// NewBackPayService creates a new BackPayService
func NewBackPayService(calculator *payroll.Calculator, logger *zap.Logger) *BackPayService {
	return &BackPayService{calculator: calculator, logger: logger}
}

// Preview computes the lump sum owed for the periods between the effective
// date and the through date.
func (s *BackPayService) Preview(ctx context.Context, in payroll.BackPayInput) (*payroll.BackPayResult, error) {
	_, span := telemetry.StartServiceSpan(ctx, "payroll", "preview_back_pay")
	defer span.End()

	result, err := s.calculator.CalculateBackPay(in)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrAmount, result.GrossBackPay.String())
	telemetry.SetOK(span)
	s.logger.Debug("back pay previewed",
		zap.String("employee_id", in.EmployeeID.String()),
		zap.Int("periods", result.PeriodsCount),
		zap.String("gross", result.GrossBackPay.StringFixed(2)))
	return &result, nil
}
