package posting

import (
	"fmt"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PayrollRunApproved books payroll cost against each statutory liability,
// pension, other withholdings and net salaries payable.
func PayrollRunApproved(runNumber int64, t payroll.RunTotals) []ledger.DraftLine {
	memo := fmt.Sprintf("Payroll run %d", runNumber)
	return []ledger.DraftLine{
		ledger.DebitLine(ledger.AccountSalariesExpense, t.GrossPay, memo+" gross pay"),
		ledger.DebitLine(ledger.AccountEmployerPayrollTaxes, t.EmployerStatutory(), memo+" employer contributions"),
		ledger.DebitLine(ledger.AccountEmployerPensionExpense, t.EmployerPension, memo+" employer pension"),

		ledger.CreditLine(ledger.AccountPAYEPayable, t.IncomeTax, memo+" PAYE"),
		ledger.CreditLine(ledger.AccountNISPayable, t.NIS, memo+" NIS employee"),
		ledger.CreditLine(ledger.AccountNHTPayable, t.NHT, memo+" NHT employee"),
		ledger.CreditLine(ledger.AccountEducationTaxPayable, t.EducationTax, memo+" education tax employee"),

		ledger.CreditLine(ledger.AccountNISPayable, t.EmployerNIS, memo+" NIS employer"),
		ledger.CreditLine(ledger.AccountNHTPayable, t.EmployerNHT, memo+" NHT employer"),
		ledger.CreditLine(ledger.AccountEducationTaxPayable, t.EmployerEducationTax, memo+" education tax employer"),
		ledger.CreditLine(ledger.AccountHEARTPayable, t.EmployerHEART, memo+" HEART"),

		ledger.CreditLine(ledger.AccountPensionPayable, t.EmployeePension.Add(t.EmployerPension), memo+" pension"),
		ledger.CreditLine(ledger.AccountOtherDeductionsPayable, t.OtherDeductions, memo+" other deductions"),
		ledger.CreditLine(ledger.AccountSalariesPayable, t.NetPay, memo+" net pay"),
	}
}

// PayrollRunPaid clears salaries payable from the operating bank
func PayrollRunPaid(runNumber int64, netPay decimal.Decimal) []ledger.DraftLine {
	memo := fmt.Sprintf("Payroll run %d payment", runNumber)
	return []ledger.DraftLine{
		ledger.DebitLine(ledger.AccountSalariesPayable, netPay, memo),
		ledger.CreditLine(ledger.AccountBankOperating, netPay, memo),
	}
}

var remittanceAccounts = map[payroll.RemittanceType]string{
	payroll.RemittancePAYE:         ledger.AccountPAYEPayable,
	payroll.RemittanceNIS:          ledger.AccountNISPayable,
	payroll.RemittanceNHT:          ledger.AccountNHTPayable,
	payroll.RemittanceEducationTax: ledger.AccountEducationTaxPayable,
	payroll.RemittanceHEART:        ledger.AccountHEARTPayable,
}

// RemittanceLiabilityAccount returns the liability account a remittance type settles
func RemittanceLiabilityAccount(t payroll.RemittanceType) (string, error) {
	number, ok := remittanceAccounts[t]
	if !ok {
		return "", shared.NewValidationError("INVALID_REMITTANCE_TYPE", fmt.Sprintf("unknown remittance type %q", t))
	}
	return number, nil
}

// RemittancePaid settles a statutory liability from the operating bank
func RemittancePaid(t payroll.RemittanceType, periodMonth string, amount decimal.Decimal) ([]ledger.DraftLine, error) {
	account, err := RemittanceLiabilityAccount(t)
	if err != nil {
		return nil, err
	}
	if err := requireNonNegative(map[string]decimal.Decimal{"amount": amount}); err != nil {
		return nil, err
	}
	memo := fmt.Sprintf("%s remittance %s", t, periodMonth)
	return []ledger.DraftLine{
		ledger.DebitLine(account, amount, memo),
		ledger.CreditLine(ledger.AccountBankOperating, amount, memo),
	}, nil
}
