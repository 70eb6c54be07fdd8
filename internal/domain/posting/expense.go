package posting

import (
	"fmt"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an operating expense
type ExpenseCategory string

const (
	ExpenseRent             ExpenseCategory = "RENT"
	ExpenseUtilities        ExpenseCategory = "UTILITIES"
	ExpenseOfficeSupplies   ExpenseCategory = "OFFICE_SUPPLIES"
	ExpenseTravel           ExpenseCategory = "TRAVEL"
	ExpenseMarketing        ExpenseCategory = "MARKETING"
	ExpenseMaintenance      ExpenseCategory = "MAINTENANCE"
	ExpenseInsurance        ExpenseCategory = "INSURANCE"
	ExpenseProfessionalFees ExpenseCategory = "PROFESSIONAL_FEES"
	ExpenseOther            ExpenseCategory = "OTHER"
)

// ExpenseCategories lists every category
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		ExpenseRent, ExpenseUtilities, ExpenseOfficeSupplies, ExpenseTravel, ExpenseMarketing,
		ExpenseMaintenance, ExpenseInsurance, ExpenseProfessionalFees, ExpenseOther,
	}
}

var expenseAccounts = map[ExpenseCategory]string{
	ExpenseRent:             ledger.AccountRentExpense,
	ExpenseUtilities:        ledger.AccountUtilitiesExpense,
	ExpenseOfficeSupplies:   ledger.AccountOfficeExpense,
	ExpenseTravel:           ledger.AccountTravelExpense,
	ExpenseMarketing:        ledger.AccountMarketingExpense,
	ExpenseMaintenance:      ledger.AccountMaintenanceExpense,
	ExpenseInsurance:        ledger.AccountInsuranceExpense,
	ExpenseProfessionalFees: ledger.AccountProfessionalFeesExpense,
	ExpenseOther:            ledger.AccountMiscellaneousExpense,
}

// ValidateExpenseAccounts checks at startup that every category maps to an
// expense account in the canonical chart.
func ValidateExpenseAccounts() error {
	for _, c := range ExpenseCategories() {
		number, ok := expenseAccounts[c]
		if !ok {
			return fmt.Errorf("expense category %s has no account mapping", c)
		}
		def, ok := ledger.SystemAccount(number)
		if !ok {
			return fmt.Errorf("expense category %s maps to unknown account %s", c, number)
		}
		if def.Type != ledger.AccountTypeExpense {
			return fmt.Errorf("expense category %s maps to %s account %s", c, def.Type, number)
		}
	}
	return nil
}

// ExpenseAccountFor returns the expense account of a category
func ExpenseAccountFor(c ExpenseCategory) (string, error) {
	number, ok := expenseAccounts[c]
	if !ok {
		return "", shared.NewValidationError("INVALID_EXPENSE_CATEGORY", fmt.Sprintf("unknown expense category %q", c))
	}
	return number, nil
}

// InclusiveTax extracts the tax contained in a tax-inclusive amount
func InclusiveTax(amount, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return valueobject.RoundMoney(amount.Mul(rate).Div(decimal.NewFromInt(1).Add(rate)))
}

// ExpenseEvent is a paid operating expense. Amount is tax-inclusive. When the
// tax is claimable and Tax is zero, it is derived from TaxRate.
type ExpenseEvent struct {
	Reference     string
	Category      ExpenseCategory
	Description   string
	Amount        decimal.Decimal
	Tax           decimal.Decimal
	TaxRate       decimal.Decimal
	TaxClaimable  bool
	PaymentMethod TenderMethod
}

// ExpenseRecorded books the expense, any claimable input tax and the payment
func ExpenseRecorded(e ExpenseEvent) ([]ledger.DraftLine, error) {
	if err := requireNonNegative(map[string]decimal.Decimal{
		"amount": e.Amount, "tax": e.Tax, "tax rate": e.TaxRate,
	}); err != nil {
		return nil, err
	}
	account, err := ExpenseAccountFor(e.Category)
	if err != nil {
		return nil, err
	}

	memo := e.Description
	if memo == "" {
		memo = "Expense " + e.Reference
	}

	tax := decimal.Zero
	if e.TaxClaimable {
		tax = e.Tax
		if tax.IsZero() {
			tax = InclusiveTax(e.Amount, e.TaxRate)
		}
		if tax.GreaterThan(e.Amount) {
			return nil, shared.NewValidationError("INVALID_TAX", "tax cannot exceed the expense amount")
		}
	}

	return []ledger.DraftLine{
		ledger.DebitLine(account, e.Amount.Sub(tax), memo),
		ledger.DebitLine(ledger.AccountTaxInputCredit, tax, memo+" input tax"),
		ledger.CreditLine(CashAccountFor(e.PaymentMethod), e.Amount, memo),
	}, nil
}
