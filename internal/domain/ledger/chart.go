package ledger

// ChartVersion identifies the revision of the canonical chart below. Bump it
// whenever a system code is added or its attributes change.
const ChartVersion = 1

// System account codes
const (
	AccountCashOnHand         = "1000"
	AccountBankOperating      = "1010"
	AccountAccountsReceivable = "1200"
	AccountTaxInputCredit     = "1300"
	AccountInventory          = "1400"

	AccountAccountsPayable        = "2000"
	AccountTaxPayable             = "2100"
	AccountSalariesPayable        = "2200"
	AccountPAYEPayable            = "2210"
	AccountNISPayable             = "2220"
	AccountNHTPayable             = "2230"
	AccountEducationTaxPayable    = "2240"
	AccountHEARTPayable           = "2250"
	AccountPensionPayable         = "2260"
	AccountOtherDeductionsPayable = "2270"

	AccountOwnersEquity     = "3000"
	AccountRetainedEarnings = "3100"

	AccountSalesRevenue   = "4000"
	AccountSalesDiscounts = "4900"

	AccountCostOfGoodsSold = "5000"

	AccountRentExpense             = "6010"
	AccountUtilitiesExpense        = "6020"
	AccountOfficeExpense           = "6030"
	AccountTravelExpense           = "6040"
	AccountMarketingExpense        = "6050"
	AccountMaintenanceExpense      = "6060"
	AccountInsuranceExpense        = "6070"
	AccountProfessionalFeesExpense = "6080"
	AccountMiscellaneousExpense    = "6090"
	AccountSalariesExpense         = "6100"
	AccountEmployerPayrollTaxes    = "6110"
	AccountEmployerPensionExpense  = "6120"
)

// ChartAccount is a canonical account definition
type ChartAccount struct {
	Number        string
	Name          string
	Type          AccountType
	SubType       string
	NormalBalance NormalBalance
	IsControl     bool
	IsTax         bool
	IsBank        bool
}

var canonicalChart = []ChartAccount{
	{Number: AccountCashOnHand, Name: "Cash on Hand", Type: AccountTypeAsset, SubType: "CURRENT_ASSET", NormalBalance: NormalBalanceDebit},
	{Number: AccountBankOperating, Name: "Bank - Operating", Type: AccountTypeAsset, SubType: "CURRENT_ASSET", NormalBalance: NormalBalanceDebit, IsBank: true},
	{Number: AccountAccountsReceivable, Name: "Accounts Receivable", Type: AccountTypeAsset, SubType: "CURRENT_ASSET", NormalBalance: NormalBalanceDebit, IsControl: true},
	{Number: AccountTaxInputCredit, Name: "GCT Input Credit", Type: AccountTypeAsset, SubType: "CURRENT_ASSET", NormalBalance: NormalBalanceDebit, IsTax: true},
	{Number: AccountInventory, Name: "Inventory", Type: AccountTypeAsset, SubType: "CURRENT_ASSET", NormalBalance: NormalBalanceDebit},

	{Number: AccountAccountsPayable, Name: "Accounts Payable", Type: AccountTypeLiability, SubType: "CURRENT_LIABILITY", NormalBalance: NormalBalanceCredit, IsControl: true},
	{Number: AccountTaxPayable, Name: "GCT Payable", Type: AccountTypeLiability, SubType: "CURRENT_LIABILITY", NormalBalance: NormalBalanceCredit, IsTax: true},
	{Number: AccountSalariesPayable, Name: "Salaries Payable", Type: AccountTypeLiability, SubType: "CURRENT_LIABILITY", NormalBalance: NormalBalanceCredit},
	{Number: AccountPAYEPayable, Name: "PAYE Payable", Type: AccountTypeLiability, SubType: "STATUTORY", NormalBalance: NormalBalanceCredit, IsTax: true},
	{Number: AccountNISPayable, Name: "NIS Payable", Type: AccountTypeLiability, SubType: "STATUTORY", NormalBalance: NormalBalanceCredit, IsTax: true},
	{Number: AccountNHTPayable, Name: "NHT Payable", Type: AccountTypeLiability, SubType: "STATUTORY", NormalBalance: NormalBalanceCredit, IsTax: true},
	{Number: AccountEducationTaxPayable, Name: "Education Tax Payable", Type: AccountTypeLiability, SubType: "STATUTORY", NormalBalance: NormalBalanceCredit, IsTax: true},
	{Number: AccountHEARTPayable, Name: "HEART Payable", Type: AccountTypeLiability, SubType: "STATUTORY", NormalBalance: NormalBalanceCredit, IsTax: true},
	{Number: AccountPensionPayable, Name: "Pension Payable", Type: AccountTypeLiability, SubType: "CURRENT_LIABILITY", NormalBalance: NormalBalanceCredit},
	{Number: AccountOtherDeductionsPayable, Name: "Other Payroll Deductions Payable", Type: AccountTypeLiability, SubType: "CURRENT_LIABILITY", NormalBalance: NormalBalanceCredit},

	{Number: AccountOwnersEquity, Name: "Owner's Equity", Type: AccountTypeEquity, NormalBalance: NormalBalanceCredit},
	{Number: AccountRetainedEarnings, Name: "Retained Earnings", Type: AccountTypeEquity, NormalBalance: NormalBalanceCredit},

	{Number: AccountSalesRevenue, Name: "Sales Revenue", Type: AccountTypeIncome, SubType: "OPERATING_REVENUE", NormalBalance: NormalBalanceCredit},
	{Number: AccountSalesDiscounts, Name: "Sales Discounts", Type: AccountTypeIncome, SubType: "CONTRA_REVENUE", NormalBalance: NormalBalanceDebit},

	{Number: AccountCostOfGoodsSold, Name: "Cost of Goods Sold", Type: AccountTypeExpense, SubType: "COST_OF_SALES", NormalBalance: NormalBalanceDebit},

	{Number: AccountRentExpense, Name: "Rent Expense", Type: AccountTypeExpense, SubType: "OPERATING_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountUtilitiesExpense, Name: "Utilities Expense", Type: AccountTypeExpense, SubType: "OPERATING_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountOfficeExpense, Name: "Office Expense", Type: AccountTypeExpense, SubType: "OPERATING_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountTravelExpense, Name: "Travel Expense", Type: AccountTypeExpense, SubType: "OPERATING_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountMarketingExpense, Name: "Marketing Expense", Type: AccountTypeExpense, SubType: "OPERATING_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountMaintenanceExpense, Name: "Repairs & Maintenance", Type: AccountTypeExpense, SubType: "OPERATING_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountInsuranceExpense, Name: "Insurance Expense", Type: AccountTypeExpense, SubType: "OPERATING_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountProfessionalFeesExpense, Name: "Professional Fees", Type: AccountTypeExpense, SubType: "OPERATING_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountMiscellaneousExpense, Name: "Miscellaneous Expense", Type: AccountTypeExpense, SubType: "OPERATING_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountSalariesExpense, Name: "Salaries & Wages", Type: AccountTypeExpense, SubType: "PAYROLL_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountEmployerPayrollTaxes, Name: "Employer Payroll Taxes", Type: AccountTypeExpense, SubType: "PAYROLL_EXPENSE", NormalBalance: NormalBalanceDebit},
	{Number: AccountEmployerPensionExpense, Name: "Employer Pension Expense", Type: AccountTypeExpense, SubType: "PAYROLL_EXPENSE", NormalBalance: NormalBalanceDebit},
}

var chartIndex = func() map[string]ChartAccount {
	idx := make(map[string]ChartAccount, len(canonicalChart))
	for _, def := range canonicalChart {
		idx[def.Number] = def
	}
	return idx
}()

// SystemAccount looks up a canonical account definition by code
func SystemAccount(number string) (ChartAccount, bool) {
	def, ok := chartIndex[number]
	return def, ok
}

// IsSystemCode reports whether number belongs to the canonical chart
func IsSystemCode(number string) bool {
	_, ok := chartIndex[number]
	return ok
}

// CanonicalChart returns a copy of the canonical chart in code order
func CanonicalChart() []ChartAccount {
	out := make([]ChartAccount, len(canonicalChart))
	copy(out, canonicalChart)
	return out
}
