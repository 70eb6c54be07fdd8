// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Structure:
//   - base.go: shared base models (BaseModel, AggregateModel, CompanyAggregateModel)
//   - ledger.go: chart of accounts, journal entries and lines, sequences
//   - payroll.go: payroll runs and entries, loans, pension plans, remittances
package models

// All returns every persistence model, in dependency order, for AutoMigrate
func All() []any {
	return []any{
		&AccountModel{},
		&LedgerSequenceModel{},
		&JournalEntryModel{},
		&JournalLineModel{},
		&PayrollRunModel{},
		&PayrollEntryModel{},
		&LoanDeductionModel{},
		&PensionPlanModel{},
		&StatutoryRemittanceModel{},
	}
}
