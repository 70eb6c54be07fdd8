package persistence

import (
	"errors"

	"github.com/erp/ledgercore/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps driver errors onto domain error kinds. Domain errors
// raised inside the repository pass through unchanged.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &shared.DomainError{
			Kind:    shared.KindStateConflict,
			Code:    "DUPLICATE_KEY",
			Message: op,
			Err:     err,
		}
	}
	return shared.NewPersistenceError(op, err)
}
