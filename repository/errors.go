package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
)

// ConstraintViolationError reports an insert rejected by a uniqueness or
// referential rule. Err holds the driver error when the database itself
// raised the violation.
type ConstraintViolationError struct {
	Kind   ConstraintKind
	Table  string
	Column string
	Value  interface{}
	Err    error
}

func (e *ConstraintViolationError) Error() string {
	target := e.Table
	if e.Column != "" {
		target += "." + e.Column
	}
	switch e.Kind {
	case ConstraintUnique:
		if e.Value != nil {
			return fmt.Sprintf("unique constraint violated: %s %v already exists", target, e.Value)
		}
		return "unique constraint violated on " + target
	default:
		if e.Value != nil {
			return fmt.Sprintf("foreign key constraint violated: %s %v references a missing row", target, e.Value)
		}
		return "foreign key constraint violated on " + target
	}
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

// translate maps gorm's translated driver errors onto
// ConstraintViolationError and record-not-found onto ErrNotFound.
func translate(err error, table string) error {
	if err == nil {
		return nil
	}
	var cv *ConstraintViolationError
	if errors.As(err, &cv) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintViolationError{Kind: ConstraintUnique, Table: table, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ConstraintViolationError{Kind: ConstraintForeignKey, Table: table, Err: err}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", table, ErrNotFound)
	}
	return err
}
