package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes for connections opened without gorm's error translation.
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
)

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), sqlStateUniqueViolation)
}

// isIncompleteRow covers NOT NULL and CHECK failures on report rows.
func isIncompleteRow(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, sqlStateNotNullViolation) || strings.Contains(msg, sqlStateCheckViolation)
}
