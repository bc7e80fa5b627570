package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers that map onto repository sentinels.
const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
	mysqlErrNoReferencedRow = 1452
)

// translate maps driver errors onto the package sentinels so callers never
// need to import the driver.  Unknown errors are returned unchanged.
func translate(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	switch me.Number {
	case mysqlErrLockWaitTimeout, mysqlErrDeadlock:
		return errors.Join(ErrConflict, err)
	case mysqlErrNoReferencedRow:
		if field := foreignKeyColumn(me.Message); field != "" {
			return errors.Join(&ReferenceError{Field: field}, err)
		}
		return errors.Join(ErrInvalidReference, err)
	}
	return err
}

// foreignKeyColumn extracts the column from the "FOREIGN KEY (`col`)" part
// of an error 1452 message, or returns "".
func foreignKeyColumn(msg string) string {
	const marker = "FOREIGN KEY (`"
	_, rest, ok := strings.Cut(msg, marker)
	if !ok {
		return ""
	}
	col, _, ok := strings.Cut(rest, "`")
	if !ok {
		return ""
	}
	return col
}
