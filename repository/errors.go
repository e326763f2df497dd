// Package repository holds errors shared by the SQL repositories.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicate is returned when an insert hits a unique key.
var ErrDuplicate = errors.New("duplicate entry")

const mysqlDuplicateEntry = 1062

// IsDuplicate reports whether err is a MySQL unique key violation.
func IsDuplicate(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return errors.Is(err, ErrDuplicate)
}
