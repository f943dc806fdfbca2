package rdb

import (
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes from PostgreSQL and error numbers from MySQL.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"

	mysqlDuplicateEntry     = 1062
	mysqlNoReferencedRow    = 1452
	mysqlRowIsReferenced    = 1451
	mysqlColumnCannotBeNull = 1048
	mysqlCheckViolated      = 3819
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func mysqlNumber(err error) uint16 {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}

	return 0
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		pgCode(err) == pgUniqueViolation ||
		mysqlNumber(err) == mysqlDuplicateEntry
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || pgCode(err) == pgForeignKeyViolation {
		return true
	}
	n := mysqlNumber(err)

	return n == mysqlNoReferencedRow || n == mysqlRowIsReferenced
}

func isNotNullConstraintViolation(err error) bool {
	return pgCode(err) == pgNotNullViolation || mysqlNumber(err) == mysqlColumnCannotBeNull
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		pgCode(err) == pgCheckViolation ||
		mysqlNumber(err) == mysqlCheckViolated
}
