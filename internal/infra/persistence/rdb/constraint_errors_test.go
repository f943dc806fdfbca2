package rdb

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, foreignKey: true},
		{name: "postgres not null", err: &pgconn.PgError{Code: "23502"}, notNull: true},
		{name: "postgres check", err: &pgconn.PgError{Code: "23514"}, check: true},
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062}, unique: true},
		{name: "mysql missing parent", err: &mysql.MySQLError{Number: 1452}, foreignKey: true},
		{name: "mysql referenced row", err: &mysql.MySQLError{Number: 1451}, foreignKey: true},
		{name: "mysql null column", err: &mysql.MySQLError{Number: 1048}, notNull: true},
		{name: "mysql check", err: &mysql.MySQLError{Number: 3819}, check: true},
		{name: "wrapped postgres unique", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), unique: true},
		{name: "unrelated", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
