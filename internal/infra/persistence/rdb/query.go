package rdb

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate adds a row lock; honoured by both PostgreSQL and MySQL inside a transaction.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// likePattern builds a case-insensitive substring pattern for LOWER(column) LIKE ?.
func likePattern(query string) string {
	return "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
}

// betweenTimes applies an inclusive time range on column. Nil bounds are open.
func betweenTimes(db *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		db = db.Where(column+" >= ?", *from)
	}
	if to != nil {
		db = db.Where(column+" <= ?", *to)
	}

	return db
}

func ptrIfNotZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}

	return &v
}

func valueOrZero[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
