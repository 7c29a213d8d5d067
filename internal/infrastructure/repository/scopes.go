package repository

import (
	"time"

	"gorm.io/gorm"
)

// DateRangeScope filters a date column between optional bounds. Nil bounds
// are left open.
func DateRangeScope(column string, start, end *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != nil {
			db = db.Where(column+" >= ?", *start)
		}
		if end != nil {
			db = db.Where(column+" <= ?", *end)
		}
		return db
	}
}

// SearchScope applies a case-insensitive partial match over the given
// columns. An empty term leaves the query untouched.
func SearchScope(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + term + "%"
		clause := db.Session(&gorm.Session{NewDB: true}).Where(columns[0]+" ILIKE ?", pattern)
		for _, col := range columns[1:] {
			clause = clause.Or(col+" ILIKE ?", pattern)
		}
		return db.Where(clause)
	}
}
