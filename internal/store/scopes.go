// Package store holds the gorm repositories behind the services. Soft-cancel
// filtering and pagination live here as shared scopes so every listing obeys
// the same contract: active records only, id ascending, pages of 20.
package store

import "gorm.io/gorm"

const pageSize = 20

// Active keeps only records that have not been soft-cancelled.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("canceled_at IS NULL")
}

// Paginate applies the fixed page-size window. Pages are 1-indexed; anything
// below 1 is treated as the first page.
func Paginate(page int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id").Limit(pageSize).Offset(offsetFor(page))
	}
}

// offsetFor clamps the 1-indexed page and converts it to a row offset.
func offsetFor(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
