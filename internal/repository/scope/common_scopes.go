package scope

import "gorm.io/gorm"

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

// CompletedOnly restricts a query on assessments (aliased "a") to finished ones.
func CompletedOnly(db *gorm.DB) *gorm.DB {
	return db.Where("a.completed_at IS NOT NULL")
}
