package scope

import "gorm.io/gorm"

// OrderByCreatedDesc orders results newest first. Used for latest-return
// lookups and audit listings.
func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
