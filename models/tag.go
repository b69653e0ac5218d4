package models

// Tag names are stored trimmed; uniqueness is enforced at the database level
// so concurrent get-or-create calls collapse onto one row.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
