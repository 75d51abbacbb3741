package category

import "time"

// Category is complaint reference data. Top-level categories have a nil
// ParentID; subcategories point at a top-level parent (one level only).
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Code        string    `gorm:"size:20;not null;unique" json:"code"`
	Description string    `gorm:"type:text" json:"description"`
	ParentID    *uint     `gorm:"index" json:"parent_id,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// WithSubcategories is the shape the submission form consumes.
type WithSubcategories struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Code          string     `json:"code"`
	Description   string     `json:"description"`
	Subcategories []Category `json:"subcategories"`
}
