package view

import "time"

// Read models for joined queries, scanned with gorm's Table/Select/Joins.

// ComplaintDetail is the tracking-page shape: the complaint plus the names of
// its category, subcategory and institution.
type ComplaintDetail struct {
	ID              uint       `json:"id"`
	TrackingID      string     `json:"tracking_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	Location        string     `json:"location"`
	Province        string     `json:"province"`
	District        string     `json:"district"`
	Sector          *string    `json:"sector"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	CategoryName    *string    `json:"category_name"`
	SubcategoryName *string    `json:"subcategory_name"`
	InstitutionName *string    `json:"institution_name"`
}

// ComplaintSummary is one row of the staff listing.
type ComplaintSummary struct {
	ID              uint       `json:"id"`
	TrackingID      string     `json:"tracking_id"`
	Title           string     `json:"title"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	Province        string     `json:"province"`
	District        string     `json:"district"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	CategoryName    *string    `json:"category_name"`
	InstitutionName *string    `json:"institution_name"`
}

// MessageWithSender joins each message to its sender's full name.
type MessageWithSender struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	SenderName *string   `json:"sender_name"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ProvinceCount struct {
	Province string `json:"province"`
	Count    int64  `json:"count"`
}

// RecentComplaint is one of the dashboard's latest-complaints rows.
type RecentComplaint struct {
	ID           uint      `json:"id"`
	TrackingID   string    `json:"tracking_id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	CreatedAt    time.Time `json:"created_at"`
	CategoryName *string   `json:"category_name"`
}

// TableColumn is one row of the admin schema inspector.
type TableColumn struct {
	ColumnName    string  `json:"column_name"`
	DataType      string  `json:"data_type"`
	IsNullable    string  `json:"is_nullable"`
	ColumnDefault *string `json:"column_default"`
}
