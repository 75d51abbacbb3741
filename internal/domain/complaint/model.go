package complaint

import "time"

type Status string

const (
	StatusSubmitted   Status = "submitted"
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusInProgress  Status = "in_progress"
	StatusResponded   Status = "responded"
	StatusResolved    Status = "resolved"
	StatusClosed      Status = "closed"
	StatusRejected    Status = "rejected"
)

// KnownStatuses is the closed set accepted by status updates. Any status may
// follow any other; there is no transition table.
var KnownStatuses = []Status{
	StatusSubmitted,
	StatusPending,
	StatusUnderReview,
	StatusInProgress,
	StatusResponded,
	StatusResolved,
	StatusClosed,
	StatusRejected,
}

func ValidStatus(s Status) bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Complaint is the central record. TrackingID is the only lookup key exposed
// to citizens and never changes after creation. InstitutionID stays nil when
// routing finds no match ("unassigned"), which is a valid outcome.
type Complaint struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	TrackingID    string     `gorm:"size:20;not null;uniqueIndex" json:"tracking_id"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Description   string     `gorm:"type:text;not null" json:"description"`
	CategoryID    uint       `gorm:"not null;index" json:"category_id"`
	SubcategoryID *uint      `json:"subcategory_id"`
	Status        Status     `gorm:"size:30;not null;default:'submitted';index" json:"status"`
	Priority      Priority   `gorm:"size:10;not null" json:"priority"`
	Location      string     `gorm:"type:text;not null" json:"location"`
	Province      string     `gorm:"size:100;not null" json:"province"`
	District      string     `gorm:"size:100;not null" json:"district"`
	Sector        *string    `gorm:"size:100" json:"sector"`
	CitizenID     *uint      `gorm:"index" json:"citizen_id"`
	InstitutionID *uint      `gorm:"index" json:"institution_id"`
	IsAnonymous   bool       `gorm:"not null;default:false" json:"is_anonymous"`
	ContactInfo   *string    `gorm:"size:255" json:"contact_info"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// Update is one append-only audit record of a status change. UserID is nil for
// the automatic record written at intake.
type Update struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID uint      `gorm:"not null;index" json:"complaint_id"`
	Status      Status    `gorm:"size:30;not null" json:"status"`
	Comment     string    `gorm:"type:text" json:"comment"`
	UserID      *uint     `json:"user_id,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Update) TableName() string {
	return "updates"
}

// Message is one entry of the conversation thread on a complaint.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID uint      `gorm:"not null;index" json:"complaint_id"`
	SenderID    *uint     `json:"sender_id,omitempty"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// Attachment records uploaded file metadata. Binaries live in the object
// store; only references are persisted here.
type Attachment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID uint      `gorm:"not null;index" json:"complaint_id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	FileType    string    `gorm:"size:100" json:"file_type"`
	FileSize    int64     `json:"file_size"`
	FileURL     string    `gorm:"size:500" json:"file_url"`
	FilePath    string    `gorm:"size:500" json:"file_path"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}
