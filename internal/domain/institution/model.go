package institution

import "time"

// Institution is a government body that owns resolution of complaints routed
// to it. A nil District marks the catch-all that receives complaints from
// districts no other institution covers.
type Institution struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Code        string    `gorm:"size:20;not null;unique" json:"code"`
	Description string    `gorm:"type:text" json:"description"`
	Province    string    `gorm:"size:100" json:"province"`
	District    *string   `gorm:"size:100" json:"district"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Institution) TableName() string {
	return "institutions"
}
