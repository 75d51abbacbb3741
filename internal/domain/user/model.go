package user

import "time"

type Role string

const (
	RoleCitizen          Role = "citizen"
	RoleAdmin            Role = "admin"
	RoleInstitutionAdmin Role = "institution_admin"
)

// User is a staff or citizen account. Accounts are created out of band (seed
// data or operator tooling); there is no self-registration flow.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"size:200;not null;unique" json:"email"`
	Password      string    `gorm:"size:255;not null" json:"-"`
	FullName      string    `gorm:"size:100" json:"full_name"`
	Role          Role      `gorm:"size:30;default:'citizen'" json:"role"`
	InstitutionID *uint     `gorm:"index" json:"institution_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleInstitutionAdmin
}
