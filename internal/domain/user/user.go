package user

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleTrainee    = "trainee"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Roles lists every role the users table accepts.
var Roles = []string{RoleTrainee, RoleInstructor, RoleAdmin}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FirstName    string `gorm:"size:100;not null;column:first_name" json:"first_name"`
	LastName     string `gorm:"size:100;not null;column:last_name" json:"last_name"`
	Username     string `gorm:"size:100;not null;uniqueIndex;column:username" json:"username"`
	Email        string `gorm:"size:255;not null;uniqueIndex;column:email" json:"email"`
	PasswordHash string `gorm:"size:255;not null;column:password_hash" json:"-"`

	Role          string     `gorm:"size:20;not null;default:trainee;column:role;check:role IN ('trainee','instructor','admin')" json:"role"`
	IsActive      *bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	LoginAttempts int        `gorm:"not null;default:0;column:login_attempts" json:"login_attempts"`
	LockedUntil   *time.Time `gorm:"column:locked_until" json:"locked_until,omitempty"`

	CreatedAt  time.Time  `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
	LastActive *time.Time `gorm:"column:last_active" json:"last_active"`
}

func (User) TableName() string { return "users" }

// BeforeCreate stamps last_active and defaults is_active to true when the
// caller left them empty.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
	if u.LastActive == nil {
		now := time.Now().UTC()
		u.LastActive = &now
	}
	return nil
}

// Active reports whether the account is enabled. A nil flag means the
// column default, true.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

// Locked reports whether the account is inside a lockout window at now.
func (u *User) Locked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// ValidRole reports whether role is one of Roles.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
