package models

import (
	"time"
)

// Session is a signed-in browser session opened after a successful provider sign-in
type Session struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ProviderUserID string    `gorm:"type:varchar(64);index" json:"provider_user_id"`
	Email          string    `gorm:"type:varchar(255);not null" json:"email"`
	Name           string    `gorm:"type:varchar(255)" json:"name"`
	Role           Role      `gorm:"type:varchar(20);not null" json:"role"`
	Token          string    `gorm:"uniqueIndex;not null;type:varchar(128)" json:"-"`
	ExpiresAt      time.Time `gorm:"not null;index" json:"expires_at"`
	IPAddress      string    `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent      string    `gorm:"type:text" json:"user_agent"`
}

// TableName specifies the table name for Session model
func (Session) TableName() string {
	return "sessions"
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsLawyer reports whether the session belongs to a lawyer account
func (s *Session) IsLawyer() bool {
	return s.Role == RoleLawyer
}
