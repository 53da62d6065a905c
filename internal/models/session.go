// internal/models/session.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Session backs issued access tokens so logout can revoke them server-side.
type Session struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Token     string    `json:"-" gorm:"uniqueIndex;size:64;not null"`
	UserAgent string    `json:"user_agent" gorm:"size:500"`
	IPAddress string    `json:"ip_address" gorm:"size:45"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
