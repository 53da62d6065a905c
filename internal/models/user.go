// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Name         string       `json:"name" gorm:"size:100"`
	Email        string       `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string       `json:"-" gorm:"size:255"`
	Provider     AuthProvider `json:"provider" gorm:"type:varchar(20);default:'local'"`
	ProviderID   string       `json:"-" gorm:"size:255;index"`
	AvatarURL    string       `json:"avatar_url" gorm:"size:500"`
	Role         UserRole     `json:"role" gorm:"type:varchar(20);default:'customer'"`
	Status       UserStatus   `json:"status" gorm:"type:varchar(20);default:'active'"`
	LastLoginAt  *time.Time   `json:"last_login_at"`

	// Relationships
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	Sessions []Session `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
