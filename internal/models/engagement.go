// internal/models/engagement.go
package models

type ContactMessage struct {
	BaseModel
	Name    string `json:"name" gorm:"size:100;not null"`
	Email   string `json:"email" gorm:"size:255;not null;index"`
	Phone   string `json:"phone" gorm:"size:30"`
	Subject string `json:"subject" gorm:"size:255;not null"`
	Message string `json:"message" gorm:"type:text;not null"`
}

type NewsletterSubscriber struct {
	BaseModel
	Email     string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	FirstName string `json:"first_name" gorm:"size:100"`
}
