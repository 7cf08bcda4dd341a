package models

import "time"

// ContactMessage is one row of the append-only contact intake log. Messages
// are written without authentication and read back only by the administrator.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Purpose   string    `gorm:"not null" json:"purpose"`
	CreatedAt time.Time `json:"created_at"`
}
