package models

import "time"

type User struct {
    ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
    Name      string    `gorm:"not null" json:"name"`
    Email     string    `gorm:"uniqueIndex;not null" json:"email"`
    SessionID string    `gorm:"index;not null" json:"-"` // opaque token, set once at registration
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}
