package models

import "time"

// One logged meal, flagged as within or outside the diet goal.
type Meal struct {
    ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
    Name         string    `gorm:"not null" json:"name"`
    Description  string    `json:"description"`
    IsWithinDiet bool      `gorm:"not null" json:"is_within_diet"`
    Date         time.Time `gorm:"index;not null" json:"date"` // when the meal was eaten
    UserID       string    `gorm:"type:varchar(36);index;not null" json:"user_id"`
    User         User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
    CreatedAt    time.Time `json:"created_at"`
    UpdatedAt    time.Time `json:"updated_at"`
}
