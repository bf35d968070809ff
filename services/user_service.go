package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("user already exists")

// RegisterUser persists a new account under the given session token. Email
// uniqueness is enforced by the store constraint, so two concurrent
// registrations with the same email cannot both succeed.
func RegisterUser(name, email, sessionID string) (*models.User, error) {
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		SessionID: sessionID,
	}
	if err := config.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func FindUserBySession(sessionID string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("session_id = ?", sessionID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
