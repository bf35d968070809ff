// services/meal_service.go
package services

import (
	"time"

	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// MealInput is the request shape for create and update. The flag is a
// pointer so that an explicit false still passes required binding.
type MealInput struct {
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description"`
	IsWithinDiet *bool     `json:"is_within_diet" binding:"required"`
	Date         time.Time `json:"date" binding:"required"`
}

func (s *MealService) AddMeal(userID string, in MealInput) (*models.Meal, error) {
	meal := &models.Meal{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Description:  in.Description,
		IsWithinDiet: *in.IsWithinDiet,
		Date:         in.Date,
		UserID:       userID,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) ListMeals(userID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) UpdateMeal(userID, mealID string, in MealInput) error {
	// fetch & replace, scoped to the owner
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}
	meal.Name = in.Name
	meal.Description = in.Description
	meal.IsWithinDiet = *in.IsWithinDiet
	meal.Date = in.Date
	return s.db.Save(&meal).Error
}

func (s *MealService) DeleteMeal(userID, mealID string) error {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}
	return s.db.Delete(&meal).Error
}
