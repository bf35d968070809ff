package services

import (
	"context"

	"backend/models"

	"gorm.io/gorm"
)

type MetricsService struct{ db *gorm.DB }

func NewMetricsService(db *gorm.DB) *MetricsService { return &MetricsService{db: db} }

type MealMetrics struct {
	TotalMeals         int   `json:"totalMeals"`
	TotalMealsOnDiet   int64 `json:"totalMealsOnDiet"`
	TotalMealsOffDiet  int64 `json:"totalMealsOffDiet"`
	BestOnDietSequence int   `json:"bestOnDietSequence"`
}

// Summary reduces one user's meal history to totals and the longest
// unbroken run of on-diet meals, scanning from the most recent meal
// backwards. Date ties break on insertion recency, then id, so the
// result is stable for a fixed dataset.
func (s *MetricsService) Summary(ctx context.Context, userID string) (*MealMetrics, error) {
	var onDiet int64
	if err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("user_id = ? AND is_within_diet = ?", userID, true).
		Count(&onDiet).Error; err != nil {
		return nil, err
	}

	var offDiet int64
	if err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("user_id = ? AND is_within_diet = ?", userID, false).
		Count(&offDiet).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	best, current := 0, 0
	for _, m := range meals {
		if m.IsWithinDiet {
			current++
		} else {
			current = 0
		}
		if current > best {
			best = current
		}
	}

	return &MealMetrics{
		TotalMeals:         len(meals),
		TotalMealsOnDiet:   onDiet,
		TotalMealsOffDiet:  offDiet,
		BestOnDietSequence: best,
	}, nil
}
