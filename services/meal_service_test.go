package services

import (
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// a second pool connection would see a different in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Meal{}))

	config.DB = db
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      "Jhon Doe",
		Email:     email,
		SessionID: uuid.NewString(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func boolPtr(b bool) *bool { return &b }

func mealInput(name string, withinDiet bool, date time.Time) MealInput {
	return MealInput{
		Name:         name,
		Description:  "test meal",
		IsWithinDiet: boolPtr(withinDiet),
		Date:         date,
	}
}

func TestAddAndGetMeal(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "jhondoe@example.com")
	svc := NewMealService(db)

	date := time.Date(2024, 8, 13, 12, 0, 0, 0, time.UTC)
	created, err := svc.AddMeal(user.ID, mealInput("Bread", true, date))
	require.NoError(t, err)

	got, err := svc.GetMeal(user.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bread", got.Name)
	assert.Equal(t, "test meal", got.Description)
	assert.True(t, got.IsWithinDiet)
	assert.True(t, got.Date.Equal(date))
	assert.Equal(t, user.ID, got.UserID)
}

func TestGetMealScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	svc := NewMealService(db)

	created, err := svc.AddMeal(owner.ID, mealInput("Salad", true, time.Now()))
	require.NoError(t, err)

	_, err = svc.GetMeal(other.ID, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateMealReplacesFields(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "jhondoe@example.com")
	svc := NewMealService(db)

	created, err := svc.AddMeal(user.ID, mealInput("Bread", true, time.Now()))
	require.NoError(t, err)

	newDate := time.Date(2024, 8, 14, 20, 0, 0, 0, time.UTC)
	in := MealInput{
		Name:         "Burger",
		Description:  "cheat day",
		IsWithinDiet: boolPtr(false),
		Date:         newDate,
	}
	require.NoError(t, svc.UpdateMeal(user.ID, created.ID, in))

	got, err := svc.GetMeal(user.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Burger", got.Name)
	assert.Equal(t, "cheat day", got.Description)
	assert.False(t, got.IsWithinDiet)
	assert.True(t, got.Date.Equal(newDate))
}

func TestUpdateMealNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "jhondoe@example.com")
	svc := NewMealService(db)

	err := svc.UpdateMeal(user.ID, uuid.NewString(), mealInput("Bread", true, time.Now()))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMeal(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "jhondoe@example.com")
	svc := NewMealService(db)

	created, err := svc.AddMeal(user.ID, mealInput("Bread", true, time.Now()))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal(user.ID, created.ID))

	_, err = svc.GetMeal(user.ID, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.DeleteMeal(user.ID, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListMealsOnlyOwn(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	svc := NewMealService(db)

	_, err := svc.AddMeal(owner.ID, mealInput("Bread", true, time.Now()))
	require.NoError(t, err)
	_, err = svc.AddMeal(other.ID, mealInput("Burger", false, time.Now()))
	require.NoError(t, err)

	meals, err := svc.ListMeals(owner.ID)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Bread", meals[0].Name)
}
