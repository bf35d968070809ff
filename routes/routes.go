package routes

import (
    "backend/config"
    "backend/controllers"
    "backend/middlewares"
    "backend/services"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public user routes
    users := r.Group("/users")
    {
        users.POST("", controllers.Register)
    }

    mealCtl := controllers.NewMealController(services.NewMealService(config.DB))
    metricsCtl := controllers.NewMetricsController(services.NewMetricsService(config.DB))

    // Protected meal routes
    meals := r.Group("/meals")
    meals.Use(middlewares.SessionMiddleware())
    {
        meals.POST("", mealCtl.CreateMeal)
        meals.GET("", mealCtl.ListMeals)
        meals.GET("/metrics", metricsCtl.GetMealMetrics)
        meals.GET("/:id", mealCtl.GetMeal)
        meals.PUT("/:id", mealCtl.UpdateMeal)
        meals.DELETE("/:id", mealCtl.DeleteMeal)
    }

    return r
}
