package controllers

import (
	"errors"
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// session cookie validity window, in seconds
const sessionMaxAge = 7 * 24 * 60 * 60

type RegisterInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reuse the caller's session token when present, otherwise mint one and
	// hand it back as a 7-day cookie scoped to the root path.
	sessionID, err := c.Cookie(middlewares.SessionCookie)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
		c.SetCookie(middlewares.SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
	}

	if _, err := services.RegisterUser(input.Name, input.Email, sessionID); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}
