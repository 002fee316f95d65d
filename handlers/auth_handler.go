package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spikenet-labs/serverdesk/config"
	"github.com/spikenet-labs/serverdesk/dto"
	"github.com/spikenet-labs/serverdesk/middleware"
	"github.com/spikenet-labs/serverdesk/response"
	"golang.org/x/crypto/bcrypt"
)

// POST /login
func Login(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if input.Username != config.AdminUser ||
		bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid username or password"})
		return
	}

	token, err := middleware.GenerateToken(input.Username, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token, Username: input.Username})
}
