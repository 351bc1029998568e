package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HemInfotech/hem_api/internal/utils"
)

type AuthHandler struct {
	authService AuthUseCase
}

func NewAuthHandler(authService AuthUseCase) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.Error(c, 401, "INVALID_CREDENTIALS", err.Error())
			return
		}
		respondError(c, err)
		return
	}

	utils.JSON(c, 200, gin.H{"token": token})
}
