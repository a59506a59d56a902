package controllers

import (
	"errors"
	"net/http"

	"catalog-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type AuthController struct {
	service   AuthServiceAPI
	validator *RequestValidator
}

func NewAuthController(service AuthServiceAPI) *AuthController {
	return &AuthController{service: service, validator: NewRequestValidator()}
}

// ObtainTokenPair exchanges email and password for an access/refresh pair.
func (ctrl *AuthController) ObtainTokenPair(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
		return
	}

	pair, err := ctrl.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrInactiveAccount) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			return
		}
		zap.L().Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, pair)
}

// RefreshTokenPair validates a refresh token and issues a fresh pair.
func (ctrl *AuthController) RefreshTokenPair(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
		return
	}

	pair, err := ctrl.service.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Register creates a new active account.
func (ctrl *AuthController) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
		return
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := ctrl.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"detail": "Email already exists"})
			return
		}
		zap.L().Error("Registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}
