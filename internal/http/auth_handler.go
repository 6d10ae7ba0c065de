package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"signup-api/internal/repository"
	"signup-api/internal/service"
)

// AuthHandler mantiene dependencias para endpoints de autenticacion.
type AuthHandler struct {
	logger      *zap.Logger
	authServ    *service.AuthService
	remotelyURL string
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, authServ *service.AuthService, remotelyURL string) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		authServ:    authServ,
		remotelyURL: remotelyURL,
	}
}

// SignUp maneja POST /auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Age         int     `json:"age" binding:"required"`
		PhoneNumber string  `json:"phone_number" binding:"required"`
		Password    string  `json:"password" binding:"required"`
		Email       string  `json:"email" binding:"required,email"`
		Address     *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.authServ.SignUp(c.Request.Context(), service.SignUp{
		Name:        req.Name,
		Age:         req.Age,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Email:       req.Email,
		Address:     req.Address,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		h.logger.Error("signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign up"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// SignIn maneja POST /auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid signin request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.authServ.SignIn(c.Request.Context(), service.SignIn{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		// El detalle del AuthError se devuelve tal cual; es generico a proposito.
		switch {
		case errors.Is(err, service.ErrIncorrectCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		case errors.Is(err, service.ErrAccountNotActive):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		default:
			h.logger.Error("signin failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign in"})
			return
		}
	}

	c.JSON(http.StatusOK, result)
}

// RedirectToRemotely maneja GET /auth/remotely.
func (h *AuthHandler) RedirectToRemotely(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, h.remotelyURL)
}
