// internal/handlers/auth_handler.go
package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"ponto_backend/internal/models"
	"ponto_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type AuthHandler struct {
	Service *service.Service
}

func NewAuthHandler(svc *service.Service) *AuthHandler { return &AuthHandler{Service: svc} }

type LoginReq struct {
	NationalID string `json:"national_id" binding:"required"`
	Code       string `json:"code" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	emp, errMsg := h.Service.VerifyLogin(strings.TrimSpace(req.NationalID), req.Code)
	if emp == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errMsg})
		return
	}

	secret := os.Getenv("JWT_SECRET")
	claims := jwt.MapClaims{
		"national_id": emp.NationalID,
		"role":        string(emp.Role),
		"jti":         uuid.NewString(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign token failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"token":  signed,
		"user": gin.H{
			"national_id": emp.NationalID,
			"name":        emp.Name,
			"role":        emp.Role,
		},
	})
}

// Logout revokes the current token's jti so it stops authenticating before
// its expiry. Logging the same token out twice is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	if jti == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	if v, ok := c.Get("token_expires"); ok {
		if t, ok := v.(time.Time); ok {
			expiresAt = t
		}
	}

	row := models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}
	if err := h.Service.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
