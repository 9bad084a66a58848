package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"samwad/backend/internal/models"
)

// tokenRequest is the naive login stand-in. Citizens get a token for
// the asking; the official must present the shared secret. This is not
// real authentication and is documented as such.
type tokenRequest struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Secret string `json:"secret"`
}

// IssueToken handles POST /api/token.
func (h *Handler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, mobile and role are required"})
		return
	}
	if req.Role != models.RoleCitizen && req.Role != models.RoleOfficial {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}
	if req.Role == models.RoleOfficial && req.Secret != h.Cfg.OfficialSecret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret"})
		return
	}

	token, err := h.generateToken(req.Mobile, req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) generateToken(mobile, role string) (string, error) {
	claims := jwt.MapClaims{
		"mobile": mobile,
		"role":   role,
		"exp":    time.Now().Add(72 * time.Hour).Unix(),
		"iss":    "samwad-portal",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.Cfg.JWTSecret))
}

// validateToken parses a bearer token and returns its role claim.
func (h *Handler) validateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(h.Cfg.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	role, _ := claims["role"].(string)
	return role, nil
}
