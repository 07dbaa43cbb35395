package jwt

import (
	"fmt"
	"time"

	"mondaymagic/backend/internal/config"
	"mondaymagic/backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken creates a new JWT for a user. The user-id claim is the sole
// source of acting-user identity on protected routes.
func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":          user.ID,
		"name":         user.UserName,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"exp":          time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseToken validates a signed token and returns the user id it carries.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("token has no subject claim")
	}

	return userID, nil
}
