package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type JWTClaims struct {
	IdentityID string `json:"identity_id"`
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Company    string `json:"company,omitempty"`
	Class      string `json:"class"` // intern or recruiter, drives route authorization
	jwt.RegisteredClaims
}

// GetJWTKey reads the signing key at call time so godotenv has already run.
func GetJWTKey() []byte {
	return []byte(os.Getenv("JWT_KEY"))
}

func GenerateJWT(identity *Identity, duration time.Duration) (string, error) {
	claims := &JWTClaims{
		IdentityID: identity.ID,
		UserID:     identity.UserID,
		Name:       identity.Name,
		Company:    identity.Company,
		Class:      identity.Class,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(GetJWTKey())
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return GetJWTKey(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.ExpiresAt.Before(time.Now()) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
