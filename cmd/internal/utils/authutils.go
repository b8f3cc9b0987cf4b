package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AccessTokenTTL is deliberately short; the refresh token carries the
// long-lived session.
const (
	AccessTokenTTL  = 30 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var jwtSecret []byte

// InitJWT loads the HMAC signing key. The platform issues and validates
// its own tokens, there is no external identity provider involved.
func InitJWT() error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	jwtSecret = []byte(secret)
	return nil
}

type TokenData struct {
	UserID int64
	Email  string
	Exp    int64
}

// GenerateTokenPair signs the short-lived access token and the
// long-lived refresh token for the account.
func GenerateTokenPair(userID int64, email string) (access string, refresh string, err error) {
	access, err = signToken(userID, email, "access", AccessTokenTTL)
	if err != nil {
		return "", "", err
	}

	refresh, err = signToken(userID, email, "refresh", RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func signToken(userID int64, email, use string, ttl time.Duration) (string, error) {
	if jwtSecret == nil {
		return "", errors.New("JWT not initialized")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"email": email,
		"use":   use,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken parses AND validates the signature locally.
// It returns the data if the token is authentic and unexpired.
func ValidateToken(tokenString string) (*TokenData, error) {
	if jwtSecret == nil {
		return nil, errors.New("JWT not initialized")
	}

	clean := sanitizeToken(tokenString)
	token, err := jwt.Parse(clean, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims format")
	}

	userID, err := strconv.ParseInt(getValue(claims, "sub"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid subject claim")
	}

	return &TokenData{
		UserID: userID,
		Email:  getValue(claims, "email"),
		Exp:    getInt64(claims, "exp"),
	}, nil
}

func ParseTokenDataCtx(ctx echo.Context) (*TokenData, error) {
	token := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return ValidateToken(token)
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
}

func getValue(claims jwt.MapClaims, key string) string {
	if val, ok := claims[key].(string); ok {
		return val
	}
	return ""
}

func getInt64(claims jwt.MapClaims, key string) int64 {
	val, ok := claims[key]
	if !ok {
		return 0
	}
	if f, ok := val.(float64); ok {
		return int64(f)
	}
	if i, ok := val.(int64); ok {
		return i
	}
	return 0
}
