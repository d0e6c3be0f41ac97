package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ieee-swc/ClubBack/config"
)

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAuth verifies the hosted backend's HS256 access token and exposes
// the caller's user id and raw token to downstream handlers.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Missing or malformed access token.",
			})
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		userID, err := VerifyAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired access token.",
			})
		}

		c.Locals("user_id", userID)
		c.Locals("access_token", token)

		return c.Next()
	}
}

// VerifyAccessToken validates signature and expiry and returns the token's
// subject (the backend user id).
func VerifyAccessToken(token string) (string, error) {
	cfg := config.GetConfig()

	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.SupabaseJWTSecret), nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}
