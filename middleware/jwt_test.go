package middlewares

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ieee-swc/ClubBack/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func TestMain(m *testing.M) {
	os.Setenv("SUPABASE_JWT_SECRET", testSecret)
	config.LoadConfig()
	os.Exit(m.Run())
}

func signToken(t *testing.T, secret, subject string, expiry time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiry),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyAccessToken(t *testing.T) {
	token := signToken(t, testSecret, "user-1", time.Now().Add(time.Hour))

	userID, err := VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	token := signToken(t, testSecret, "user-1", time.Now().Add(-time.Hour))

	_, err := VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerifyAccessTokenWrongSecret(t *testing.T) {
	token := signToken(t, "someone-else", "user-1", time.Now().Add(time.Hour))

	_, err := VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestRequireAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", RequireAuth(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})

	// no header
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// valid bearer
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", time.Now().Add(time.Hour)))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// garbage bearer
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
