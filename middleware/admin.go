package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ieee-swc/ClubBack/supabase"
	"github.com/ieee-swc/ClubBack/utils"
)

// RequireAdmin checks the caller's profile role against the backend. This is
// the actual access-control boundary; the frontend's redirect after a
// profile fetch is cosmetic only. Must run after RequireAuth.
func RequireAdmin(sb *supabase.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		token, _ := c.Locals("access_token").(string)
		if userID == "" || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "You are not authenticated.",
			})
		}

		isAdmin, err := sb.IsAdmin(token, userID)
		if err != nil {
			utils.Error("Admin check failed", "user_id", userID, "err", err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Could not verify your permissions.",
			})
		}
		if !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "This area is reserved for administrators.",
			})
		}

		return c.Next()
	}
}
