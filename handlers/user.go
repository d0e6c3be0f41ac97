package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ieee-swc/ClubBack/supabase"
	"github.com/ieee-swc/ClubBack/utils"
)

type UserHandler struct {
	sb *supabase.Client
}

func NewUserHandler(sb *supabase.Client) *UserHandler {
	return &UserHandler{sb: sb}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	token, _ := c.Locals("access_token").(string)

	profile, err := h.sb.Profile(token, userID)
	if err != nil {
		utils.Error("Profile fetch failed", "user_id", userID, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load your profile.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": profile})
}

type updateMeInput struct {
	Username  string `json:"username" validate:"omitempty,min=3,max=32"`
	FullName  string `json:"full_name" validate:"omitempty,min=2,max=80"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
	DiscordID string `json:"discord_id" validate:"omitempty,numeric"`
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	token, _ := c.Locals("access_token").(string)

	var input updateMeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Malformed body."})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid profile fields: " + err.Error()})
	}

	updates := map[string]any{}
	if input.Username != "" {
		updates["username"] = input.Username
	}
	if input.FullName != "" {
		updates["full_name"] = input.FullName
	}
	if input.AvatarURL != "" {
		updates["avatar_url"] = input.AvatarURL
	}
	if input.DiscordID != "" {
		updates["discord_id"] = input.DiscordID
	}
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nothing to update."})
	}

	profile, err := h.sb.UpdateProfile(token, userID, updates)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": profile})
}

// ListUsers is admin-only (enforced by RequireAdmin upstream).
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	token, _ := c.Locals("access_token").(string)

	users, err := h.sb.AllProfiles(token)
	if err != nil {
		utils.Error("User listing failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not list members."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": users})
}

type updateRoleInput struct {
	Role string `json:"role" validate:"required,oneof=admin member visitor"`
}

func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	token, _ := c.Locals("access_token").(string)
	targetID := c.Params("id")

	var input updateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Malformed body."})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Role must be admin, member or visitor."})
	}

	user, err := h.sb.UpdateRole(token, targetID, input.Role)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}
