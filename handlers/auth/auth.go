package auth

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/ieee-swc/ClubBack/config"
	"github.com/ieee-swc/ClubBack/htmlemail"
	"github.com/ieee-swc/ClubBack/supabase"
	"github.com/ieee-swc/ClubBack/utils"
)

var validate = validator.New()

// Handler fronts the hosted auth backend. Backend errors are shown to the
// user (a wrong password is information, not something to mask), except when
// the backend is simply not configured.
type Handler struct {
	sb *supabase.Client
}

func NewHandler(sb *supabase.Client) *Handler {
	return &Handler{sb: sb}
}

func (h *Handler) notConfigured(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"message": "Accounts are disabled on this deployment.",
	})
}

type registerInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required,min=3,max=32"`
	FullName string `json:"full_name" validate:"required,min=2,max=80"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	if !h.sb.Enabled() {
		return h.notConfigured(c)
	}

	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Malformed body."})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please check the form: " + err.Error()})
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := utils.CheckEmailDomain(email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	session, err := h.sb.SignUp(email, input.Password, input.Username, input.FullName)
	if err != nil {
		utils.Warn("Sign-up rejected by backend", "email", email, "err", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if config.GetConfig().HasMailer() {
		if body, err := htmlemail.Welcome(input.Username); err == nil {
			if err := utils.SendMail(email, "Welcome to the IEEE SWC Club", body); err != nil {
				utils.Warn("Welcome email not sent", "err", err)
			}
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Welcome to the club!",
		"access_token":  session.AccessToken,
		"refresh_token": session.RefreshToken,
		"user_id":       session.User.ID,
	})
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	if !h.sb.Enabled() {
		return h.notConfigured(c)
	}

	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Malformed body."})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and password are required."})
	}

	session, err := h.sb.SignIn(strings.ToLower(strings.TrimSpace(input.Email)), input.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token":  session.AccessToken,
		"refresh_token": session.RefreshToken,
		"user_id":       session.User.ID,
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if !h.sb.Enabled() {
		return h.notConfigured(c)
	}

	token, _ := c.Locals("access_token").(string)
	if err := h.sb.SignOut(token); err != nil {
		utils.Warn("Logout failed upstream", "err", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Signed out."})
}
