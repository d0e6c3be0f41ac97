package handlers

import (
	"crypto/subtle"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ieee-swc/ClubBack/config"
	"github.com/ieee-swc/ClubBack/db"
	"github.com/ieee-swc/ClubBack/models"
	"github.com/ieee-swc/ClubBack/utils"
)

var validate = validator.New()

type activityInput struct {
	Type     string `json:"type" validate:"required,oneof=message voice_join voice_leave event_created member_join"`
	Username string `json:"username" validate:"required"`
	Avatar   string `json:"avatar" validate:"omitempty"`
	Content  string `json:"content"`
	Channel  string `json:"channel"`
}

// RecordActivity is the out-of-band writer behind the recent-activity feed.
// The community bot posts here with a shared secret; end users never do.
func RecordActivity(c *fiber.Ctx) error {
	cfg := config.GetConfig()
	if cfg.ActivitySecret == "" || db.Session == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Activity recording is not enabled on this deployment.",
		})
	}

	secret := c.Get("X-Activity-Secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(cfg.ActivitySecret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid webhook secret.",
		})
	}

	var input activityInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Malformed body."})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid activity event: " + err.Error()})
	}

	event := models.ActivityEvent{
		ID:        uuid.NewString(),
		Type:      input.Type,
		User:      models.ActivityActor{Username: input.Username, Avatar: input.Avatar},
		Content:   input.Content,
		Channel:   input.Channel,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := db.RecordActivity(db.Session, event); err != nil {
		utils.Error("Activity insert failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not record the event."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": event.ID})
}
