package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ieee-swc/ClubBack/config"
	"github.com/ieee-swc/ClubBack/db"
	"github.com/ieee-swc/ClubBack/models"
	"github.com/ieee-swc/ClubBack/utils"
)

// SeedActivity fills the activity journal with a handful of recent events so
// the feed can be exercised locally. Debug deployments only.
func SeedActivity(c *fiber.Ctx) error {
	cfg := config.GetConfig()
	if !cfg.Debug {
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	}
	if db.Session == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "No database configured.",
		})
	}

	now := time.Now().UTC()
	seeds := []models.ActivityEvent{
		{Type: "message", User: models.ActivityActor{Username: "AlexChen"}, Content: "Seeded: library updates pushed", Channel: "projects"},
		{Type: "voice_join", User: models.ActivityActor{Username: "SarahKim"}, Channel: "Workshop Room"},
		{Type: "member_join", User: models.ActivityActor{Username: "NewMember"}},
	}

	for i, ev := range seeds {
		ev.ID = uuid.NewString()
		ev.Timestamp = now.Add(-time.Duration(i) * 5 * time.Minute).Format(time.RFC3339)
		if err := db.RecordActivity(db.Session, ev); err != nil {
			utils.Error("Seeding failed", "err", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Seeding failed."})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Seeded %d activity events.", len(seeds)),
	})
}
