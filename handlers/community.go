package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ieee-swc/ClubBack/models"
)

// CommunityService is what the community endpoints need from the aggregator.
// Operations never fail; the aggregator's fallback chain guarantees a value.
type CommunityService interface {
	ServerInfo() models.ServerInfo
	OnlineMembers() []models.Member
	UpcomingEvents() []models.ScheduledEvent
	RecentActivity() []models.ActivityEvent
	InviteURL() string
	WidgetURL() string
}

type CommunityHandler struct {
	svc CommunityService
}

func NewCommunityHandler(svc CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

func (h *CommunityHandler) GetServerInfo(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.svc.ServerInfo())
}

func (h *CommunityHandler) GetOnlineMembers(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"members": h.svc.OnlineMembers(),
	})
}

func (h *CommunityHandler) GetUpcomingEvents(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"events": h.svc.UpcomingEvents(),
	})
}

func (h *CommunityHandler) GetRecentActivity(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"activity": h.svc.RecentActivity(),
	})
}

func (h *CommunityHandler) GetInvite(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"invite_url": h.svc.InviteURL(),
		"widget_url": h.svc.WidgetURL(),
	})
}
