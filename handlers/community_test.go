package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/ieee-swc/ClubBack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommunity struct{}

func (stubCommunity) ServerInfo() models.ServerInfo {
	return models.ServerInfo{
		ID:          "42",
		Name:        "IEEE SWC Club",
		MemberCount: 81,
		OnlineCount: 12,
		Channels:    []models.Channel{{ID: "1", Name: "general", Type: "text"}},
		Source:      "fallback",
	}
}

func (stubCommunity) OnlineMembers() []models.Member {
	return []models.Member{{ID: "1", Username: "Bob", Status: "online", Roles: []string{}}}
}

func (stubCommunity) UpcomingEvents() []models.ScheduledEvent {
	return []models.ScheduledEvent{{ID: "a", Name: "Arduino Workshop", Status: "scheduled"}}
}

func (stubCommunity) RecentActivity() []models.ActivityEvent {
	return []models.ActivityEvent{{ID: "1", Type: "message", User: models.ActivityActor{Username: "Bob"}}}
}

func (stubCommunity) InviteURL() string { return "https://discord.gg/club123" }
func (stubCommunity) WidgetURL() string { return "https://discord.com/widget?id=42&theme=dark" }

func communityApp() *fiber.App {
	app := fiber.New()
	h := NewCommunityHandler(stubCommunity{})
	app.Get("/server", h.GetServerInfo)
	app.Get("/members", h.GetOnlineMembers)
	app.Get("/events", h.GetUpcomingEvents)
	app.Get("/activity", h.GetRecentActivity)
	app.Get("/invite", h.GetInvite)
	return app
}

func TestGetServerInfoRoute(t *testing.T) {
	app := communityApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/server", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var info models.ServerInfo
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, "IEEE SWC Club", info.Name)
	assert.Equal(t, 81, info.MemberCount)
	assert.Equal(t, "fallback", info.Source)
}

func TestGetMembersRoute(t *testing.T) {
	app := communityApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/members", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Members []models.Member `json:"members"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload.Members, 1)
	assert.Equal(t, "Bob", payload.Members[0].Username)
}

func TestGetInviteRoute(t *testing.T) {
	app := communityApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/invite", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "https://discord.gg/club123", payload["invite_url"])
}
