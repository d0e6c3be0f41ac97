package discord

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ieee-swc/ClubBack/config"
	"github.com/stretchr/testify/assert"
)

func fixedService(cfg *config.Config, now time.Time) *Service {
	svc := New(cfg, nil, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestFormatRelativeTimestamp(t *testing.T) {
	now := time.Date(2025, 1, 15, 15, 0, 0, 0, time.UTC)
	svc := fixedService(&config.Config{}, now)

	cases := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.FormatRelativeTimestamp(tc.ts.Format(time.RFC3339)))
		})
	}

	// Beyond a day it must be a plain date, never a relative string.
	old := svc.FormatRelativeTimestamp(now.Add(-3 * 24 * time.Hour).Format(time.RFC3339))
	assert.Equal(t, "Jan 12, 2025", old)
	assert.NotContains(t, old, "ago")
}

func TestResolveIconURLFromHash(t *testing.T) {
	svc := fixedService(&config.Config{DiscordCDNBase: "https://cdn.discordapp.com"}, time.Now())

	assert.Equal(t,
		"https://cdn.discordapp.com/icons/42/abc123.png",
		svc.ResolveIconURL("42", "abc123"))
}

func TestResolveIconURLPassthrough(t *testing.T) {
	svc := fixedService(&config.Config{DiscordCDNBase: "https://cdn.discordapp.com"}, time.Now())

	assert.Equal(t,
		"https://example.com/icon.png",
		svc.ResolveIconURL("42", "https://example.com/icon.png"))
}

func TestResolveIconURLInviteFallback(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/invites/club123" {
			w.Write([]byte(`{"guild":{"id":"42","icon":"fromInvite"}}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	cfg := &config.Config{
		DiscordAPIBase:    upstream.URL,
		DiscordCDNBase:    "https://cdn.discordapp.com",
		DiscordInviteCode: "club123",
	}
	svc := fixedService(cfg, time.Now())

	assert.Equal(t,
		"https://cdn.discordapp.com/icons/42/fromInvite.png",
		svc.ResolveIconURL("42", ""))
}

func TestResolveIconURLNothingResolvable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	cfg := &config.Config{
		DiscordAPIBase:    upstream.URL,
		DiscordCDNBase:    "https://cdn.discordapp.com",
		DiscordInviteCode: "club123",
	}
	svc := fixedService(cfg, time.Now())

	assert.Equal(t, "", svc.ResolveIconURL("42", ""))
}

func TestInviteAndWidgetURLs(t *testing.T) {
	cfg := &config.Config{DiscordServerID: "42", DiscordInviteCode: "club123"}
	svc := fixedService(cfg, time.Now())

	assert.Equal(t, "https://discord.gg/club123", svc.InviteURL())
	assert.Equal(t, "https://discord.com/widget?id=42&theme=dark", svc.WidgetURL())
}
