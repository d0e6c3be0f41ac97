package discord

import (
	"testing"
	"time"

	"github.com/ieee-swc/ClubBack/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fallback dataset must satisfy the exact same shape guarantees as live
// data: no partial objects may ever reach the presentation layer.

func TestFallbackDatasetFullyPopulated(t *testing.T) {
	require.NotEmpty(t, fallback.Server.Name)
	require.Len(t, fallback.Server.Channels, 6)
	for _, ch := range fallback.Server.Channels {
		assert.NotEmpty(t, ch.ID)
		assert.NotEmpty(t, ch.Name)
		assert.Contains(t, []string{"text", "voice"}, ch.Type)
	}

	for _, m := range fallback.Members {
		assert.NotEmpty(t, m.ID)
		assert.NotEmpty(t, m.Username)
		assert.Contains(t, []string{"online", "idle", "dnd", "offline"}, m.Status)
		assert.NotEmpty(t, m.Roles)
		_, err := time.Parse(time.RFC3339, m.JoinedAt)
		assert.NoError(t, err, "member %s joined_at", m.ID)
	}

	for _, e := range fallback.Events {
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Name)
		assert.Equal(t, "scheduled", e.Status)
		assert.NotEmpty(t, e.Creator.Username)
		_, err := time.Parse(time.RFC3339, e.StartTime)
		assert.NoError(t, err, "event %s start time", e.ID)
	}

	for _, a := range fallback.Activity {
		assert.NotEmpty(t, a.ID)
		assert.Contains(t, []string{"message", "voice_join", "voice_leave", "event_created", "member_join"}, a.Type)
		assert.NotEmpty(t, a.User.Username)
		_, err := time.Parse(time.RFC3339, a.Timestamp)
		assert.NoError(t, err, "activity %s timestamp", a.ID)
	}
}

func TestFallbackServerInfoVoiceCounts(t *testing.T) {
	svc := New(&config.Config{DiscordServerID: "42"}, nil, nil)

	info := svc.fallbackServerInfo()

	total := 0
	for _, ch := range info.Channels {
		if ch.Type == "voice" {
			require.NotNil(t, ch.MemberCount)
			total += *ch.MemberCount
		} else {
			assert.Nil(t, ch.MemberCount)
		}
	}
	assert.Equal(t, total, info.VoiceCount)
}

func TestFallbackMembersFilterOffline(t *testing.T) {
	for _, m := range fallbackMembers() {
		assert.NotEqual(t, "offline", m.Status)
	}
}
