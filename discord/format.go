package discord

import (
	"fmt"
	"strings"
	"time"
)

// FormatRelativeTimestamp renders an ISO-8601 timestamp relative to now:
// "just now" under a minute, "{n}m ago" under an hour, "{n}h ago" under a
// day, and a plain date beyond that.
func (s *Service) FormatRelativeTimestamp(timestamp string) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}

	minutes := int(s.now().Sub(t).Minutes())
	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%dh ago", minutes/60)
	default:
		return t.Format("Jan 2, 2006")
	}
}

// ResolveIconURL turns a raw icon reference into a fetchable URL. Absolute
// URLs pass through, icon hashes become CDN URLs, and an empty reference
// triggers a best-effort invite lookup. Returns "" when nothing can be
// resolved; the caller renders a placeholder glyph.
func (s *Service) ResolveIconURL(guildID, rawIcon string) string {
	if strings.HasPrefix(rawIcon, "https://") {
		return rawIcon
	}
	if rawIcon != "" {
		return s.cfg.DiscordCDNBase + "/icons/" + guildID + "/" + rawIcon + ".png"
	}
	if s.cfg.DiscordInviteCode == "" {
		return ""
	}

	var invite inviteResponse
	if err := s.getJSON("/invites/"+s.cfg.DiscordInviteCode, false, &invite); err != nil {
		return ""
	}
	if invite.Guild == nil || invite.Guild.Icon == "" {
		return ""
	}
	return s.cfg.DiscordCDNBase + "/icons/" + guildID + "/" + invite.Guild.Icon + ".png"
}

// InviteURL is the deep link surfaced on the join page.
func (s *Service) InviteURL() string {
	return "https://discord.gg/" + s.cfg.DiscordInviteCode
}

// WidgetURL is the embeddable widget iframe source.
func (s *Service) WidgetURL() string {
	return "https://discord.com/widget?id=" + s.cfg.DiscordServerID + "&theme=dark"
}
