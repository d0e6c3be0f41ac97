package discord

import (
	"errors"
	"time"

	"github.com/ieee-swc/ClubBack/db"
	"github.com/ieee-swc/ClubBack/metrics"
	"github.com/ieee-swc/ClubBack/models"
	"github.com/ieee-swc/ClubBack/utils"
)

const (
	tierGuild    = "guild"
	tierWidget   = "widget"
	tierJournal  = "journal"
	tierFallback = "fallback"
)

type tier[T any] struct {
	name string
	fn   func() (T, error)
}

// resolve walks the ordered tiers, short-circuiting on the first success.
// Tier failures are logged and counted, never surfaced: the last tier of
// every operation is infallible, so resolve always produces a value.
func resolve[T any](op string, tiers []tier[T]) T {
	for _, t := range tiers {
		v, err := t.fn()
		if err != nil {
			metrics.TierFailed(op, t.name)
			utils.Warn("Community tier failed, trying next", "op", op, "tier", t.name, "err", err)
			continue
		}
		metrics.TierServed(op, t.name)
		return v
	}
	var zero T
	return zero
}

// ServerInfo resolves the community snapshot through the guild → widget →
// fallback chain. It never fails; concurrent callers share one in-flight
// fetch.
func (s *Service) ServerInfo() models.ServerInfo {
	v, _, _ := s.group.Do("server_info", func() (any, error) {
		return resolve("server_info", []tier[models.ServerInfo]{
			{tierGuild, s.guildServerInfo},
			{tierWidget, s.widgetServerInfo},
			{tierFallback, func() (models.ServerInfo, error) { return s.fallbackServerInfo(), nil }},
		}), nil
	})
	return v.(models.ServerInfo)
}

// OnlineMembers returns the currently-visible presence list. Widget first,
// fallback roster (filtered to non-offline) otherwise.
func (s *Service) OnlineMembers() []models.Member {
	v, _, _ := s.group.Do("members", func() (any, error) {
		return resolve("members", []tier[[]models.Member]{
			{tierWidget, s.widgetMembers},
			{tierFallback, func() ([]models.Member, error) { return fallbackMembers(), nil }},
		}), nil
	})
	return v.([]models.Member)
}

// UpcomingEvents returns scheduled events only. The privileged endpoint
// needs a bot credential and is expected to fail without one.
func (s *Service) UpcomingEvents() []models.ScheduledEvent {
	v, _, _ := s.group.Do("events", func() (any, error) {
		events := resolve("events", []tier[[]models.ScheduledEvent]{
			{tierGuild, s.guildEvents},
			{tierFallback, func() ([]models.ScheduledEvent, error) { return fallbackEvents(), nil }},
		})

		upcoming := make([]models.ScheduledEvent, 0, len(events))
		for _, e := range events {
			if e.Status == "scheduled" {
				upcoming = append(upcoming, e)
			}
		}
		return upcoming, nil
	})
	return v.([]models.ScheduledEvent)
}

// RecentActivity reads the out-of-band activity journal when one is
// configured, otherwise the fallback feed. Newest first.
func (s *Service) RecentActivity() []models.ActivityEvent {
	v, _, _ := s.group.Do("activity", func() (any, error) {
		return resolve("activity", []tier[[]models.ActivityEvent]{
			{tierJournal, s.journalActivity},
			{tierFallback, func() ([]models.ActivityEvent, error) { return fallbackActivity(), nil }},
		}), nil
	})
	return v.([]models.ActivityEvent)
}

func (s *Service) journalActivity() ([]models.ActivityEvent, error) {
	if s.session == nil {
		return nil, errors.New("activity journal not configured")
	}
	events, err := db.RecentActivity(s.session, 20)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, errors.New("activity journal empty")
	}
	return events, nil
}

// guildServerInfo is the authenticated tier: authoritative counts, full
// channel list, best-effort voice occupancy.
func (s *Service) guildServerInfo() (models.ServerInfo, error) {
	var guild guildResponse
	if err := s.getJSON("/guilds/"+s.cfg.DiscordServerID+"?with_counts=true", true, &guild); err != nil {
		return models.ServerInfo{}, err
	}

	var channels []apiChannel
	if err := s.getJSON("/guilds/"+s.cfg.DiscordServerID+"/channels", true, &channels); err != nil {
		return models.ServerInfo{}, err
	}

	voiceCounts := map[string]int{}
	var states []voiceState
	if err := s.getJSON("/guilds/"+s.cfg.DiscordServerID+"/voice-states", true, &states); err != nil {
		utils.Warn("Could not fetch voice states, assuming empty voice channels", "err", err)
	} else {
		for _, st := range states {
			voiceCounts[st.ChannelID]++
		}
	}

	voiceTotal := 0
	normalized := make([]models.Channel, 0, len(channels))
	for _, ch := range channels {
		kind := "voice"
		if ch.Type == 0 {
			kind = "text"
		}
		out := models.Channel{ID: ch.ID, Name: ch.Name, Type: kind}
		if kind == "voice" {
			n := voiceCounts[ch.ID]
			out.MemberCount = &n
			voiceTotal += n
		}
		normalized = append(normalized, out)
	}

	return models.ServerInfo{
		ID:          guild.ID,
		Name:        guild.Name,
		Icon:        s.ResolveIconURL(guild.ID, guild.Icon),
		MemberCount: guild.ApproximateMemberCount,
		OnlineCount: guild.ApproximatePresenceCount,
		VoiceCount:  voiceTotal,
		Channels:    normalized,
		Source:      tierGuild,
	}, nil
}

// widgetServerInfo is the unauthenticated tier. The widget only exposes the
// name, a sampled presence list and voice channels, so the member count
// comes from the synthetic generator and is flagged as estimated.
func (s *Service) widgetServerInfo() (models.ServerInfo, error) {
	widget, err := s.fetchWidget()
	if err != nil {
		return models.ServerInfo{}, err
	}

	memberCount, onlineEstimate := generateStatistics(s.now())
	onlineCount := len(widget.Members)
	if onlineCount == 0 {
		onlineCount = onlineEstimate
	}

	channels := make([]models.Channel, 0, len(widget.Channels))
	for _, ch := range widget.Channels {
		// the widget only lists voice channels; occupancy is not exposed
		channels = append(channels, models.Channel{ID: ch.ID, Name: ch.Name, Type: "voice"})
	}

	name := widget.Name
	if name == "" {
		name = fallback.Server.Name
	}

	return models.ServerInfo{
		ID:             s.cfg.DiscordServerID,
		Name:           name,
		Icon:           s.ResolveIconURL(s.cfg.DiscordServerID, widget.Icon),
		MemberCount:    memberCount,
		OnlineCount:    onlineCount,
		VoiceCount:     0,
		Channels:       channels,
		Source:         tierWidget,
		StatsEstimated: true,
	}, nil
}

// widgetMembers normalizes the widget presence sample. The widget omits
// roles, join dates and discriminators, so those get typed defaults rather
// than holes.
func (s *Service) widgetMembers() ([]models.Member, error) {
	widget, err := s.fetchWidget()
	if err != nil {
		return nil, err
	}

	members := make([]models.Member, 0, len(widget.Members))
	for _, m := range widget.Members {
		status := m.Status
		if status == "" {
			status = "online"
		}

		var activity *models.MemberActivity
		if m.Game != nil {
			activity = &models.MemberActivity{Name: m.Game.Name, Type: 0, Details: m.Game.Name}
		}

		members = append(members, models.Member{
			ID:            m.ID,
			Username:      m.Username,
			Discriminator: "0000",
			Avatar:        m.AvatarURL,
			Status:        status,
			Activity:      activity,
			Roles:         []string{},
			JoinedAt:      s.now().UTC().Format(time.RFC3339),
		})
	}
	return members, nil
}

func (s *Service) guildEvents() ([]models.ScheduledEvent, error) {
	var raw []apiScheduledEvent
	if err := s.getJSON("/guilds/"+s.cfg.DiscordServerID+"/scheduled-events", true, &raw); err != nil {
		return nil, err
	}

	events := make([]models.ScheduledEvent, 0, len(raw))
	for _, e := range raw {
		events = append(events, s.normalizeEvent(e))
	}
	return events, nil
}

func (s *Service) normalizeEvent(e apiScheduledEvent) models.ScheduledEvent {
	status := "cancelled"
	switch e.Status {
	case 1:
		status = "scheduled"
	case 2:
		status = "active"
	case 3:
		status = "completed"
	}

	creator := models.EventCreator{Username: "Unknown"}
	if e.Creator != nil {
		creator.Username = e.Creator.Username
		if e.Creator.Avatar != "" {
			creator.Avatar = s.cfg.DiscordCDNBase + "/avatars/" + e.Creator.ID + "/" + e.Creator.Avatar + ".png"
		}
	}

	location := ""
	if e.EntityMetadata != nil {
		location = e.EntityMetadata.Location
	}

	return models.ScheduledEvent{
		ID:              e.ID,
		Name:            e.Name,
		Description:     e.Description,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		Location:        location,
		Status:          status,
		InterestedCount: e.UserCount,
		Creator:         creator,
		ChannelID:       e.ChannelID,
	}
}
