package models

// Normalized community shapes. Every field is always populated regardless of
// which source tier produced the value, so the presentation layer never has
// to know whether it is looking at live or fallback data.

type Channel struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"` // "text" or "voice"
	MemberCount *int   `json:"member_count,omitempty" yaml:"member_count,omitempty"`
}

type ServerInfo struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Icon        string    `json:"icon,omitempty" yaml:"icon,omitempty"`
	MemberCount int       `json:"member_count" yaml:"member_count"`
	OnlineCount int       `json:"online_count" yaml:"online_count"`
	VoiceCount  int       `json:"voice_count" yaml:"voice_count"`
	Channels    []Channel `json:"channels" yaml:"channels"`

	// Source names the tier that produced this snapshot ("guild", "widget"
	// or "fallback"). StatsEstimated marks counts that came from the
	// synthetic generator rather than an authoritative source.
	Source         string `json:"source" yaml:"-"`
	StatsEstimated bool   `json:"stats_estimated" yaml:"-"`
}

type MemberActivity struct {
	Name    string `json:"name" yaml:"name"`
	Type    int    `json:"type" yaml:"type"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

type Member struct {
	ID            string          `json:"id" yaml:"id"`
	Username      string          `json:"username" yaml:"username"`
	Discriminator string          `json:"discriminator" yaml:"discriminator"`
	Avatar        string          `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Status        string          `json:"status" yaml:"status"` // online, idle, dnd, offline
	Activity      *MemberActivity `json:"activity,omitempty" yaml:"activity,omitempty"`
	Roles         []string        `json:"roles" yaml:"roles"`
	JoinedAt      string          `json:"joined_at" yaml:"joined_at"`
}

type EventCreator struct {
	Username string `json:"username" yaml:"username"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

type ScheduledEvent struct {
	ID              string       `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name"`
	Description     string       `json:"description" yaml:"description"`
	StartTime       string       `json:"scheduled_start_time" yaml:"scheduled_start_time"`
	EndTime         string       `json:"scheduled_end_time,omitempty" yaml:"scheduled_end_time,omitempty"`
	Location        string       `json:"location,omitempty" yaml:"location,omitempty"`
	Status          string       `json:"status" yaml:"status"` // scheduled, active, completed, cancelled
	InterestedCount int          `json:"user_count" yaml:"user_count"`
	Creator         EventCreator `json:"creator" yaml:"creator"`
	ChannelID       string       `json:"channel_id" yaml:"channel_id"`
}

type ActivityActor struct {
	Username string `json:"username" yaml:"username"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

type ActivityEvent struct {
	ID        string        `json:"id" yaml:"id"`
	Type      string        `json:"type" yaml:"type"` // message, voice_join, voice_leave, event_created, member_join
	User      ActivityActor `json:"user" yaml:"user"`
	Content   string        `json:"content,omitempty" yaml:"content,omitempty"`
	Channel   string        `json:"channel,omitempty" yaml:"channel,omitempty"`
	Timestamp string        `json:"timestamp" yaml:"timestamp"`
}
