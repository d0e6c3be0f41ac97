package discord

// Upstream payload shapes. The widget endpoint and the privileged guild
// endpoints return differently-shaped documents for the same concepts; both
// get normalized into the models package before leaving this package.

type widgetMember struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	AvatarURL string      `json:"avatar_url"`
	Status    string      `json:"status"`
	Game      *widgetGame `json:"game"`
}

type widgetGame struct {
	Name string `json:"name"`
}

type widgetChannel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type widgetResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Icon     string          `json:"icon"`
	Members  []widgetMember  `json:"members"`
	Channels []widgetChannel `json:"channels"`
}

type guildResponse struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	Icon                     string `json:"icon"`
	ApproximateMemberCount   int    `json:"approximate_member_count"`
	ApproximatePresenceCount int    `json:"approximate_presence_count"`
}

type apiChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"` // 0 text, 2 voice
}

type voiceState struct {
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
}

type apiEventCreator struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type apiEventMetadata struct {
	Location string `json:"location"`
}

type apiScheduledEvent struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	StartTime      string            `json:"scheduled_start_time"`
	EndTime        string            `json:"scheduled_end_time"`
	Status         int               `json:"status"`
	UserCount      int               `json:"user_count"`
	ChannelID      string            `json:"channel_id"`
	Creator        *apiEventCreator  `json:"creator"`
	EntityMetadata *apiEventMetadata `json:"entity_metadata"`
}

type inviteResponse struct {
	Guild *struct {
		ID   string `json:"id"`
		Icon string `json:"icon"`
	} `json:"guild"`
}
