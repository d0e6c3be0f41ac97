package models

type User struct {
	ID        string `json:"id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3,max=32"`
	FullName  string `json:"full_name" validate:"required"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Role      string `json:"role" validate:"required,oneof=admin member visitor"`
	DiscordID string `json:"discord_id,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
