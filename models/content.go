package models

type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,min=3,max=120"`
	Description string `json:"description" validate:"required"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
	GithubURL   string `json:"github_url,omitempty" validate:"omitempty,url"`
	Status      string `json:"status" validate:"required,oneof=planning in_progress completed archived"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,min=3,max=120"`
	Description string `json:"description" validate:"required"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
	FileURL     string `json:"file_url,omitempty" validate:"omitempty,url"`
	Category    string `json:"category" validate:"required,oneof=datasheet tutorial tool library other"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
