package supabase

import (
	"errors"
	"net/http"

	"github.com/ieee-swc/ClubBack/models"
)

// Profile fetches one profile row by id.
func (c *Client) Profile(accessToken, userID string) (*models.User, error) {
	var rows []models.User
	path := "/rest/v1/users?id=eq." + userID + "&select=*&limit=1"
	if err := c.do(http.MethodGet, path, accessToken, nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("profile not found")
	}
	return &rows[0], nil
}

func (c *Client) UpdateProfile(accessToken, userID string, updates map[string]any) (*models.User, error) {
	var rows []models.User
	path := "/rest/v1/users?id=eq." + userID
	if err := c.do(http.MethodPatch, path, accessToken, updates, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("profile not found")
	}
	return &rows[0], nil
}

// AllProfiles lists every profile, newest first. The backend's row-level
// policies make this admin-only; an under-privileged token gets an empty or
// error response from the backend itself, not from us.
func (c *Client) AllProfiles(accessToken string) ([]models.User, error) {
	var rows []models.User
	path := "/rest/v1/users?select=*&order=created_at.desc"
	if err := c.do(http.MethodGet, path, accessToken, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) UpdateRole(accessToken, userID, role string) (*models.User, error) {
	return c.UpdateProfile(accessToken, userID, map[string]any{"role": role})
}

// IsAdmin checks the profile role server-side. Page-level redirects in the
// frontend are cosmetic; this is the real boundary.
func (c *Client) IsAdmin(accessToken, userID string) (bool, error) {
	profile, err := c.Profile(accessToken, userID)
	if err != nil {
		return false, err
	}
	return profile.Role == "admin", nil
}

// Projects / resources content tables, same PostgREST surface.

func (c *Client) ListProjects(accessToken string) ([]models.Project, error) {
	var rows []models.Project
	path := "/rest/v1/projects?select=*&order=created_at.desc"
	if err := c.do(http.MethodGet, path, accessToken, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) CreateProject(accessToken string, p models.Project) (*models.Project, error) {
	var rows []models.Project
	if err := c.do(http.MethodPost, "/rest/v1/projects", accessToken, p, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("project insert returned no row")
	}
	return &rows[0], nil
}

func (c *Client) ListResources(accessToken string) ([]models.Resource, error) {
	var rows []models.Resource
	path := "/rest/v1/resources?select=*&order=created_at.desc"
	if err := c.do(http.MethodGet, path, accessToken, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) CreateResource(accessToken string, r models.Resource) (*models.Resource, error) {
	var rows []models.Resource
	if err := c.do(http.MethodPost, "/rest/v1/resources", accessToken, r, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("resource insert returned no row")
	}
	return &rows[0], nil
}
