package supabase

import (
	"net/http"
)

type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	User         AuthUser `json:"user"`
}

// SignUp creates the auth account and its profile row (role "member"). The
// profile insert runs under the fresh session so the backend's row-level
// policies see the new user as themselves.
func (c *Client) SignUp(email, password, username, fullName string) (*Session, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
		"data": map[string]string{
			"username":  username,
			"full_name": fullName,
		},
	}

	var session Session
	if err := c.do(http.MethodPost, "/auth/v1/signup", "", payload, &session); err != nil {
		return nil, err
	}

	profile := map[string]string{
		"id":        session.User.ID,
		"email":     session.User.Email,
		"username":  username,
		"full_name": fullName,
		"role":      "member",
	}
	if err := c.do(http.MethodPost, "/rest/v1/users", session.AccessToken, profile, nil); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) SignIn(email, password string) (*Session, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var session Session
	if err := c.do(http.MethodPost, "/auth/v1/token?grant_type=password", "", payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) SignOut(accessToken string) error {
	return c.do(http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
}

func (c *Client) CurrentUser(accessToken string) (*AuthUser, error) {
	var user AuthUser
	if err := c.do(http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
