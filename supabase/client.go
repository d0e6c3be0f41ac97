package supabase

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/ieee-swc/ClubBack/config"
)

// ErrNotConfigured is returned by every operation when the hosted backend
// credentials are absent. The application keeps running; only auth-backed
// features are disabled.
var ErrNotConfigured = errors.New("auth backend not configured")

// Client talks to the hosted auth/profile backend (GoTrue + PostgREST
// surface). Unlike the community aggregator, its errors DO surface to the
// caller: a wrong password is meaningful to the end user and must be shown.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	enabled bool
}

func New(cfg *config.Config, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: cfg.SupabaseURL,
		anonKey: cfg.SupabaseAnonKey,
		http:    client,
		enabled: cfg.HasSupabase(),
	}
}

func (c *Client) Enabled() bool {
	return c.enabled
}

type backendError struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func (e backendError) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Msg != "":
		return e.Msg
	case e.ErrorDescription != "":
		return e.ErrorDescription
	}
	return ""
}

// do issues one request against the backend. token is the caller's access
// token; when empty the anon key doubles as bearer.
func (c *Client) do(method, path, token string, body any, out any) error {
	if !c.enabled {
		return ErrNotConfigured
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.anonKey)
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPatch || method == http.MethodPost {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var bErr backendError
		_ = json.Unmarshal(raw, &bErr)
		if msg := bErr.text(); msg != "" {
			return errors.New(msg)
		}
		return fmt.Errorf("auth backend: %s %s returned %d", method, path, resp.StatusCode)
	}

	if out != nil && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}
	return nil
}
