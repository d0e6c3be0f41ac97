package discord

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gocql/gocql"
	"github.com/ieee-swc/ClubBack/config"
	"github.com/ieee-swc/ClubBack/utils"
	"golang.org/x/sync/singleflight"
)

const widgetCacheTTL = 30 * time.Second

var errNoBotToken = errors.New("bot token not configured")

// Service aggregates community data from the Discord API behind an ordered
// fallback chain. Construct one at startup and share it; it holds no mutable
// state beyond the request coalescing group.
type Service struct {
	cfg     *config.Config
	http    *http.Client
	session *gocql.Session // optional activity journal, may be nil
	now     func() time.Time
	group   singleflight.Group
}

// New builds the aggregator. client may be nil (a 10s-timeout default is
// used); session may be nil (recent activity then comes from the fallback
// dataset).
func New(cfg *config.Config, client *http.Client, session *gocql.Session) *Service {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Service{
		cfg:     cfg,
		http:    client,
		session: session,
		now:     time.Now,
	}
}

func (s *Service) getJSON(path string, authenticated bool, out any) error {
	if authenticated && s.cfg.DiscordBotToken == "" {
		return errNoBotToken
	}

	req, err := http.NewRequest(http.MethodGet, s.cfg.DiscordAPIBase+path, nil)
	if err != nil {
		return err
	}
	if authenticated {
		req.Header.Set("Authorization", "Bot "+s.cfg.DiscordBotToken)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discord api: GET %s returned %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// fetchWidget hits the public widget endpoint, caching the raw document in
// Redis for 30s so polling widgets do not hammer the provider's rate limit.
func (s *Service) fetchWidget() (*widgetResponse, error) {
	cacheKey := "discord:widget:" + s.cfg.DiscordServerID

	if cached := utils.CacheGet(cacheKey); cached != "" {
		var widget widgetResponse
		if err := json.Unmarshal([]byte(cached), &widget); err == nil {
			return &widget, nil
		}
		utils.CacheDel(cacheKey)
	}

	var widget widgetResponse
	path := "/guilds/" + s.cfg.DiscordServerID + "/widget.json"
	if err := s.getJSON(path, false, &widget); err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(widget); err == nil {
		utils.CacheSet(cacheKey, string(raw), widgetCacheTTL)
	}
	return &widget, nil
}
