package config

import (
	"log"
	"os"
)

var cfg *Config

type Config struct {
	Port              string
	Debug             bool
	CORSOrigin        string
	DiscordServerID   string
	DiscordAPIBase    string
	DiscordCDNBase    string
	DiscordBotToken   string
	DiscordInviteCode string
	ActivitySecret    string
	SupabaseURL       string
	SupabaseAnonKey   string
	SupabaseJWTSecret string
	ScyllaHost        string
	ScyllaPort        string
	ScyllaUser        string
	ScyllaPass        string
	ScyllaKeyspace    string
	RedisHost         string
	RedisPass         string
	RedisDB           string
	SmtpHost          string
	SmtpPort          string
	SmtpUser          string
	SmtpPass          string
	ErrorReportEmail  string
	MinioEndpoint     string
	MinioAccessKey    string
	MinioSecretKey    string
	MinioBucket       string
	MinioURL          string
}

func LoadConfig() {
	if cfg != nil {
		return
	}

	cfg = &Config{
		Port:              os.Getenv("PORT"),
		Debug:             os.Getenv("APP_DEBUG") == "true",
		CORSOrigin:        os.Getenv("CORS_ORIGIN"),
		DiscordServerID:   os.Getenv("DISCORD_SERVER_ID"),
		DiscordAPIBase:    os.Getenv("DISCORD_API_BASE_URL"),
		DiscordCDNBase:    os.Getenv("DISCORD_CDN_BASE_URL"),
		DiscordBotToken:   os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordInviteCode: os.Getenv("DISCORD_INVITE_CODE"),
		ActivitySecret:    os.Getenv("ACTIVITY_WEBHOOK_SECRET"),
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:   os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		ScyllaHost:        os.Getenv("SCYLLA_HOST"),
		ScyllaPort:        os.Getenv("SCYLLA_PORT"),
		ScyllaUser:        os.Getenv("SCYLLA_USER"),
		ScyllaPass:        os.Getenv("SCYLLA_PASSWORD"),
		ScyllaKeyspace:    os.Getenv("SCYLLA_KEYSPACE"),
		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           os.Getenv("REDIS_DB"),
		SmtpHost:          os.Getenv("SMTP_HOST"),
		SmtpPort:          os.Getenv("SMTP_PORT"),
		SmtpUser:          os.Getenv("SMTP_USER"),
		SmtpPass:          os.Getenv("SMTP_PASS"),
		ErrorReportEmail:  os.Getenv("ERROR_REPORT_EMAIL"),
		MinioEndpoint:     os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:    os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:    os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:       os.Getenv("MINIO_BUCKET"),
		MinioURL:          os.Getenv("MINIO_URL"),
	}

	if cfg.DiscordServerID == "" {
		cfg.DiscordServerID = "1234567890"
	}
	if cfg.DiscordAPIBase == "" {
		cfg.DiscordAPIBase = "https://discord.com/api/v10"
	}
	if cfg.DiscordCDNBase == "" {
		cfg.DiscordCDNBase = "https://cdn.discordapp.com"
	}
}

func GetConfig() *Config {
	if cfg == nil {
		log.Fatal("Config not loaded — call LoadConfig() first")
	}
	return cfg
}

// HasSupabase reports whether the hosted auth backend is configured. Without
// it the auth gateway runs in disabled no-op mode instead of crashing.
func (c *Config) HasSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

func (c *Config) HasScylla() bool {
	return c.ScyllaHost != ""
}

func (c *Config) HasRedis() bool {
	return c.RedisHost != ""
}

func (c *Config) HasMinio() bool {
	return c.MinioEndpoint != ""
}

func (c *Config) HasMailer() bool {
	return c.SmtpHost != ""
}
