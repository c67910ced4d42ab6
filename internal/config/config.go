package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the full application configuration. Values come from the yaml
// file first, then environment variables override field by field.
type Config struct {
	Server        ServerConfig       `yaml:"server"`
	Database      DatabaseConfig     `yaml:"database"`
	JWT           JWTConfig          `yaml:"jwt"`
	SMTP          SMTPConfig         `yaml:"smtp"`
	Twilio        TwilioConfig       `yaml:"twilio"`
	Notifications NotificationConfig `yaml:"notifications"`
	Admin         AdminConfig        `yaml:"admin"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Env  string `yaml:"env"`
}

type DatabaseConfig struct {
	// URL takes precedence over the discrete PG* fields when set.
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

type JWTConfig struct {
	Secret          string `yaml:"secret"`
	AccessTTLHours  int    `yaml:"access_ttl_hours"`
	RefreshTTLHours int    `yaml:"refresh_ttl_hours"`
}

type SMTPConfig struct {
	Server        string `yaml:"server"`
	Port          int    `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	DefaultSender string `yaml:"default_sender"`
}

type TwilioConfig struct {
	AccountSID  string `yaml:"account_sid"`
	AuthToken   string `yaml:"auth_token"`
	PhoneNumber string `yaml:"phone_number"`
}

type NotificationConfig struct {
	// SMSTransport picks the outbound SMS backend: "mock" or "twilio".
	// Empty means auto-detect from the Twilio credentials.
	SMSTransport string `yaml:"sms_transport"`
}

type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Load reads the yaml config at path and applies environment overrides.
// A missing file is not fatal; env-only deployments are supported.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured (set JWT_SECRET)")
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	overrideString(&c.Server.Port, "SERVER_PORT")
	overrideString(&c.Server.Env, "SERVER_ENV")

	overrideString(&c.Database.URL, "DATABASE_URL")
	overrideString(&c.Database.Host, "PGHOST")
	overrideString(&c.Database.Port, "PGPORT")
	overrideString(&c.Database.User, "PGUSER")
	overrideString(&c.Database.Password, "PGPASSWORD")
	overrideString(&c.Database.Name, "PGDATABASE")

	overrideString(&c.JWT.Secret, "JWT_SECRET")

	overrideString(&c.SMTP.Server, "SMTP_SERVER")
	overrideInt(&c.SMTP.Port, "SMTP_PORT")
	overrideString(&c.SMTP.User, "SMTP_USER")
	overrideString(&c.SMTP.Password, "SMTP_PASSWORD")
	overrideString(&c.SMTP.DefaultSender, "DEFAULT_SENDER")

	overrideString(&c.Twilio.AccountSID, "TWILIO_ACCOUNT_SID")
	overrideString(&c.Twilio.AuthToken, "TWILIO_AUTH_TOKEN")
	overrideString(&c.Twilio.PhoneNumber, "TWILIO_PHONE_NUMBER")

	overrideString(&c.Notifications.SMSTransport, "SMS_TRANSPORT")

	overrideString(&c.Admin.Email, "ADMIN_EMAIL")
	overrideString(&c.Admin.Password, "ADMIN_PASSWORD")
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.JWT.AccessTTLHours == 0 {
		c.JWT.AccessTTLHours = 24
	}
	if c.JWT.RefreshTTLHours == 0 {
		c.JWT.RefreshTTLHours = 24 * 7
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.Name, c.Database.SSLMode,
	)
}

// IsDevelopment reports whether the server runs in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// TwilioConfigured reports whether all three Twilio credentials are present.
func (c *Config) TwilioConfigured() bool {
	return c.Twilio.AccountSID != "" && c.Twilio.AuthToken != "" && c.Twilio.PhoneNumber != ""
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			*dst = n
		}
	}
}
