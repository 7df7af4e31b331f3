package config

import (
	"errors"
	"github.com/spf13/viper"
	"os"
	"strings"
)

// Config is the main struct that holds all configuration for the application.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Notifiers NotifiersConfig `mapstructure:"notifiers"`
}

// LoggerConfig holds logging-specific settings.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// HTTPConfig holds HTTP server-specific settings.
type HTTPConfig struct {
	Port           string   `mapstructure:"port"`
	GinMode        string   `mapstructure:"gin_mode"`
	StaticDir      string   `mapstructure:"static_dir"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Addr returns the listen address for the configured port.
func (c HTTPConfig) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// NotifiersConfig holds configuration for the outbound mail transport.
type NotifiersConfig struct {
	// Mode can be "production" or "log_only".
	// In "log_only" mode the SMTP transport is replaced by the LogNotifier.
	Mode  string      `mapstructure:"mode"`
	Email EmailConfig `mapstructure:"email"`
}

// EmailConfig holds the SMTP settings and the administrative recipient.
type EmailConfig struct {
	Service    string `mapstructure:"service"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Pass       string `mapstructure:"pass"`
	AdminEmail string `mapstructure:"admin_email"`
}

// Presence reports, per environment variable name, whether the value is set.
func (c EmailConfig) Presence() map[string]bool {
	return map[string]bool{
		"EMAIL_SERVICE": c.Service != "",
		"EMAIL_USER":    c.User != "",
		"EMAIL_PASS":    c.Pass != "",
		"ADMIN_EMAIL":   c.AdminEmail != "",
	}
}

// Missing lists the required variables that are absent, in a stable order.
func (c EmailConfig) Missing() []string {
	presence := c.Presence()
	var missing []string
	for _, name := range []string{"EMAIL_SERVICE", "EMAIL_USER", "EMAIL_PASS", "ADMIN_EMAIL"} {
		if !presence[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// Operative is true when every value required to send mail is present.
func (c EmailConfig) Operative() bool {
	return len(c.Missing()) == 0
}

// envBindings maps config keys onto the flat environment variables the service is deployed with.
var envBindings = map[string]string{
	"logger.level":                "LOG_LEVEL",
	"logger.format":               "LOG_FORMAT",
	"http.port":                   "PORT",
	"http.gin_mode":               "GIN_MODE",
	"http.static_dir":             "STATIC_DIR",
	"notifiers.mode":              "NOTIFIERS_MODE",
	"notifiers.email.service":     "EMAIL_SERVICE",
	"notifiers.email.host":        "EMAIL_HOST",
	"notifiers.email.port":        "EMAIL_PORT",
	"notifiers.email.user":        "EMAIL_USER",
	"notifiers.email.pass":        "EMAIL_PASS",
	"notifiers.email.admin_email": "ADMIN_EMAIL",
}

// NewConfig reads the optional YAML file and environment variables to return a configuration struct.
// A missing config file is not an error; the environment alone is enough to run.
func NewConfig() (*Config, error) {
	v := viper.New()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "configs/config.yaml"
	}
	v.SetConfigFile(path)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("http.port", "3000")
	v.SetDefault("http.gin_mode", "release")
	v.SetDefault("http.static_dir", "frontend")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("notifiers.mode", "production")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
