package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/reusedev/imagen-studio/internal/consts"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

func Init(data []byte) {
	c, err := Load(data)
	if err != nil {
		panic(err)
	}
	GConfig = c
}

// Load parses YAML config, fills defaults, resolves the API key from the
// environment when the file leaves it empty and verifies the result.
func Load(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	c.fillDefault()
	c.Gemini.resolveAPIKey()
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

func Default() *Config {
	c := &Config{}
	c.fillDefault()
	return c
}

type Config struct {
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
	LogMaxSize     int    `yaml:"log_max_size"`
	LogMaxBackups  int    `yaml:"log_max_backups"`
	LogMaxAge      int    `yaml:"log_max_age"`
	HistoryEnabled bool   `yaml:"history_enabled"`
	Gemini         `yaml:"gemini"`
	Gallery        `yaml:"gallery"`
	MySQL          `yaml:"mysql"`
}

func (c *Config) fillDefault() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFile == "" {
		c.LogFile = "logs/imagen-studio.log"
	}
	if c.LogMaxSize == 0 {
		c.LogMaxSize = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 5
	}
	if c.LogMaxAge == 0 {
		c.LogMaxAge = 30
	}
	if c.Gemini.Backend == "" {
		c.Gemini.Backend = consts.BackendREST.String()
	}
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = DefaultBaseURL
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = consts.Gemini25FlashImage.String()
	}
	if c.Gemini.Timeout == "" {
		c.Gemini.Timeout = "2m"
	}
	if len(c.Gemini.ResponseModalities) == 0 {
		c.Gemini.ResponseModalities = []string{"TEXT", "IMAGE"}
	}
	if c.Gallery.MaxEntries == 0 {
		c.Gallery.MaxEntries = 12
	}
	if c.Gallery.SessionTTL == "" {
		c.Gallery.SessionTTL = "30m"
	}
	if c.MySQL.Port == 0 {
		c.MySQL.Port = 3306
	}
	if c.MySQL.Charset == "" {
		c.MySQL.Charset = "utf8mb4"
	}
}

func (c *Config) Verify() error {
	switch consts.Backend(c.Gemini.Backend) {
	case consts.BackendREST, consts.BackendSDK:
	default:
		return fmt.Errorf("gemini.backend must be %s or %s", consts.BackendREST, consts.BackendSDK)
	}
	if _, err := time.ParseDuration(c.Gemini.Timeout); err != nil {
		return fmt.Errorf("gemini.timeout: %w", err)
	}
	if c.Gallery.MaxEntries < 0 {
		return fmt.Errorf("gallery.max_entries must not be negative")
	}
	if _, err := time.ParseDuration(c.Gallery.SessionTTL); err != nil {
		return fmt.Errorf("gallery.session_ttl: %w", err)
	}
	if c.HistoryEnabled && c.MySQL.Host == "" {
		return fmt.Errorf("mysql.host is required when history_enabled is true")
	}
	return nil
}

const DefaultBaseURL = "https://generativelanguage.googleapis.com"

type Gemini struct {
	Backend            string   `yaml:"backend"`
	APIKey             string   `yaml:"api_key"`
	BaseURL            string   `yaml:"base_url"`
	Model              string   `yaml:"model"`
	Timeout            string   `yaml:"timeout"`
	ResponseModalities []string `yaml:"response_modalities"`
}

func (g Gemini) RequestTimeout() time.Duration {
	d, _ := time.ParseDuration(g.Timeout)
	return d
}

// resolveAPIKey falls back to GOOGLE_API_KEY, then GEMINI_API_KEY. A .env in
// the working directory is loaded first; it never overrides the real environment.
func (g *Gemini) resolveAPIKey() {
	if strings.TrimSpace(g.APIKey) != "" {
		return
	}
	_ = godotenv.Load()
	for _, k := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			g.APIKey = v
			return
		}
	}
}

type Gallery struct {
	MaxEntries int    `yaml:"max_entries"`
	SessionTTL string `yaml:"session_ttl"`
}

func (g Gallery) TTL() time.Duration {
	d, _ := time.ParseDuration(g.SessionTTL)
	return d
}

type MySQL struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}
