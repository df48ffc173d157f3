package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/tailscale/hujson"
	"io/fs"
	"net/url"
	"os"
)

const (
	configVarName  = "CONFIG"                 // If set, will load config from this path and not from devConfigPath
	devConfigPath  = "./dev/config.dev.jsonc" // Path to config in development environment
	defOutputFile  = "index.html"
	defUserAgent   = "Mozilla/5.0"
	defRegenMins   = 60
	defServicePort = 8080
)

type Config struct {
	LogFile           string   `json:"log_file"`
	LogLevel          string   `json:"log_level"`
	OutputFile        string   `json:"output_file"`
	MetricsFile       string   `json:"metrics_file"`
	ServicePort       uint     `json:"service_port"`
	RegenerateMinutes int      `json:"regenerate_minutes"`
	UserAgent         string   `json:"user_agent"`
	ProfileDir        string   `json:"profile_dir"`
	ProfileKeepDays   int      `json:"profile_keep_days"`
	Sources           []Source `json:"sources"`
	Secrets           Secrets  `json:"secrets"`
}

// Secrets guard the serve-mode endpoints. Empty values leave the endpoints open, for local previews.
type Secrets struct {
	ApiKeys     []string `json:"api_keys"`
	MetricsAuth string   `json:"metrics_auth"`
}

// Source is one feed the digest pulls from. Name is the display label and must be unique.
type Source struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

var DefaultSources = []Source{
	{"OpenAI", "https://openai.com/blog/rss.xml"},
	{"Google AI", "https://blog.google/technology/ai/rss/"},
	{"Meta AI", "https://ai.facebook.com/blog/rss/"},
	{"HuggingFace", "https://huggingface.co/blog/feed.xml"},
	{"Towards Data Science", "https://towardsdatascience.com/feed"},
	{"Analytics Vidhya", "https://www.analyticsvidhya.com/feed/"},
}

// GetConfigPath returns the explicit path if given, then the CONFIG env var, then the dev config.
func GetConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if cfgPath := os.Getenv(configVarName); cfgPath != "" {
		return cfgPath
	}
	return devConfigPath
}

func LoadConfig(cfgPath string) (*Config, error) {
	var config Config
	if err := deserializeFile(cfgPath, &config); err != nil {
		return nil, err
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", cfgPath, err)
	}
	return &config, nil
}

// LoadConfigOrDefault loads the config from GetConfigPath. Only when neither a flag nor CONFIG names a file
// and the dev config is absent does it fall back to NewDefaultConfig.
func LoadConfigOrDefault(explicit string) (*Config, error) {
	cfgPath := GetConfigPath(explicit)
	cfg, err := LoadConfig(cfgPath)
	if err != nil && cfgPath == devConfigPath && errors.Is(err, fs.ErrNotExist) {
		return NewDefaultConfig(), nil
	}
	return cfg, err
}

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	var config Config
	config.applyDefaults()
	return &config
}

func (cfg *Config) applyDefaults() {
	if cfg.OutputFile == "" {
		cfg.OutputFile = defOutputFile
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defUserAgent
	}
	if cfg.RegenerateMinutes <= 0 {
		cfg.RegenerateMinutes = defRegenMins
	}
	if cfg.ServicePort == 0 {
		cfg.ServicePort = defServicePort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "Info"
	}
	if len(cfg.Sources) == 0 {
		cfg.Sources = append([]Source(nil), DefaultSources...)
	}
}

func (cfg *Config) Validate() error {
	seen := make(map[string]bool)
	for i, src := range cfg.Sources {
		if src.Name == "" {
			return fmt.Errorf("source #%d has no name", i)
		}
		if seen[src.Name] {
			return fmt.Errorf("duplicate source name '%s'", src.Name)
		}
		seen[src.Name] = true
		parsedUrl, err := url.Parse(src.Url)
		if err != nil {
			return fmt.Errorf("source '%s' has invalid URL: %w", src.Name, err)
		}
		if parsedUrl.Scheme != "http" && parsedUrl.Scheme != "https" || parsedUrl.Host == "" {
			return fmt.Errorf("source '%s' URL must be absolute http(s): %s", src.Name, src.Url)
		}
	}
	return nil
}

func deserializeFile[T any](fileName string, obj *T) error {
	var err error
	var cfgJson []byte
	if cfgJson, err = os.ReadFile(fileName); err != nil {
		return err
	}
	// JSONC => JSON
	if cfgJson, err = standardizeJSON(cfgJson); err != nil {
		return fmt.Errorf("failed to parse '%s': %w", fileName, err)
	}
	// Parse
	if err = json.Unmarshal(cfgJson, obj); err != nil {
		return fmt.Errorf("failed to deserialize '%s': %w", fileName, err)
	}
	return nil
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
