package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName        = "matrix-jobs"
	ConfigFileName = "config.json"
)

// Config holds provider credentials, upstream endpoints and default search
// settings. Values start from environment variables and are overridden by
// the config file when one exists.
type Config struct {
	JSearchAPIKey   string `json:"jsearch_api_key"`
	RemotiveBaseURL string `json:"remotive_base_url"`
	JSearchBaseURL  string `json:"jsearch_base_url"`
	ListenAddr      string `json:"listen_addr"`
	DefaultLocation string `json:"default_location"`
	DefaultPerPage  int    `json:"default_per_page"`
}

func DefaultConfig() Config {
	return Config{
		JSearchAPIKey:   envString("JSEARCH_API_KEY", ""),
		RemotiveBaseURL: envString("REMOTIVE_BASE_URL", "https://remotive.com"),
		JSearchBaseURL:  envString("JSEARCH_BASE_URL", "https://jsearch.p.rapidapi.com"),
		ListenAddr:      envString("MATRIXJOBS_ADDR", ":8080"),
		DefaultLocation: envString("MATRIXJOBS_DEFAULT_LOCATION", ""),
		DefaultPerPage:  envInt("MATRIXJOBS_DEFAULT_PER_PAGE", 20),
	}
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func Load() (Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Init writes a default config.json if one doesn't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
