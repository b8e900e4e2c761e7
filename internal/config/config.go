package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the endpoints and local paths StreamBox needs.
type Config struct {
	CatalogURL string
	ImageURL   string
	AuthURL    string
	APIKey     string
	StatePath  string
	LogPath    string
}

const (
	defaultConfigPath = "~/.config/streambox/config.toml"
	defaultDataDir    = "~/.local/share/streambox"

	defaultCatalogURL = "https://api.themoviedb.org/3"
	defaultImageURL   = "https://image.tmdb.org/t/p/w500"
	defaultAuthURL    = "https://dummyjson.com"

	// Public demo key shipped with the original client. Override with
	// api_key in the config file.
	defaultAPIKey = "21a58db368df2452cf19008fe9208b45"
)

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the StreamBox config, falling back to defaults
// when the file is missing. An absent config file is not an error; the app
// must work out of the box.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogURL string `toml:"catalog_url"`
		ImageURL   string `toml:"image_url"`
		AuthURL    string `toml:"auth_url"`
		APIKey     string `toml:"api_key"`
		StatePath  string `toml:"state_path"`
		LogPath    string `toml:"log_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.CatalogURL); v != "" {
		cfg.CatalogURL = v
	}
	if v := strings.TrimSpace(raw.ImageURL); v != "" {
		cfg.ImageURL = v
	}
	if v := strings.TrimSpace(raw.AuthURL); v != "" {
		cfg.AuthURL = v
	}
	if v := strings.TrimSpace(raw.APIKey); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(raw.StatePath); v != "" {
		cfg.StatePath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}

	return cfg, nil
}

func defaults() Config {
	dataDir := mustExpand(defaultDataDir)
	return Config{
		CatalogURL: defaultCatalogURL,
		ImageURL:   defaultImageURL,
		AuthURL:    defaultAuthURL,
		APIKey:     defaultAPIKey,
		StatePath:  filepath.Join(dataDir, "state.json"),
		LogPath:    filepath.Join(dataDir, "streambox.log"),
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
