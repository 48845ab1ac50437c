package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the gauge settings.
type Config struct {
	Interval         time.Duration
	HistorySize      int
	DroppedThreshold int
	Region           string
	EnvFile          string
	LogPath          string
	LogLevel         string
	LogFormat        string
	MetricsAddr      string
	SoundPlayer      string
	CriticalSound    string
	StartupSound     string
}

// Credentials are the Dexcom Share account details.
type Credentials struct {
	Account  string
	Password string
}

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "BGCHECK_CONFIG"

// Environment variables holding the credentials.
const (
	EnvAccount  = "ACCOUNT"
	EnvPassword = "PASSWORD"
)

// SimulatedInterval replaces the configured interval in test mode.
const SimulatedInterval = 10 * time.Second

const (
	defaultConfigPath       = "~/.config/bgcheck/config.toml"
	defaultIntervalSeconds  = 300
	defaultHistorySize      = 6
	defaultDroppedThreshold = 2
	defaultRegion           = "ous"
	defaultEnvFile          = ".env"
	defaultLogPath          = "~/.local/state/bgcheck/bgcheck.log"
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
	defaultCriticalSound    = "crit_stop.wav"
	defaultStartupSound     = "tada.wav"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Interval:         defaultIntervalSeconds * time.Second,
		HistorySize:      defaultHistorySize,
		DroppedThreshold: defaultDroppedThreshold,
		Region:           defaultRegion,
		EnvFile:          defaultEnvFile,
		LogPath:          mustExpand(defaultLogPath),
		LogLevel:         defaultLogLevel,
		LogFormat:        defaultLogFormat,
		CriticalSound:    defaultCriticalSound,
		StartupSound:     defaultStartupSound,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

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
		IntervalSeconds  *int   `toml:"interval_seconds"`
		HistorySize      int    `toml:"history_size"`
		DroppedThreshold int    `toml:"dropped_threshold"`
		Region           string `toml:"region"`
		EnvFile          string `toml:"env_file"`
		LogPath          string `toml:"log_path"`
		LogLevel         string `toml:"log_level"`
		LogFormat        string `toml:"log_format"`
		MetricsAddr      string `toml:"metrics_addr"`
		SoundPlayer      string `toml:"sound_player"`
		CriticalSound    string `toml:"critical_sound"`
		StartupSound     string `toml:"startup_sound"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.IntervalSeconds != nil {
		if *raw.IntervalSeconds < 0 {
			return Config{}, fmt.Errorf("parse config: interval_seconds must not be negative, got %d", *raw.IntervalSeconds)
		}
		cfg.Interval = time.Duration(*raw.IntervalSeconds) * time.Second
	}
	if raw.HistorySize > 0 {
		cfg.HistorySize = raw.HistorySize
	}
	if raw.DroppedThreshold > 0 {
		cfg.DroppedThreshold = raw.DroppedThreshold
	}

	cfg.Region = orDefault(strings.ToLower(raw.Region), defaultRegion)
	cfg.EnvFile = orDefault(raw.EnvFile, defaultEnvFile)
	cfg.LogLevel = orDefault(raw.LogLevel, defaultLogLevel)
	cfg.LogFormat = orDefault(raw.LogFormat, defaultLogFormat)
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	cfg.SoundPlayer = strings.TrimSpace(raw.SoundPlayer)
	cfg.CriticalSound = orDefault(raw.CriticalSound, defaultCriticalSound)
	cfg.StartupSound = orDefault(raw.StartupSound, defaultStartupSound)
	cfg.LogPath = mustExpand(orDefault(raw.LogPath, defaultLogPath))

	return cfg, nil
}

// LoadCredentials reads ACCOUNT and PASSWORD from the environment after
// seeding it from envFile. Variables already set are never overridden and a
// missing file is not an error. Empty values are returned as-is; the reading
// source rejects them on first use.
func LoadCredentials(envFile string) (Credentials, error) {
	if strings.TrimSpace(envFile) != "" {
		if err := godotenv.Load(mustExpand(envFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Credentials{}, fmt.Errorf("load env file: %w", err)
		}
	}
	return Credentials{
		Account:  strings.TrimSpace(os.Getenv(EnvAccount)),
		Password: os.Getenv(EnvPassword),
	}, nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return expandPath(path)
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return expandPath(env)
	}
	return expandPath(defaultConfigPath)
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
