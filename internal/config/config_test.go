package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Interval != 300*time.Second {
		t.Fatalf("Interval = %v, want 5m", cfg.Interval)
	}
	if cfg.HistorySize != 6 || cfg.DroppedThreshold != 2 {
		t.Fatalf("HistorySize/DroppedThreshold = %d/%d, want 6/2", cfg.HistorySize, cfg.DroppedThreshold)
	}
	if cfg.Region != defaultRegion {
		t.Fatalf("Region = %q, want %q", cfg.Region, defaultRegion)
	}

	wantLogPath, err := expandPath(defaultLogPath)
	if err != nil {
		t.Fatalf("expandPath(defaultLogPath) returned error: %v", err)
	}
	if cfg.LogPath != wantLogPath {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, wantLogPath)
	}
	if cfg.CriticalSound != "crit_stop.wav" || cfg.StartupSound != "tada.wav" {
		t.Fatalf("sounds = %q/%q, want crit_stop.wav/tada.wav", cfg.CriticalSound, cfg.StartupSound)
	}
	if cfg.SoundPlayer != "" || cfg.MetricsAddr != "" {
		t.Fatalf("optional fields should default empty, got player=%q metrics=%q", cfg.SoundPlayer, cfg.MetricsAddr)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
interval_seconds = 60
history_size = 12
dropped_threshold = 3
region = "  US  "
log_path = "  ~/.bgcheck/bgcheck.log  "
log_format = "json"
metrics_addr = " 127.0.0.1:9464 "
sound_player = "paplay"
critical_sound = "/usr/share/sounds/alarm.wav"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Interval != time.Minute {
		t.Fatalf("Interval = %v, want 1m", cfg.Interval)
	}
	if cfg.HistorySize != 12 || cfg.DroppedThreshold != 3 {
		t.Fatalf("HistorySize/DroppedThreshold = %d/%d, want 12/3", cfg.HistorySize, cfg.DroppedThreshold)
	}
	if cfg.Region != "us" {
		t.Fatalf("Region = %q, want %q", cfg.Region, "us")
	}
	if !strings.HasPrefix(cfg.LogPath, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", cfg.LogPath, home)
	}
	if cfg.LogFormat != "json" || cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogFormat/LogLevel = %q/%q, want json/info", cfg.LogFormat, cfg.LogLevel)
	}
	if cfg.MetricsAddr != "127.0.0.1:9464" {
		t.Fatalf("MetricsAddr = %q, want %q", cfg.MetricsAddr, "127.0.0.1:9464")
	}
	if cfg.SoundPlayer != "paplay" || cfg.CriticalSound != "/usr/share/sounds/alarm.wav" || cfg.StartupSound != defaultStartupSound {
		t.Fatalf("sound settings = %q %q %q", cfg.SoundPlayer, cfg.CriticalSound, cfg.StartupSound)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
history_size = 0
dropped_threshold = -1
region = "   "
log_path = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HistorySize != defaultHistorySize || cfg.DroppedThreshold != defaultDroppedThreshold {
		t.Fatalf("HistorySize/DroppedThreshold = %d/%d, want defaults", cfg.HistorySize, cfg.DroppedThreshold)
	}
	if cfg.Region != defaultRegion {
		t.Fatalf("Region = %q, want %q", cfg.Region, defaultRegion)
	}
	wantLogPath, err := expandPath(defaultLogPath)
	if err != nil {
		t.Fatalf("expandPath(defaultLogPath) returned error: %v", err)
	}
	if cfg.LogPath != wantLogPath {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, wantLogPath)
	}
	if cfg.Interval != defaultIntervalSeconds*time.Second {
		t.Fatalf("Interval = %v, want default", cfg.Interval)
	}
}

func TestLoad_ZeroIntervalIsKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("interval_seconds = 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Interval != 0 {
		t.Fatalf("Interval = %v, want 0", cfg.Interval)
	}
}

func TestLoad_InvalidConfigFails(t *testing.T) {
	tests := map[string]string{
		"bad toml":          `interval_seconds = [`,
		"negative interval": `interval_seconds = -5`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want parse error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
			}
		})
	}
}

func TestLoad_EnvOverridesDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("history_size = 4\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HistorySize != 4 {
		t.Fatalf("HistorySize = %d, want 4 from %s", cfg.HistorySize, EnvConfigPath)
	}
}

func TestLoadCredentials_ReadsEnvFile(t *testing.T) {
	unsetEnv(t, EnvAccount)
	unsetEnv(t, EnvPassword)

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("ACCOUNT=someone@example.com\nPASSWORD=hunter2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	creds, err := LoadCredentials(envFile)
	if err != nil {
		t.Fatalf("LoadCredentials returned error: %v", err)
	}
	if creds.Account != "someone@example.com" || creds.Password != "hunter2" {
		t.Fatalf("credentials = %+v", creds)
	}
}

func TestLoadCredentials_EnvironmentWins(t *testing.T) {
	t.Setenv(EnvAccount, "from-env")
	unsetEnv(t, EnvPassword)

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("ACCOUNT=from-file\nPASSWORD=secret\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	creds, err := LoadCredentials(envFile)
	if err != nil {
		t.Fatalf("LoadCredentials returned error: %v", err)
	}
	if creds.Account != "from-env" || creds.Password != "secret" {
		t.Fatalf("credentials = %+v, want account from env and password from file", creds)
	}
}

func TestLoadCredentials_MissingFileIsFine(t *testing.T) {
	unsetEnv(t, EnvAccount)
	unsetEnv(t, EnvPassword)

	creds, err := LoadCredentials(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("LoadCredentials returned error: %v", err)
	}
	if creds != (Credentials{}) {
		t.Fatalf("credentials = %+v, want empty", creds)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Unsetenv(%s): %v", key, err)
	}
}
