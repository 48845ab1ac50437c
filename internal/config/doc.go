// Package config loads the bgcheck configuration file and credentials.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use $BGCHECK_CONFIG when set
//  3. Otherwise, use ~/.config/bgcheck/config.toml (default)
//  4. If the config file doesn't exist, fall back to defaults
//  5. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	interval_seconds  = 300
//	history_size      = 6
//	dropped_threshold = 2
//	region            = "ous"          # us, ous or jp
//	env_file          = ".env"
//	log_path          = "~/.local/state/bgcheck/bgcheck.log"
//	log_level         = "info"
//	log_format        = "console"      # or json
//	metrics_addr      = ""             # e.g. "127.0.0.1:9464"
//	sound_player      = ""             # e.g. "paplay"; empty rings the terminal bell
//	critical_sound    = "crit_stop.wav"
//	startup_sound     = "tada.wav"
//
// Every field is optional. Tilde expansion is performed for paths.
//
// # Credentials
//
// The Dexcom Share account is read from the ACCOUNT and PASSWORD environment
// variables. LoadCredentials first seeds the environment from env_file using
// godotenv; variables that are already set win and a missing file is ignored.
// Credentials are not validated here. A live session rejects empty or wrong
// credentials on its first fetch.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and negative intervals
package config
