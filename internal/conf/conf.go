package conf

import (
	"os"
	"path/filepath"
	"strconv"
)

// defaultHistoryLimit caps the chat history listing
const defaultHistoryLimit = 50

// Config represents application configuration
type Config struct {
	// DataDir holds the database and logs
	DataDir string

	// DBPath is the sqlite database file
	DBPath string

	// HistoryLimit is the default message history page size
	HistoryLimit int

	// RepliesPath optionally points at a replies.yaml overriding composer copy
	RepliesPath string

	// Replies is the loaded composer copy
	Replies *Replies

	// Debug raises log verbosity
	Debug bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	dataDir := os.Getenv("WELLNESS_DATA_DIR")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".wellness-chat")
	}

	dbPath := os.Getenv("WELLNESS_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "wellness.db")
	}

	historyLimit := defaultHistoryLimit
	if val := os.Getenv("WELLNESS_HISTORY_LIMIT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			historyLimit = parsed
		}
	}

	return &Config{
		DataDir:      dataDir,
		DBPath:       dbPath,
		HistoryLimit: historyLimit,
		RepliesPath:  os.Getenv("WELLNESS_REPLIES_PATH"),
		Debug:        os.Getenv("WELLNESS_DEBUG") == "true" || os.Getenv("WELLNESS_DEBUG") == "1",
	}
}
