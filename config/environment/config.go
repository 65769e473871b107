package environment

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendSheets    = "sheets"
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	LogPretty   bool
	CORSOrigins []string
	Store       StoreConfig
	Line        LineConfig
	Admin       AdminConfig
}

type StoreConfig struct {
	Backend string

	// Google Sheets
	GoogleCredentials string // base64 encoded service account json
	SpreadsheetID     string
	MenuRange         string
	IntervalCell      string
	OpenCell          string
	AdminCell         string

	// Firestore
	FirebaseCredentials string // base64 encoded service account json
	FirebaseProjectID   string
}

type LineConfig struct {
	ChannelAccessToken string
	ChannelSecret      string
	UserID             string // push recipient for new orders
	APIBaseURL         string
}

type AdminConfig struct {
	JWTSecret string // empty disables auth on settings writes
}

// Load reads the process environment, after merging a .env file when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "10000"),
		GinMode:     getEnv("GIN_MODE", "release"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPretty:   getBool("LOG_PRETTY", false),
		CORSOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		Store: StoreConfig{
			Backend:             strings.ToLower(getEnv("STORE_BACKEND", BackendSheets)),
			GoogleCredentials:   getEnv("GOOGLE_CREDENTIALS_BASE64", ""),
			SpreadsheetID:       getEnv("SPREADSHEET_ID", ""),
			MenuRange:           getEnv("MENU_RANGE", "Menu!A:E"),
			IntervalCell:        getEnv("INTERVAL_CELL", "Settings!B1"),
			OpenCell:            getEnv("OPEN_CELL", "Settings!B2"),
			AdminCell:           getEnv("ADMIN_CELL", "Settings!B3"),
			FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS_BASE64", ""),
			FirebaseProjectID:   getEnv("FIREBASE_PROJECT_ID", ""),
		},
		Line: LineConfig{
			ChannelAccessToken: getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),
			ChannelSecret:      getEnv("LINE_CHANNEL_SECRET", ""),
			UserID:             getEnv("LINE_USER_ID", ""),
			APIBaseURL:         strings.TrimRight(getEnv("LINE_API_BASE_URL", "https://api.line.me"), "/"),
		},
		Admin: AdminConfig{
			JWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
		},
	}
}

// Validate reports every required variable that is missing for the selected store backend.
func (c *Config) Validate() error {
	var missing []string
	need := func(key, value string) {
		if value == "" {
			missing = append(missing, key)
		}
	}

	need("LINE_CHANNEL_ACCESS_TOKEN", c.Line.ChannelAccessToken)
	need("LINE_CHANNEL_SECRET", c.Line.ChannelSecret)
	need("LINE_USER_ID", c.Line.UserID)

	switch c.Store.Backend {
	case BackendSheets:
		need("GOOGLE_CREDENTIALS_BASE64", c.Store.GoogleCredentials)
		need("SPREADSHEET_ID", c.Store.SpreadsheetID)
	case BackendFirestore:
		need("FIREBASE_CREDENTIALS_BASE64", c.Store.FirebaseCredentials)
		need("FIREBASE_PROJECT_ID", c.Store.FirebaseProjectID)
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
