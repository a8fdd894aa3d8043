package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Common holds the seats.aero API parameters shared by every entrypoint.
type Common struct {
	SeatsBaseURL string
	SeatsAPIKey  string
	SeatsTimeout time.Duration
}

// CLI holds defaults for the command-line alert generator.
type CLI struct {
	Common
	InputFile         string
	Days              int
	Cabin             string
	MaxStalenessHours int
}

// API describes HTTP-layer configuration.
type API struct {
	Common
	BindAddr          string
	SearchTimeout     time.Duration
	DedupeCapacity    int
	DedupeTTL         time.Duration
	DefaultDays       int
	MaxStalenessHours int
}

// RequireAPIKey fails with setup instructions when no key is configured.
func (c Common) RequireAPIKey() error {
	if c.SeatsAPIKey != "" {
		return nil
	}
	return fmt.Errorf("SEATS_API_KEY is not set: add it to your environment or to a .env file in the project root")
}

func loadCommon() Common {
	// Optional .env in the working directory; real env vars win.
	_ = godotenv.Load()

	return Common{
		SeatsBaseURL: getEnv("SEATS_BASE_URL", "https://seats.aero/partnerapi"),
		SeatsAPIKey:  getEnv("SEATS_API_KEY", ""),
		SeatsTimeout: getDuration("SEATS_TIMEOUT", "30s"),
	}
}

// LoadCLI builds the CLI config from environment variables.
func LoadCLI() (*CLI, error) {
	c := &CLI{
		Common:            loadCommon(),
		InputFile:         getEnv("INPUT_FILE", "input.txt"),
		Days:              getInt("SEARCH_DAYS", 60),
		Cabin:             getEnv("SEARCH_CABIN", "business"),
		MaxStalenessHours: getInt("MAX_STALENESS_HOURS", 48),
	}

	if c.Days <= 0 || c.Days > 365 {
		return nil, fmt.Errorf("SEARCH_DAYS must be between 1 and 365")
	}
	if c.MaxStalenessHours < 0 {
		return nil, fmt.Errorf("MAX_STALENESS_HOURS cannot be negative")
	}

	return c, nil
}

// LoadAPI builds the HTTP service config from environment variables.
func LoadAPI() (*API, error) {
	c := &API{
		Common:            loadCommon(),
		BindAddr:          getEnv("API_BIND_ADDR", "0.0.0.0:8080"),
		SearchTimeout:     getDuration("API_SEARCH_TIMEOUT", "45s"),
		DedupeCapacity:    getInt("API_DEDUPE_CAPACITY", 10000),
		DedupeTTL:         getDuration("API_DEDUPE_TTL", "6h"),
		DefaultDays:       getInt("SEARCH_DAYS", 60),
		MaxStalenessHours: getInt("MAX_STALENESS_HOURS", 48),
	}

	if err := c.RequireAPIKey(); err != nil {
		return nil, err
	}
	if c.DedupeCapacity <= 0 {
		return nil, fmt.Errorf("API_DEDUPE_CAPACITY must be positive")
	}
	if c.DefaultDays <= 0 || c.DefaultDays > 365 {
		return nil, fmt.Errorf("SEARCH_DAYS must be between 1 and 365")
	}
	if c.SearchTimeout <= 0 {
		return nil, fmt.Errorf("API_SEARCH_TIMEOUT must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		fd, ferr := time.ParseDuration(fallback)
		if ferr != nil {
			panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, ferr))
		}
		return fd
	}
	return d
}
