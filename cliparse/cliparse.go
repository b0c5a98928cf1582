package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	Timezone      string
	LegacyDataDir string
	AllowRevote   bool
}

// ParseFlags reads configuration from CLI flags with environment fallback.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("rankvote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Timezone, "tz", "", "IANA zone for vote timestamps")
	fs.StringVar(&cfg.LegacyDataDir, "legacy-dir", "", "Directory with legacy CSV data to import")
	fs.BoolVar(&cfg.AllowRevote, "allow-revote", false, "Allow multiple ballots per voter identity")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8502 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "rankvote.db" // local file default for sqlite
	}

	if cfg.Timezone == "" {
		cfg.Timezone = os.Getenv("APP_TIMEZONE")
		if cfg.Timezone == "" {
			cfg.Timezone = "Asia/Tokyo"
		}
	}

	if cfg.LegacyDataDir == "" {
		cfg.LegacyDataDir = os.Getenv("LEGACY_DATA_DIR")
	}

	if !cfg.AllowRevote {
		cfg.AllowRevote = os.Getenv("ALLOW_REVOTE") == "1"
	}

	return cfg, nil
}
