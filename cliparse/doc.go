// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8502)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - Timezone: IANA zone for vote timestamps (default: Asia/Tokyo)
  - LegacyDataDir: directory with legacy CSV data to import on first boot
  - AllowRevote: disable the one-ballot-per-voter rule

# CLI Flags

	-p            Server port
	-d            Database URL or SQLite file path
	-t            Database type
	-tz           Timezone
	-legacy-dir   Legacy CSV directory
	-allow-revote Allow repeat voting

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	APP_TIMEZONE    → -tz
	LEGACY_DATA_DIR → -legacy-dir
	ALLOW_REVOTE=1  → -allow-revote

CLI flags take precedence over environment variables. DATABASE_URL is only
required for postgres; sqlite defaults to a local rankvote.db file.
*/
package cliparse
