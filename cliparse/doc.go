// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file or PostgreSQL connection string (default: polls.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: text or json (default: text)
  - EnvFile: dotenv file loaded before env fallbacks (default: .env)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-log-level   Log level
	-log-format  Log format
	-env-file    Dotenv file ("" disables)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_LEVEL     → -log-level
	LOG_FORMAT    → -log-format

CLI flags take precedence over environment variables. Variables from the
dotenv file never override ones already set in the environment. A missing
dotenv file is not an error.

# Logging

	slog.SetDefault(cliparse.NewLogger(cfg, os.Stderr))
*/
package cliparse
