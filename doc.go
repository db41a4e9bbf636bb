// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the twopoll server.

twopoll is a small two-option polling service: create a poll with two
options, list polls, fetch or delete one, and vote for either option.

# Starting the Server

With no configuration the server stores polls in polls.db (SQLite) in the
working directory and listens on port 3318:

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

Settings can also come from the environment or a .env file.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: polls.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format)

# Architecture

  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - store: Poll persistence over database/sql
  - views: Embedded HTML templates
  - middleware: Logging, JSON and text helpers
  - models: Poll and payload types
  - db: Connection opening and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
