// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Connecting

Open picks the driver from the database type and pings before returning:

	conn, err := db.Open(ctx, "sqlite", "polls.db")
	conn, err := db.Open(ctx, "postgres", "postgres://...")

SQLite uses modernc.org/sqlite (pure Go, no cgo). PostgreSQL uses lib/pq.

# Schema Creation

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - poll: id, title, option1_text, option2_text, votes1, votes2

Vote counters are constrained to be non-negative.
*/
package db
