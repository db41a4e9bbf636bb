// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"testing"
)

func TestDriverName(t *testing.T) {
	testCases := []struct {
		dbType   string
		expected string
		wantErr  bool
	}{
		{TypeSQLite, "sqlite", false},
		{TypePostgres, "postgres", false},
		{"mysql", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.dbType, func(t *testing.T) {
			got, err := DriverName(tc.dbType)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tc.dbType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Expected driver '%s', got '%s'", tc.expected, got)
			}
		})
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	ctx := context.Background()

	conn, err := Open(ctx, TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(ctx, conn); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	var count int
	if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM poll").Scan(&count); err != nil {
		t.Fatalf("Failed to query poll table: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty poll table, got %d rows", count)
	}
}

func TestCreateSchema_RejectsNegativeVotes(t *testing.T) {
	ctx := context.Background()

	conn, err := Open(ctx, TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(ctx, conn); err != nil {
		t.Fatal(err)
	}

	_, err = conn.ExecContext(ctx, `
		INSERT INTO poll (id, title, option1_text, option2_text, votes1, votes2)
		VALUES ('x', 'T', 'A', 'B', -1, 0)
	`)
	if err == nil {
		t.Error("Expected CHECK constraint to reject negative votes")
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open(context.Background(), "oracle", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}
