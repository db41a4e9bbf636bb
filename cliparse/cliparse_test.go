// cliparse/cliparse_test.go
package cliparse

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var configEnv = []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "LOG_LEVEL", "LOG_FORMAT"}

// clearConfigEnv makes config variables absent for the test.
// t.Setenv restores the original values on cleanup.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "polls.db" {
		t.Errorf("expected default database polls.db, got %s", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("expected info/text logging, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected file:test.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "PORT=7000\nDATABASE_URL=from-dotenv.db\nLOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 7000 {
		t.Errorf("expected port from dotenv 7000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "from-dotenv.db" {
		t.Errorf("expected database from dotenv, got %s", cfg.DatabaseURL)
	}
	// Already-set environment is not overridden
	if cfg.LogLevel != "warn" {
		t.Errorf("expected env LOG_LEVEL warn to win, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	clearConfigEnv(t)

	missing := filepath.Join(t.TempDir(), "nope.env")
	if _, err := ParseFlags([]string{"-env-file", missing}); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port env", map[string]string{"PORT": "abc"}, nil},
		{"bad database type", nil, []string{"-t", "mysql"}},
		{"bad log level", nil, []string{"-log-level", "loud"}},
		{"bad log format", nil, []string{"-log-format", "xml"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			args := append([]string{"-env-file", ""}, tc.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "poll_id", "abc")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("expected one JSON log line, got %q: %v", out, err)
	}
	if entry["msg"] != "shown" || entry["poll_id"] != "abc" {
		t.Errorf("unexpected log entry: %v", entry)
	}
}
