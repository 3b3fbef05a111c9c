package config

import (
	"os"
	"testing"
)

func TestReadEnvConfigDefaults(t *testing.T) {
	for _, key := range []string{"MATCH_LOG_PATH", "LOGGER_LEVEL", "LOGGER_FILE", "TEAM_NAME", "HISTORY_LIMIT", "COMMENTARY_SEED"} {
		// Setenv restores the original value on cleanup.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Config{}
	if err := ReadEnvConfig(&cfg); err != nil {
		t.Fatalf("ReadEnvConfig: %v", err)
	}
	if cfg.Repo.Path != "matches.txt" {
		t.Errorf("Repo.Path = %q", cfg.Repo.Path)
	}
	if cfg.LogLevel != "warn" || cfg.HistoryLen != 5 || cfg.CommentarySeed != 0 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestReadEnvConfigOverrides(t *testing.T) {
	t.Setenv("MATCH_LOG_PATH", "/tmp/sl.txt")
	t.Setenv("LOGGER_LEVEL", "debug")
	t.Setenv("HISTORY_LIMIT", "10")
	t.Setenv("COMMENTARY_SEED", "7")

	cfg := Config{}
	if err := ReadEnvConfig(&cfg); err != nil {
		t.Fatalf("ReadEnvConfig: %v", err)
	}
	if cfg.Repo.Path != "/tmp/sl.txt" || cfg.LogLevel != "debug" || cfg.HistoryLen != 10 || cfg.CommentarySeed != 7 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestReadEnvConfigBadNumber(t *testing.T) {
	t.Setenv("HISTORY_LIMIT", "five")

	cfg := Config{}
	if err := ReadEnvConfig(&cfg); err == nil {
		t.Error("expected parse error for HISTORY_LIMIT=five")
	}
}
