package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvFromNamedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutdata.env")
	if err := os.WriteFile(path, []byte("CUTDATA_ENV_PROBE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(envFileVar, path)
	t.Setenv("CUTDATA_ENV_PROBE", "")
	os.Unsetenv("CUTDATA_ENV_PROBE")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("loading env file: %v", err)
	}
	if got := os.Getenv("CUTDATA_ENV_PROBE"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
}

func TestLoadDotEnvNamedFileMustExist(t *testing.T) {
	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "missing.env"))

	if err := loadDotEnv(); err == nil {
		t.Fatal("expected an error for a missing named env file")
	}
}

func TestLoadDotEnvWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envFileVar, "")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("expected no error without .env, got %v", err)
	}
}
