package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nFOO_A=plain\nexport FOO_B=\"quoted\"\nFOO_C=already-set\nnot a pair\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FOO_C", "from-env")
	t.Setenv("FOO_A", "")
	t.Setenv("FOO_B", "")
	os.Unsetenv("FOO_A")
	os.Unsetenv("FOO_B")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := os.Getenv("FOO_A"); got != "plain" {
		t.Errorf("expected plain value, got %q", got)
	}
	if got := os.Getenv("FOO_B"); got != "quoted" {
		t.Errorf("expected quotes stripped and export prefix ignored, got %q", got)
	}
	if got := os.Getenv("FOO_C"); got != "from-env" {
		t.Errorf("environment should win over the file, got %q", got)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
