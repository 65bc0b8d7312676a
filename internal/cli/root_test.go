package cli

import (
	"strings"
	"testing"
)

func TestVerboseFlag_LogsToStderr(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, stderr, err := runCommandStderr(t, "list", "--verbose", "--tag", "claude")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if strings.Contains(out, "level=") {
		t.Errorf("log records leaked into stdout:\n%s", out)
	}
	if !strings.Contains(stderr, "filtered examples") {
		t.Errorf("expected debug record on stderr, got:\n%s", stderr)
	}
}

func TestQuietByDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, stderr, err := runCommandStderr(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if stderr != "" {
		t.Errorf("expected no stderr output, got:\n%s", stderr)
	}
}
