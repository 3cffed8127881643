package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func clearAIEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"FOCUSFLOW_AI_API_KEY", "GEMINI_API_KEY", "API_KEY", "FOCUSFLOW_STORAGE", "FOCUSFLOW_LOG_FILE"} {
		t.Setenv(name, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMotivationWithoutKeyUsesFallback(t *testing.T) {
	clearAIEnv(t)
	out, err := execute(t, "motivation", "--storage", "memory", "--data", t.TempDir())
	if err != nil {
		t.Fatalf("motivation: %v", err)
	}
	if strings.TrimSpace(out) != "Stay focused and keep moving forward!" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestSummaryCountsSeedData(t *testing.T) {
	clearAIEnv(t)
	out, err := execute(t, "summary", "--storage", "file", "--data", t.TempDir())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(out, "completed this week: 1, habits kept: 0") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestUnknownStorageFails(t *testing.T) {
	clearAIEnv(t)
	_, err := execute(t, "motivation", "--storage", "postgres", "--env-file", "", "--data", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "unknown storage driver") {
		t.Fatalf("expected driver error, got %v", err)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "focusflow dev") {
		t.Fatalf("unexpected version output: %q", out)
	}
}
