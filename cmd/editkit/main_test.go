package main

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("EDITKIT_LOG_LEVEL", "debug")
	if got := envOrDefault("EDITKIT_LOG_LEVEL", "info"); got != "debug" {
		t.Errorf("envOrDefault() = %q, want %q", got, "debug")
	}
}

func TestEnvOrDefaultEmpty(t *testing.T) {
	t.Setenv("EDITKIT_LOG_LEVEL", "")
	if got := envOrDefault("EDITKIT_LOG_LEVEL", "info"); got != "info" {
		t.Errorf("envOrDefault() = %q, want %q", got, "info")
	}
}
