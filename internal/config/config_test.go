package config

import (
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	t.Setenv("SITESYNC_TEST_STR", "value")
	if got := getenv("SITESYNC_TEST_STR", "def"); got != "value" {
		t.Errorf("getenv() = %q, want value", got)
	}
	if got := getenv("SITESYNC_TEST_UNSET", "def"); got != "def" {
		t.Errorf("getenv() fallback = %q, want def", got)
	}
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("SITESYNC_TEST_INT", "42")
	if got := getenvInt("SITESYNC_TEST_INT", 7); got != 42 {
		t.Errorf("getenvInt() = %d, want 42", got)
	}
	t.Setenv("SITESYNC_TEST_INT", "not-a-number")
	if got := getenvInt("SITESYNC_TEST_INT", 7); got != 7 {
		t.Errorf("getenvInt() on garbage = %d, want fallback 7", got)
	}
}

func TestMustBool(t *testing.T) {
	t.Setenv("SITESYNC_TEST_BOOL", "false")
	if got := mustBool("SITESYNC_TEST_BOOL", true); got {
		t.Error("mustBool() = true, want false")
	}
	t.Setenv("SITESYNC_TEST_BOOL", "maybe")
	if got := mustBool("SITESYNC_TEST_BOOL", true); !got {
		t.Error("mustBool() on garbage should fall back to default")
	}
}

func TestMustDuration(t *testing.T) {
	t.Setenv("SITESYNC_TEST_DUR", "150ms")
	if got := mustDuration("SITESYNC_TEST_DUR", time.Second); got != 150*time.Millisecond {
		t.Errorf("mustDuration() = %v, want 150ms", got)
	}
	t.Setenv("SITESYNC_TEST_DUR", "soon")
	if got := mustDuration("SITESYNC_TEST_DUR", time.Second); got != time.Second {
		t.Errorf("mustDuration() on garbage = %v, want fallback 1s", got)
	}
}

func TestRequireEnvPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("requireEnv() on unset variable should panic")
		}
	}()
	requireEnv("SITESYNC_TEST_DEFINITELY_UNSET")
}
