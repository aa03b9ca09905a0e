package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"off", LevelNone},
		{"loud", LevelInfo},
	}
	for _, tt := range tests {
		if got := LevelFromString(tt.in); got != tt.want {
			t.Errorf("LevelFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "WARN: shown 3") || !strings.Contains(out, "ERROR: shown 4") {
		t.Errorf("missing warn/error lines in %q", out)
	}
}

func TestWithPrefixesComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug).With("sim").With("trigger")
	l.Infof("note %s", "C4")

	if !strings.Contains(buf.String(), "INFO: sim: trigger: note C4") {
		t.Errorf("unexpected line %q", buf.String())
	}
}

func TestNopAndNilAreSilent(t *testing.T) {
	Nop().Errorf("nothing")
	var l *Logger
	l.Errorf("nothing either")
}
