package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"go.trai.ch/pin/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Info("resolving packages")
	log.Warn("lockfile drifted")

	out := buf.String()
	if !strings.Contains(out, "resolving packages") || !strings.Contains(out, "INFO") {
		t.Errorf("expected info line, got:\n%s", out)
	}
	if !strings.Contains(out, "lockfile drifted") || !strings.Contains(out, "WARN") {
		t.Errorf("expected warn line, got:\n%s", out)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Error(zerr.Wrap(zerr.New("registry unavailable"), "failed to resolve fmt"))

	out := buf.String()
	if !strings.Contains(out, "failed to resolve fmt") {
		t.Errorf("expected wrapped message, got:\n%s", out)
	}
	if !strings.Contains(out, "registry unavailable") {
		t.Errorf("expected cause in output, got:\n%s", out)
	}
}

func TestLogger_NilError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Error(nil)
	if buf.Len() != 0 {
		t.Errorf("nil error must not log, got:\n%s", buf.String())
	}
}
