package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(buf, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug message written without verbose: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("expected output to contain 'shown', got: %s", output)
	}

	buf.Reset()
	log = New(buf, true)
	log.Debug().Msg("hidden")
	if !strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug message not written in verbose mode: %s", buf.String())
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Int("id", 3).Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") || !strings.Contains(output, `"id":3`) {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	retrieved := FromContext(ctx)
	retrieved.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("Expected log output from retrieved logger")
	}
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("default logger level = %v, want disabled", log.GetLevel())
	}
}
