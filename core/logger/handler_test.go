package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"log/slog"
)

func TestStructuredHandlerKVOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	aw := newAsyncWriter([]io.Writer{buf}, 1024)
	handler := newStructuredHandler(handlerConfig{
		level:    slog.LevelInfo,
		writer:   aw,
		format:   formatKV,
		keyOrder: append([]string(nil), defaultKeyOrder...),
	})
	ctx := WithRID(Background(), "rid-123")
	ctx = WithUpdateMeta(ctx, 42, 7, 9)

	log := slog.New(handler).With("component", "app")
	LogEvent(ctx, log, slog.LevelInfo, "test.event",
		slog.String("status", "ok"),
		slog.String("cause", "unit"),
	)
	if err := aw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := aw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log line")
	}
	tokens := strings.Split(line, " ")
	if len(tokens) < 6 {
		t.Fatalf("unexpected token count: %d (%s)", len(tokens), line)
	}
	expected := []string{"ts=", "level=INFO", "component=app", "event=test.event", "status=ok", "rid=rid-123"}
	for i, prefix := range expected {
		if !strings.HasPrefix(tokens[i], prefix) {
			t.Fatalf("token %d = %s, expected prefix %s", i, tokens[i], prefix)
		}
	}
}

func TestStructuredHandlerJSONOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	aw := newAsyncWriter([]io.Writer{buf}, 1024)
	handler := newStructuredHandler(handlerConfig{
		level:    slog.LevelInfo,
		writer:   aw,
		format:   formatJSON,
		keyOrder: append([]string(nil), defaultKeyOrder...),
	})

	log := slog.New(handler).With("component", "db")
	LogEvent(Background(), log, slog.LevelInfo, "db.connect",
		slog.String("driver", "sqlite"),
		slog.String("status", "ok"),
	)
	if err := aw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := aw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, `{"ts":`) {
		t.Fatalf("expected ts first, got: %s", line)
	}
	tsIdx := strings.Index(line, `"ts":`)
	levelIdx := strings.Index(line, `"level":`)
	componentIdx := strings.Index(line, `"component":"db"`)
	eventIdx := strings.Index(line, `"event":"db.connect"`)
	statusIdx := strings.Index(line, `"status":"ok"`)
	if levelIdx < tsIdx || componentIdx < levelIdx || eventIdx < componentIdx || statusIdx < eventIdx {
		t.Fatalf("unexpected key order: %s", line)
	}
}

func TestCompactRID(t *testing.T) {
	if got := CompactRID("100:200:300"); got != "2s.5k.8c" {
		t.Fatalf("CompactRID = %s", got)
	}
	if got := CompactRID("not-a-rid"); got != "not-a-rid" {
		t.Fatalf("CompactRID passthrough = %s", got)
	}
}

func TestSanitizeLimit(t *testing.T) {
	in := "hello\x00world\x1b[0m"
	if got := Sanitize(in); got != "helloworld[0m" {
		t.Fatalf("Sanitize = %q", got)
	}
	if got := SanitizeLimit("русский текст", 7); got != "русский" {
		t.Fatalf("SanitizeLimit = %q", got)
	}
}
