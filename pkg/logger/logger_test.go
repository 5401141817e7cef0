package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	decoder := json.NewDecoder(buf)
	for decoder.More() {
		entry := map[string]any{}
		if err := decoder.Decode(&entry); err != nil {
			t.Fatalf("decode log line: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerCarriesContextFields(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-123")
	ctx = logg.WithMemberID(ctx, "M001")
	logg.Info(ctx, "member.updated")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry["service"] != "test" {
		t.Fatalf("missing service field: %v", entry)
	}
	if entry["request_id"] != "req-123" || entry["member_id"] != "M001" {
		t.Fatalf("missing context fields: %v", entry)
	}
	if entry["message"] != "member.updated" {
		t.Fatalf("unexpected message: %v", entry)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Level: zerolog.WarnLevel, Output: &buf})

	logg.Info(context.Background(), "hidden")
	logg.Warn(context.Background(), "shown")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["message"] != "shown" {
		t.Fatalf("expected only the warn entry, got %v", entries)
	}
}

func TestErrorIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	logg.Error(context.Background(), "save.failed", errors.New("disk full"))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0]["error"] != "disk full" {
		t.Fatalf("missing error field: %v", entries[0])
	}
	if stack, _ := entries[0]["stack"].(string); stack == "" {
		t.Fatal("expected stack trace on error entries")
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != zerolog.DebugLevel {
		t.Fatal("debug should parse")
	}
	if ParseLevel(" WARN ") != zerolog.WarnLevel {
		t.Fatal("level parsing should trim and lowercase")
	}
	if ParseLevel("nonsense") != zerolog.InfoLevel {
		t.Fatal("unknown levels fall back to info")
	}
}
