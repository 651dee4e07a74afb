package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConditionalSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		showLevels []slog.Level
		wantSource bool
	}{
		{
			name:       "warn level shows source when configured",
			level:      slog.LevelWarn,
			showLevels: []slog.Level{slog.LevelWarn, slog.LevelError},
			wantSource: true,
		},
		{
			name:       "error level shows source when configured",
			level:      slog.LevelError,
			showLevels: []slog.Level{slog.LevelWarn, slog.LevelError},
			wantSource: true,
		},
		{
			name:       "info level omits source when not configured",
			level:      slog.LevelInfo,
			showLevels: []slog.Level{slog.LevelWarn, slog.LevelError},
			wantSource: false,
		},
		{
			name:       "debug level omits source when not configured",
			level:      slog.LevelDebug,
			showLevels: []slog.Level{slog.LevelWarn, slog.LevelError},
			wantSource: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			})
			handler := NewConditionalSourceHandler(base, tt.showLevels...)
			log := slog.New(handler)

			log.Log(context.Background(), tt.level, "test message")

			var record map[string]any
			if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
				t.Fatalf("failed to parse log output: %v", err)
			}

			_, hasSource := record[slog.SourceKey]
			if hasSource != tt.wantSource {
				t.Errorf("source present = %v, want %v (output: %s)", hasSource, tt.wantSource, buf.String())
			}
		})
	}
}

func TestConditionalSourceHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	handler := NewConditionalSourceHandler(base, slog.LevelError)

	withAttrs := handler.WithAttrs([]slog.Attr{slog.String("component", "scheduler")})
	log := slog.New(withAttrs)
	log.Info("hello")

	if !strings.Contains(buf.String(), `"component":"scheduler"`) {
		t.Errorf("expected component attribute in output, got %s", buf.String())
	}
}

func TestConditionalSourceHandlerEnabled(t *testing.T) {
	base := slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	handler := NewConditionalSourceHandler(base, slog.LevelError)

	ctx := context.Background()
	if handler.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug should be disabled when base level is warn")
	}
	if !handler.Enabled(ctx, slog.LevelWarn) {
		t.Error("warn should be enabled when base level is warn")
	}
}
