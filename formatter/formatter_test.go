package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/logstream/core"
)

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026-02-18T13:00:00Z [INFO] test message\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestTextFormatter_Newlines(t *testing.T) {
	f := NewTextFormatter(Config{})
	ts := time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"no newline", "hello", "2026-02-18T13:00:00Z [WARN] hello\n"},
		{"trailing newline kept once", "hello\n", "2026-02-18T13:00:00Z [WARN] hello\n"},
		{"multi line", "a\nb", "2026-02-18T13:00:00Z [WARN] a\nb\n"},
		{"crlf", "hello\r\n", "2026-02-18T13:00:00Z [WARN] hello\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f.FormatEntry(&core.Entry{Time: ts, Level: core.WarnLevel, Message: tt.msg}, &buf)
			if buf.String() != tt.want {
				t.Errorf("FormatEntry() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestTextFormatter_UnknownLevel(t *testing.T) {
	f := NewTextFormatter(Config{})
	out, _ := f.Format(&core.Entry{Time: time.Now(), Level: core.Level(99), Message: "x"})
	if !strings.Contains(string(out), "[UNKNOWN]") {
		t.Errorf("Expected '[UNKNOWN]' in output, got: %s", out)
	}
}

func TestTextFormatter_WithCaller(t *testing.T) {
	f := NewTextFormatter(Config{IncludeCaller: true})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Caller: core.CallerInfo{
			File:      "/path/to/file.go",
			ShortFile: "file.go",
			Line:      123,
			Function:  "main.main",
			Defined:   true,
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "[file.go:123] test") {
		t.Errorf("Expected caller info in output, got: %s", output)
	}
}

func TestTextFormatter_FormatTo(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: "15:04"})
	var buf bytes.Buffer

	err := f.FormatTo(&core.Entry{
		Time:    time.Date(2026, 2, 18, 9, 30, 0, 0, time.UTC),
		Level:   core.ErrorLevel,
		Message: "failed",
	}, &buf)
	if err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if want := "09:30 [ERROR] failed\n"; buf.String() != want {
		t.Errorf("FormatTo() wrote %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatter_Basic(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Verify it's valid JSON
	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["level"] != "INFO" {
		t.Errorf("Expected level 'INFO', got: %v", data["level"])
	}
	if data["message"] != "test message" {
		t.Errorf("Expected message 'test message', got: %v", data["message"])
	}
	if data["time"] != "2026-02-18T13:00:00Z" {
		t.Errorf("Expected time '2026-02-18T13:00:00Z', got: %v", data["time"])
	}
}

func TestJSONFormatter_Escaping(t *testing.T) {
	f := NewJSONFormatter(Config{})

	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"newlines", "line1\nline2\r\n", "line1\nline2\r\n"},
		{"quotes and backslash", `say "hi" \o/`, `say "hi" \o/`},
		{"control byte", "bell\x07", "bell\x07"},
		{"tab", "a\tb", "a\tb"},
		{"unicode", "grüße ✓", "grüße ✓"},
		{"invalid utf8", "ok\xffok", "ok\ufffdok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.Format(&core.Entry{Time: time.Now(), Level: core.WarnLevel, Message: tt.msg})
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			var data map[string]interface{}
			if err := json.Unmarshal(result, &data); err != nil {
				t.Fatalf("Invalid JSON %q: %v", result, err)
			}
			if data["message"] != tt.want {
				t.Errorf("message = %q, want %q", data["message"], tt.want)
			}
		})
	}
}

func TestJSONFormatter_WithCaller(t *testing.T) {
	f := NewJSONFormatter(Config{IncludeCaller: true})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Caller: core.CallerInfo{
			File:      "/path/to/file.go",
			ShortFile: "file.go",
			Line:      123,
			Function:  "main.main",
			Defined:   true,
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	caller, ok := data["caller"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected caller object in JSON")
	}

	if caller["file"] != "file.go" {
		t.Errorf("Expected file='file.go', got: %v", caller["file"])
	}
	if caller["line"] != float64(123) {
		t.Errorf("Expected line=123, got: %v", caller["line"])
	}
	if caller["function"] != "main.main" {
		t.Errorf("Expected function='main.main', got: %v", caller["function"])
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test message\nwith a second line\n",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test message\nwith a second line\n",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}
