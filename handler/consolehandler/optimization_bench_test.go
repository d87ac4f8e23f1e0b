package consolehandler

import (
	"io"
	"testing"
	"time"

	"github.com/philipp01105/logstream/core"
	"github.com/philipp01105/logstream/formatter"
)

// BenchmarkConsoleHandler_HandleLog benchmarks the handler-owned buffer path
func BenchmarkConsoleHandler_HandleLog(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	now := time.Now()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.HandleLog(now, core.InfoLevel, "benchmark message", core.CallerInfo{})
	}
}

// BenchmarkConsoleHandler_Parallel benchmarks contended writes
func BenchmarkConsoleHandler_Parallel(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	defer h.Close()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h.HandleLog(time.Now(), core.InfoLevel, "benchmark message", core.CallerInfo{})
		}
	})
}
