package core

import (
	"strings"
	"testing"
	"time"
)

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}
	if e1.Time.IsZero() {
		t.Error("Expected GetEntry() to stamp the entry time")
	}

	e1.Message = strings.Repeat("x", 4096)
	e1.Level = WarnLevel
	e1.Caller = GetCaller(0)

	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}

	// Verify it's clean
	if e2.Message != "" {
		t.Errorf("Expected empty message after pool reset, got %d bytes", len(e2.Message))
	}
	if e2.Caller.Defined {
		t.Error("Expected caller to be cleared after pool reset")
	}
}

func TestEntryReset(t *testing.T) {
	e := Entry{Time: time.Now(), Level: ErrorLevel, Message: "m", Caller: CallerInfo{Defined: true}}
	e.Reset()
	if e != (Entry{}) {
		t.Errorf("Reset() left %+v", e)
	}
}

func TestPutEntryNil(t *testing.T) {
	// Must not panic
	PutEntry(nil)
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(0)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}

	if caller.File == "" {
		t.Error("Expected non-empty file")
	}
	if caller.ShortFile != "entry_test.go" {
		t.Errorf("ShortFile = %q, want %q", caller.ShortFile, "entry_test.go")
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if !strings.HasSuffix(caller.Function, "TestGetCaller") {
		t.Errorf("Function = %q, want suffix TestGetCaller", caller.Function)
	}
}

func callerOfHelper() CallerInfo {
	return GetCaller(1)
}

func TestGetCaller_Skip(t *testing.T) {
	caller := callerOfHelper()
	if !strings.HasSuffix(caller.Function, "TestGetCaller_Skip") {
		t.Errorf("Function = %q, want suffix TestGetCaller_Skip", caller.Function)
	}

	if got := GetCaller(1000); got.Defined {
		t.Errorf("GetCaller(1000) = %+v, want undefined", got)
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}
