package core

import (
	"path/filepath"
	"runtime"
)

// CallerInfo identifies the source line that produced a record.
// Defined is false when the lookup failed.
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller resolves the frame skip levels above the function that calls
// GetCaller; GetCaller(0) reports that function itself.
func GetCaller(skip int) CallerInfo {
	var pcs [1]uintptr
	// 0 is runtime.Callers, 1 is GetCaller
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return CallerInfo{}
	}

	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.File == "" {
		return CallerInfo{}
	}

	return CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}
