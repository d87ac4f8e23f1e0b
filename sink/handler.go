package sink

import (
	"time"

	"github.com/philipp01105/logstream/core"
	"github.com/philipp01105/logstream/handler"
	"github.com/philipp01105/logstream/logwriter"
)

var _ logwriter.Logger = (*HandlerLogger)(nil)

// HandlerLogger passes records directly to a handler.Handler, skipping
// the level gate and caller lookup of logger.Logger.
type HandlerLogger struct {
	handler handler.Handler
	fast    handler.FastHandler
}

// Handler returns a Logger writing to h.
func Handler(h handler.Handler) *HandlerLogger {
	fast, _ := h.(handler.FastHandler)
	return &HandlerLogger{handler: h, fast: fast}
}

// Log hands msg to the handler and returns its error.
func (h *HandlerLogger) Log(level core.Level, msg string) error {
	if !level.Valid() {
		return invalidLevel(level)
	}

	if h.fast != nil {
		return h.fast.HandleLog(time.Now(), level, msg, core.CallerInfo{})
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg
	err := h.handler.Handle(entry)
	core.PutEntry(entry)
	return err
}
