package sink

import (
	"fmt"

	"github.com/philipp01105/logstream/core"
	"github.com/philipp01105/logstream/logwriter"
)

func invalidLevel(level core.Level) error {
	return fmt.Errorf("sink: level %d: %w", level, logwriter.ErrInvalidArgument)
}
