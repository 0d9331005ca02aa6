package cellgrid

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package-level sink for the core's "log and continue" failure
// paths (reentrant paint, bad input-state transitions, panicking
// Renderer/Striping callbacks) and for cursor-override debug events. It defaults to
// a quiet, leveled console writer; embedders call SetLogger to route this
// through their own logging setup instead.
var logger zerolog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	With().Timestamp().Str("component", "cellgrid").Logger()

// SetLogger replaces the package-level logger used for the core's
// log-and-continue failure paths (see package doc and spec §7).
func SetLogger(l zerolog.Logger) {
	logger = l
}
