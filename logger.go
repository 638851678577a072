package doomstruct

import (
	"io"
	"log"
)

var logger *log.Logger = log.New(io.Discard, "", log.LstdFlags)

// SetLogger directs the archive's progress messages to l. Messages are discarded until a
// logger is set.
func SetLogger(l *log.Logger) {
	logger = l
}
