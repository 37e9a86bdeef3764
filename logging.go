package subwayindex

import (
	"log"
	"os"
)

// InitLogging sends the standard logger to stderr with microsecond stamps.
// Stdout carries query output.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
