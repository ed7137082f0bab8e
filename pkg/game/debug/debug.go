//go:build !(js && wasm)

package debug

import (
	"github.com/rs/zerolog/log"
)

// Log writes a debug-level message through the global zerolog logger.
func Log(format string, args ...any) {
	log.Debug().Msgf(format, args...)
}
