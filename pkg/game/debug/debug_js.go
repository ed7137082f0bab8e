//go:build js && wasm

package debug

import (
	"fmt"
	"syscall/js"
)

var console = js.Global().Get("console")

// Log writes to the browser console at debug level, so game traces stay
// hidden unless the page's console shows verbose output.
func Log(format string, args ...any) {
	console.Call("debug", fmt.Sprintf(format, args...))
}
