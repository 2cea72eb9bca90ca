package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exitStderr io.Writer = os.Stderr
	exitFunc             = os.Exit
)

// Exitf reports a fatal startup error as "atrium: <message>" on stderr and
// exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitStderr, "atrium: "+format+"\n", args...)
	exitFunc(1)
}
