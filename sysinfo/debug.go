package sysinfo

import (
	"fmt"
	"os"
)

// DebugEnv enables diagnostic output on stderr when set to a non-empty value.
const DebugEnv = "SYSFETCH_DEBUG"

func debugf(format string, args ...interface{}) {
	if os.Getenv(DebugEnv) == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "sysfetch debug: "+format+"\n", args...)
}
