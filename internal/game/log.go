package game

import (
	"fmt"
	"io"
	"os"
)

// LogOutput receives operational messages. Tests and the terminal view
// point it elsewhere.
var LogOutput io.Writer = os.Stderr

// Logf writes one prefixed line to LogOutput.
func Logf(format string, args ...any) {
	fmt.Fprintf(LogOutput, "racer: "+format+"\n", args...)
}
