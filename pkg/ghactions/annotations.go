// Package ghactions formats GitHub Actions workflow commands.
//
// Annotation lines written to a job log (e.g. `::error::message`) are picked
// up by the Actions log viewer and surfaced on the run summary.
package ghactions

import (
	"fmt"
	"io"
	"strings"
)

// messageEscaper escapes characters with special meaning in workflow command
// message data.
var messageEscaper = strings.NewReplacer(
	"%", "%25",
	"\r", "%0D",
	"\n", "%0A",
)

// Errorf writes an error annotation to w.
func Errorf(w io.Writer, format string, a ...any) {
	command(w, "error", format, a...)
}

// Warningf writes a warning annotation to w.
func Warningf(w io.Writer, format string, a ...any) {
	command(w, "warning", format, a...)
}

// Noticef writes a notice annotation to w.
func Noticef(w io.Writer, format string, a ...any) {
	command(w, "notice", format, a...)
}

func command(w io.Writer, level, format string, a ...any) {
	msg := messageEscaper.Replace(fmt.Sprintf(format, a...))
	fmt.Fprintf(w, "::%s::%s\n", level, msg)
}
