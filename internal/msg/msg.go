package msg

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/stdinfile/stdinfile/internal/errors"
)

var labels = map[errors.Kind]string{
	errors.Unknown:         "Error",
	errors.InvalidArgument: "Invalid argument",
	errors.StdinRead:       "Read error",
	errors.FileCreate:      "Create error",
	errors.FileWrite:       "Write error",
	errors.UserCancelled:   "Cancelled",
	errors.BrokenPipe:      "Broken pipe",
}

// Label returns the short heading printed in front of an error of the given kind.
func Label(kind errors.Kind) string {
	if l, ok := labels[kind]; ok {
		return l
	}
	return labels[errors.Unknown]
}

// Error prints out a formatted and color coded version of err to w.
func Error(w io.Writer, err error) {
	if err == nil {
		return
	}
	red := color.New(color.FgRed).SprintFunc()
	_, _ = fmt.Fprintf(w, "%s: %s\n", red(Label(errors.KindOf(err))), err)
}
