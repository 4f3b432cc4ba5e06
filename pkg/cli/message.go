package cli

import (
	"fmt"
	"io"
	"os"
)

func Print(w io.Writer, colour, message string) {
	_, _ = fmt.Fprint(w, Paint(colour, message))
}

func Println(w io.Writer, colour, message string) {
	_, _ = fmt.Fprintln(w, Paint(colour, message))
}

// Errorln reports a fatal command error on stderr.
func Errorln(message string) {
	Println(os.Stderr, RedColour, message)
}
