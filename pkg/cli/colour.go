package cli

import (
	"os"

	"golang.org/x/term"
)

const Reset = "\x1b[0m"
const RedColour = "\x1b[31m"
const GreenColour = "\x1b[32m"
const YellowColour = "\x1b[33m"
const BlueColour = "\x1b[34m"
const MagentaColour = "\x1b[35m"
const CyanColour = "\x1b[36m"
const GrayColour = "\x1b[37m"
const WhiteColour = "\x1b[97m"

var coloursEnabled = term.IsTerminal(int(os.Stdout.Fd()))

// SetColours forces ANSI colours on or off. By default they are only used
// when stdout is a terminal.
func SetColours(enabled bool) {
	coloursEnabled = enabled
}

func Paint(colour, message string) string {
	if !coloursEnabled {
		return message
	}

	return colour + message + Reset
}
