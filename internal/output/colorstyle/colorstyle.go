package colorstyle

import "io"

type Style int

const (
	Default Style = iota
	Reversed
	Bold
	Underline
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Styler turns style requests into the escape codes of the active terminal
type Styler interface {
	SetStyle(s Style, bright bool)
}

// New returns a Styler writing to the given writer
func New(writer io.Writer) Styler {
	return NewANSI(writer)
}
