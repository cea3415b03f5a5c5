package output

import (
	"fmt"
	"io"
	"regexp"

	"github.com/py-app-standalone/cli/internal/output/colorstyle"
)

var colorRx *regexp.Regexp

func init() {
	var err error
	colorRx, err = regexp.Compile(`\[(BOLD|UNDERLINE|BLACK|RED|GREEN|YELLOW|BLUE|MAGENTA|CYAN|WHITE|ERROR|SUCCESS|NOTICE|ACTIONABLE|/RESET)!?\]`)
	if err != nil {
		panic(fmt.Sprintf("Could not compile regex: %v", err))
	}
}

// writeColorized will replace `[COLORNAME]foo[/RESET]` with shell colors, or strip the tags if stripColors is set
func writeColorized(value string, writer io.Writer, stripColors bool) (int, error) {
	pos := 0
	matches := colorRx.FindAllStringSubmatchIndex(value, -1)
	for _, match := range matches {
		start, end, groupStart, groupEnd := match[0], match[1], match[2], match[3]
		n, err := writer.Write([]byte(value[pos:start]))
		if err != nil {
			return n, err
		}

		if !stripColors {
			brighten := value[end-2:end-1] == "!"
			groupName := value[groupStart:groupEnd]
			colorize(writer, groupName, brighten)
		}

		pos = end
	}

	return writer.Write([]byte(value[pos:]))
}

func colorize(writer io.Writer, arg string, brighten bool) {
	styler := colorstyle.New(writer)
	switch arg {
	case "BOLD":
		styler.SetStyle(colorstyle.Bold, brighten)
	case "UNDERLINE":
		styler.SetStyle(colorstyle.Underline, brighten)
	case "BLACK":
		styler.SetStyle(colorstyle.Black, brighten)
	case "RED", "ERROR":
		styler.SetStyle(colorstyle.Red, brighten)
	case "GREEN", "SUCCESS":
		styler.SetStyle(colorstyle.Green, brighten)
	case "YELLOW", "NOTICE":
		styler.SetStyle(colorstyle.Yellow, brighten)
	case "BLUE":
		styler.SetStyle(colorstyle.Blue, brighten)
	case "MAGENTA":
		styler.SetStyle(colorstyle.Magenta, brighten)
	case "CYAN", "ACTIONABLE":
		styler.SetStyle(colorstyle.Cyan, brighten)
	case "WHITE":
		styler.SetStyle(colorstyle.White, brighten)
	case "/RESET":
		styler.SetStyle(colorstyle.Default, brighten)
	}
}

// StripColorTags removes all color tags from the given string, for callers
// that need the plain text width (eg. tests and log lines).
func StripColorTags(value string) string {
	return colorRx.ReplaceAllString(value, "")
}
