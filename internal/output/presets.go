package output

import "fmt"

// Title renders the given text as a bold heading followed by a blank line
type Title string

func (t Title) String() string {
	return fmt.Sprintf("[BOLD]%s[/RESET]\n", string(t))
}

// Emphasize renders the given text in bold
type Emphasize string

func (h Emphasize) String() string {
	return fmt.Sprintf("[BOLD]%s[/RESET]", string(h))
}
