package prompt

import (
	"os"

	"github.com/mattn/go-isatty"
)

// interactive reports whether stdin is attached to a terminal.
func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
