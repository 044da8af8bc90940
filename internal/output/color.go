package output

import (
	"io"
	"os"
)

// ResolveColorMode determines the effective isTTY value from the --color
// flag and actual TTY detection. colorMode accepts "never", "always", or
// "auto"; anything else behaves as "auto".
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for an os.File that is a character device.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
