package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/worldsys/worldsys/schema"
)

// Color variables for console output.
var (
	CoreColor          = color.New(color.FgBlue, color.Bold) // CoreColor marks the top tier.
	SemiPeripheryColor = color.New(color.FgCyan)             // SemiPeripheryColor marks the middle tier.
	PeripheryColor     = color.New(color.FgYellow)           // PeripheryColor marks the bottom tier.
)

// GetColorLabel returns a colored category label for console output (table).
func GetColorLabel(c schema.Category) string {
	switch c {
	case schema.Core:
		return CoreColor.Sprint(string(c))
	case schema.SemiPeriphery:
		return SemiPeripheryColor.Sprint(string(c))
	case schema.Periphery:
		return PeripheryColor.Sprint(string(c))
	default:
		return string(c)
	}
}

// CategoryLabel returns the colored label when colors are enabled, else the plain name.
func CategoryLabel(c schema.Category, useColors bool) string {
	if useColors {
		return GetColorLabel(c)
	}
	return string(c)
}

// SelectOutputFile returns the appropriate file handle for output.
// An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName shortens a display name to maxWidth runes with a trailing ellipsis.
// Requires maxWidth > 3 so there is room for "..." and at least one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
