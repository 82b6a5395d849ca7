// Package contract holds the validated runtime configuration and the small
// utilities shared by every command: logging, labels and output files.
package contract

// Default values for configuration.
const (
	DefaultResultLimit = 0 // 0 shows every record
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	MaxPrecision       = 3
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// ValidLogFormats lists the supported log encodings.
var ValidLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}
