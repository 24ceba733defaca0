package dcosutil

import "errors"

// User-facing errors returned by the decode and parse wrappers. The
// underlying cause is logged, never wrapped, so the message stays stable.
var (
	ErrLoadingJSON = errors.New("Error loading JSON.")
	ErrLoadingYAML = errors.New("Error loading YAML.")
	ErrLoadingTOML = errors.New("Error loading TOML.")
	ErrLoadingFile = errors.New("Error loading file.")
	ErrParsingInt  = errors.New("Error parsing string as int")
)
