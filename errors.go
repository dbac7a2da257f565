package vexysvgo

import "errors"

// Sentinel errors for the taxonomy in §7: Parse and Stringify errors abort a
// run; Config errors are raised resolving the plugin list; Plugin errors are
// caught per-plugin and demoted to a diagnostic unless the run is strict.
var (
	ErrParse     = errors.New("vexysvgo: parse error")
	ErrConfig    = errors.New("vexysvgo: configuration error")
	ErrPlugin    = errors.New("vexysvgo: plugin error")
	ErrStringify = errors.New("vexysvgo: stringify error")
)
