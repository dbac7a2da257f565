package vexysvgo

// EOL selects the line-ending style used by the stringifier's pretty printer.
type EOL string

const (
	EOLLF   EOL = "lf"
	EOLCRLF EOL = "crlf"
)

// JS2SVG controls stringifier formatting, named for parity with SVGO's own
// configuration key.
type JS2SVG struct {
	Pretty        bool
	Indent        int
	EOL           EOL
	FinalNewline  bool
	UseShortTags  bool
	AttrStart     string
	AttrEnd       string
}

// DefaultJS2SVG mirrors SVGO's defaults.
func DefaultJS2SVG() JS2SVG {
	return JS2SVG{
		Pretty:       false,
		Indent:       2,
		EOL:          EOLLF,
		FinalNewline: false,
		UseShortTags: true,
		AttrStart:    `"`,
		AttrEnd:      `"`,
	}
}

// PluginDirective is one entry of Config.Plugins: a bare plugin name, a
// preset name, a {name, params} pair, or a {name, enabled:false} disabler.
type PluginDirective struct {
	Name    string
	Enabled *bool // nil means "enabled" (the default)
	Params  map[string]any
}

// Config is the root configuration record from §3.
type Config struct {
	Multipass      bool
	JS2SVG         JS2SVG
	FloatPrecision int
	Plugins        []PluginDirective

	// Strict, if set, escalates plugin errors (§7) to run-aborting errors
	// instead of demoting them to diagnostics.
	Strict bool
}

// DefaultConfig returns the configuration implied by "preset-default" with
// no overrides.
func DefaultConfig() Config {
	return Config{
		JS2SVG:         DefaultJS2SVG(),
		FloatPrecision: 3,
		Plugins:        []PluginDirective{{Name: "preset-default"}},
	}
}
