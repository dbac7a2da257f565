package main

import (
	"github.com/spf13/pflag"
)

// Config holds every flag the CLI accepts, split from the run logic the
// way the donor CLI splits its own flag struct from its generator, so the
// flag surface and the optimization logic can be tested independently.
type Config struct {
	Output    string
	Folder    string
	Recursive bool

	Multipass bool
	Pretty    bool
	Indent    int
	Precision int

	Enable  []string
	Disable []string

	ConfigPath string
	DataURI    string

	ShowPlugins bool
	InlineSVG   string

	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with the CLI's own defaults, not
// vexysvgo.DefaultConfig()'s — these mirror an unset flag, and are merged
// onto the library default only for the options the user actually touched.
func NewConfig() *Config {
	return &Config{
		Indent:    2,
		Precision: 3,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// RegisterFlags binds every Config field to a flag on fs.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&c.Folder, "folder", "f", "", "optimize every file in this folder")
	fs.BoolVarP(&c.Recursive, "recursive", "r", false, "recurse into subfolders of --folder")

	fs.BoolVar(&c.Multipass, "multipass", false, "run the plugin pipeline to convergence")
	fs.BoolVar(&c.Pretty, "pretty", false, "pretty-print the optimized output")
	fs.IntVar(&c.Indent, "indent", 2, "pretty-print indent width")
	fs.IntVar(&c.Precision, "precision", 3, "floating point precision")

	fs.StringArrayVar(&c.Enable, "enable", nil, "enable a plugin by name (repeatable)")
	fs.StringArrayVar(&c.Disable, "disable", nil, "disable a plugin by name (repeatable)")

	fs.StringVar(&c.ConfigPath, "config", "", "path to a YAML/JSON configuration file")
	fs.StringVar(&c.DataURI, "datauri", "", "emit a data URI instead of raw SVG: base64, enc, or unenc")

	fs.BoolVar(&c.ShowPlugins, "show-plugins", false, "print the plugin registry and exit")
	fs.StringVarP(&c.InlineSVG, "string", "s", "", "optimize this string instead of reading a file")

	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", "text", "log format: text or json")
}
