package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	vexysvgo "github.com/gwen-lg/vexy-svgo"
	"github.com/gwen-lg/vexy-svgo/cmd/vexysvgo/batchui"
	"github.com/gwen-lg/vexy-svgo/internal/clog"
	"github.com/gwen-lg/vexy-svgo/internal/config"
)

func run(cmd *cobra.Command, cliCfg *Config, args []string) error {
	logger, err := clog.New(os.Stderr, cliCfg.LogLevel, cliCfg.LogFormat)
	if err != nil {
		return cliUsageError{err}
	}

	vcfg, err := resolveConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	reg := vexysvgo.NewDefaultRegistry()

	if cliCfg.ShowPlugins {
		printPlugins(reg)
		return nil
	}

	inputs, err := gatherInputs(cliCfg, args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	failed := 0

	// A batch progress view only makes sense when output goes to files, not
	// when the optimized SVG itself would share stdout with the TUI.
	useTUI := len(inputs) > 1 && cliCfg.Folder != "" && term.IsTerminal(int(os.Stdout.Fd()))

	if useTUI {
		failed, err = runBatchTUI(ctx, inputs, vcfg, reg, cliCfg)
	} else {
		failed, err = runPlain(ctx, inputs, vcfg, reg, cliCfg, logger)
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d input(s) failed to optimize", vexysvgo.ErrPlugin, failed, len(inputs))
	}
	return nil
}

// resolveConfig builds the library Config from --config (if given) and
// layers only explicitly-set CLI flags on top, so an unset flag never
// clobbers a value loaded from file.
func resolveConfig(cmd *cobra.Command, cliCfg *Config) (vexysvgo.Config, error) {
	vcfg := vexysvgo.DefaultConfig()
	if cliCfg.ConfigPath != "" {
		loaded, err := config.Load(cliCfg.ConfigPath)
		if err != nil {
			return vexysvgo.Config{}, err
		}
		vcfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("multipass") {
		vcfg.Multipass = cliCfg.Multipass
	}
	if flags.Changed("pretty") {
		vcfg.JS2SVG.Pretty = cliCfg.Pretty
	}
	if flags.Changed("indent") {
		vcfg.JS2SVG.Indent = cliCfg.Indent
	}
	if flags.Changed("precision") {
		vcfg.FloatPrecision = cliCfg.Precision
	}

	for _, name := range cliCfg.Enable {
		vcfg.Plugins = append(vcfg.Plugins, vexysvgo.PluginDirective{Name: name})
	}
	for _, name := range cliCfg.Disable {
		disabled := false
		vcfg.Plugins = append(vcfg.Plugins, vexysvgo.PluginDirective{Name: name, Enabled: &disabled})
	}

	return vcfg, nil
}

func printPlugins(reg *vexysvgo.Registry) {
	for _, d := range reg.Describe() {
		fmt.Printf("%-32s [%s] %s\n", d.Name, kindLabel(d.Kind), d.Description)
	}
}

func kindLabel(k vexysvgo.PluginKind) string {
	if k == vexysvgo.KindDocument {
		return "document"
	}
	return "visitor"
}

// inputFile is one SVG to optimize, paired with where its output should go.
type inputFile struct {
	path   string // "" for stdin/-s input
	source []byte
	output string // "" means stdout
}

func gatherInputs(cliCfg *Config, args []string) ([]inputFile, error) {
	if cliCfg.InlineSVG != "" {
		return []inputFile{{source: []byte(cliCfg.InlineSVG), output: cliCfg.Output}}, nil
	}

	if cliCfg.Folder != "" {
		return gatherFolder(cliCfg)
	}

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []inputFile{{source: data, output: cliCfg.Output}}, nil
	}

	inputs := make([]inputFile, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		out := cliCfg.Output
		if len(args) > 1 {
			out = path
		}
		inputs = append(inputs, inputFile{path: path, source: data, output: out})
	}
	return inputs, nil
}

func gatherFolder(cliCfg *Config) ([]inputFile, error) {
	var inputs []inputFile
	walk := func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != cliCfg.Folder && !cliCfg.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".svg") {
			return nil
		}
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return rerr
		}
		out := path
		if cliCfg.Output != "" {
			rel, rerr := filepath.Rel(cliCfg.Folder, path)
			if rerr != nil {
				rel = filepath.Base(path)
			}
			out = filepath.Join(cliCfg.Output, rel)
		}
		inputs = append(inputs, inputFile{path: path, source: data, output: out})
		return nil
	}
	if err := filepath.WalkDir(cliCfg.Folder, walk); err != nil {
		return nil, fmt.Errorf("walking %s: %w", cliCfg.Folder, err)
	}
	return inputs, nil
}

func optimizeOne(ctx context.Context, in inputFile, vcfg vexysvgo.Config, reg *vexysvgo.Registry, cliCfg *Config) error {
	doc, err := vexysvgo.Parse(in.source)
	if err != nil {
		return err
	}
	out, _, err := vexysvgo.Run(ctx, doc, vcfg, reg)
	if err != nil {
		return err
	}
	if cliCfg.DataURI != "" {
		out, err = dataURI(out, cliCfg.DataURI)
		if err != nil {
			return err
		}
	}
	if in.output == "" {
		_, err = fmt.Fprint(os.Stdout, out)
		return err
	}
	if dir := filepath.Dir(in.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(in.output, []byte(out), 0o644)
}

func runPlain(ctx context.Context, inputs []inputFile, vcfg vexysvgo.Config, reg *vexysvgo.Registry, cliCfg *Config, logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}) (int, error) {
	failed := 0
	for _, in := range inputs {
		if err := optimizeOne(ctx, in, vcfg, reg, cliCfg); err != nil {
			failed++
			logger.Error("optimize failed", "path", in.path, "error", err)
			continue
		}
		if in.path != "" {
			logger.Info("optimized", "path", in.path)
		}
	}
	return failed, nil
}

func runBatchTUI(ctx context.Context, inputs []inputFile, vcfg vexysvgo.Config, reg *vexysvgo.Registry, cliCfg *Config) (int, error) {
	results := make(chan batchui.FileResult, len(inputs))
	go func() {
		defer close(results)
		for _, in := range inputs {
			err := optimizeOne(ctx, in, vcfg, reg, cliCfg)
			results <- batchui.FileResult{Path: in.path, Err: err}
		}
	}()
	return batchui.Run(len(inputs), results)
}
