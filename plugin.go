package vexysvgo

import (
	"fmt"

	"github.com/gwen-lg/vexy-svgo/internal/paramschema"
)

// PluginKind classifies how a plugin consumes the document, per §4.3.
type PluginKind int

const (
	// KindVisitor plugins implement Visitor and are run via Walk.
	KindVisitor PluginKind = iota
	// KindDocument plugins operate on the whole Document directly (e.g.
	// mergeStyles, which first needs every <style> element collected
	// before it can act).
	KindDocument
)

// Report is a plugin's account of what it changed, used to populate the
// optimizer's per-plugin change counts (§4.4).
type Report struct {
	Changed int // e.g. nodes removed/rewritten; 0 is a valid "no-op" report
	Notes   []string
}

// Plugin is a pure, named transformation over a Document: running the same
// plugin on equal input with equal params yields equal output (§4.3).
type Plugin interface {
	Name() string
	Kind() PluginKind

	// NewVisitor returns a fresh Visitor instance for this run, along with a
	// Report the visitor may mutate as it visits nodes; the driver reads
	// Report after Walk returns. Only called for KindVisitor plugins.
	NewVisitor(params map[string]any) (Visitor, *Report, error)

	// ApplyDocument runs a whole-document transformation directly. Only
	// called for KindDocument plugins.
	ApplyDocument(doc *Document, params map[string]any) (*Report, error)
}

// Factory builds a Plugin instance. The registry only stores it; the driver
// calls it each time it runs the plugin, so every run starts from a fresh
// instance.
type Factory func() Plugin

// Descriptor is the registry's bookkeeping record for one plugin: its
// factory plus metadata used for validation and introspection
// (--show-plugins).
type Descriptor struct {
	Name        string
	Description string
	Kind        PluginKind
	Schema      *paramschema.Schema
	New         Factory
}

// ValidateParams validates a parameter bag against the descriptor's schema,
// if any. A nil schema accepts any params (including none).
func (d *Descriptor) ValidateParams(params map[string]any) error {
	if d.Schema == nil {
		return nil
	}
	if err := d.Schema.Validate(params); err != nil {
		return fmt.Errorf("%w: plugin %q: %v", ErrConfig, d.Name, err)
	}
	return nil
}
