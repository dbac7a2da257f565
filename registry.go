package vexysvgo

import (
	"fmt"
	"sort"
)

// Registry is a name-keyed catalog of plugin descriptors. It is read-only
// after construction and safe to share across concurrently running
// optimizer passes over distinct documents (§5).
type Registry struct {
	plugins map[string]*Descriptor
	presets map[string][]PluginDirective
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: map[string]*Descriptor{},
		presets: map[string][]PluginDirective{},
	}
}

// Register adds a plugin descriptor. It panics on a duplicate name, since
// that is a programming error in registry construction, not a runtime
// configuration error.
func (r *Registry) Register(d *Descriptor) {
	if _, exists := r.plugins[d.Name]; exists {
		panic(fmt.Sprintf("vexysvgo: plugin %q already registered", d.Name))
	}
	r.plugins[d.Name] = d
}

// RegisterPreset adds a named, ordered list of plugin directives.
func (r *Registry) RegisterPreset(name string, directives []PluginDirective) {
	r.presets[name] = directives
}

// Lookup returns the descriptor for name, or false if unknown.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.plugins[name]
	return d, ok
}

// Names returns every registered plugin name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for n := range r.plugins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Describe returns every descriptor, sorted by name, for introspection
// (e.g. --show-plugins).
func (r *Registry) Describe() []*Descriptor {
	names := r.Names()
	out := make([]*Descriptor, len(names))
	for i, n := range names {
		out[i] = r.plugins[n]
	}
	return out
}

// ResolvedStep is one fully-resolved plugin to run: its descriptor and
// validated parameters.
type ResolvedStep struct {
	Descriptor *Descriptor
	Params     map[string]any
}

// Resolve expands a directive list (which may reference presets) against
// the registry into a concrete, ordered run list, validating every plugin's
// parameters. Unknown plugin names are Config errors unless the directive
// explicitly disables them (§3, §7).
func (r *Registry) Resolve(directives []PluginDirective) ([]ResolvedStep, error) {
	var steps []ResolvedStep
	disabled := map[string]bool{}

	// First pass: collect disablers so they can appear before or after the
	// preset expansion that introduces the plugin.
	for _, d := range directives {
		if d.Enabled != nil && !*d.Enabled {
			disabled[d.Name] = true
		}
	}

	var expand func(ds []PluginDirective) error
	expand = func(ds []PluginDirective) error {
		for _, d := range ds {
			if preset, ok := r.presets[d.Name]; ok {
				if err := expand(preset); err != nil {
					return err
				}
				continue
			}
			if d.Enabled != nil && !*d.Enabled {
				continue
			}
			if disabled[d.Name] {
				continue
			}
			desc, ok := r.plugins[d.Name]
			if !ok {
				return fmt.Errorf("%w: unknown plugin %q", ErrConfig, d.Name)
			}
			if err := desc.ValidateParams(d.Params); err != nil {
				return err
			}
			steps = append(steps, ResolvedStep{Descriptor: desc, Params: d.Params})
		}
		return nil
	}

	if err := expand(directives); err != nil {
		return nil, err
	}
	return steps, nil
}
