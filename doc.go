// Package vexysvgo implements the core of an SVG optimizer: a parser that
// turns an SVG document into an in-memory tree, a visitor runtime for
// traversing and mutating that tree, a plugin registry and driver that run a
// configurable, ordered sequence of semantics-preserving transformations
// over it, and a stringifier that serializes the result back to SVG.
//
// The package is compatible at the configuration and plugin-name level with
// SVGO. It does not render SVG, fetch network resources, or execute scripts.
package vexysvgo
