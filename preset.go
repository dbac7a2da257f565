package vexysvgo

// defaultPresetOrder is the exact ordered plugin list "preset-default"
// expands to. Order is part of the contract: later plugins assume the
// postconditions of earlier ones (convertPathData runs after
// convertShapeToPath; cleanupIds runs before the reference-rewriting
// plugins that follow it).
var defaultPresetOrder = []string{
	"removeDoctype",
	"removeXMLProcInst",
	"removeComments",
	"removeMetadata",
	"removeEditorsNSData",
	"cleanupAttrs",
	"mergeStyles",
	"inlineStyles",
	"minifyStyles",
	"cleanupIds",
	"removeUselessDefs",
	"cleanupNumericValues",
	"convertColors",
	"removeUnknownsAndDefaults",
	"removeNonInheritableGroupAttrs",
	"removeUselessStrokeAndFill",
	"cleanupEnableBackground",
	"removeHiddenElems",
	"removeEmptyText",
	"convertShapeToPath",
	"convertEllipseToCircle",
	"moveElemsAttrsToGroup",
	"moveGroupAttrsToElems",
	"collapseGroups",
	"convertPathData",
	"convertTransform",
	"removeEmptyAttrs",
	"removeEmptyContainers",
	"mergePaths",
	"removeUnusedNS",
	"sortDefsChildren",
	"sortAttrs",
	"removeDesc",
}

func defaultPresetDirectives() []PluginDirective {
	out := make([]PluginDirective, len(defaultPresetOrder))
	for i, name := range defaultPresetOrder {
		out[i] = PluginDirective{Name: name}
	}
	return out
}
