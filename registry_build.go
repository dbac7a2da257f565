package vexysvgo

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/gwen-lg/vexy-svgo/internal/paramschema"
)

// NewDefaultRegistry builds the registry every CLI/library entry point
// starts from: every built-in plugin registered under its canonical name,
// plus the "preset-default" preset expanding to the §4.3 ordered list.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	reg := func(name, desc string, kind PluginKind, schema *paramschema.Schema, f Factory) {
		r.Register(&Descriptor{Name: name, Description: desc, Kind: kind, Schema: schema, New: f})
	}

	reg("removeDoctype", "Removes the DOCTYPE declaration.", KindDocument, nil,
		func() Plugin { return removeDoctypePlugin{} })
	reg("removeXMLProcInst", "Removes the XML processing instruction.", KindDocument, nil,
		func() Plugin { return removeXMLProcInstPlugin{} })
	reg("removeComments", "Removes comments, except ones starting with \"!\".", KindVisitor, nil,
		func() Plugin { return removeCommentsPlugin{} })
	reg("removeMetadata", "Removes <metadata> elements.", KindVisitor, nil,
		func() Plugin { return removeMetadataPlugin{} })
	reg("removeEditorsNSData", "Removes editor-specific namespaced elements and attributes.", KindVisitor, nil,
		func() Plugin { return removeEditorsNSDataPlugin{} })
	reg("removeTitle", "Removes <title> elements.", KindVisitor, nil,
		func() Plugin { return removeTitlePlugin{} })
	reg("removeScripts", "Removes <script> elements and event handler attributes.", KindVisitor, nil,
		func() Plugin { return removeScriptsPlugin{} })
	reg("removeStyleElement", "Removes <style> elements.", KindVisitor, nil,
		func() Plugin { return removeStyleElementPlugin{} })

	reg("removeDesc", "Removes non-meaningful <desc> elements.", KindVisitor,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{"removeAny": boolSchema()})),
		func() Plugin { return removeDescPlugin{} })

	reg("cleanupAttrs", "Collapses and trims whitespace in attribute values.", KindVisitor, nil,
		func() Plugin { return cleanupAttrsPlugin{} })
	reg("mergeStyles", "Merges multiple <style> elements into one.", KindDocument, nil,
		func() Plugin { return mergeStylesPlugin{} })
	reg("inlineStyles", "Moves matching style rules onto their target elements.", KindDocument, nil,
		func() Plugin { return inlineStylesPlugin{} })
	reg("minifyStyles", "Minifies remaining <style> element content.", KindVisitor, nil,
		func() Plugin { return minifyStylesPlugin{} })
	reg("convertStyleToAttrs", "Converts non-important style declarations to presentation attributes.", KindVisitor, nil,
		func() Plugin { return convertStyleToAttrsPlugin{} })

	reg("cleanupIds", "Minifies and removes unused ids.", KindDocument,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{
			"minify": boolSchema(), "remove": boolSchema(),
			"preserve": stringArraySchema(), "preservePrefixes": stringArraySchema(),
		})),
		func() Plugin { return cleanupIdsPlugin{} })
	reg("prefixIds", "Prefixes ids and the references to them.", KindDocument,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{"prefix": stringSchema()})),
		func() Plugin { return prefixIdsPlugin{} })
	reg("removeUselessDefs", "Removes unreferenced children of <defs>.", KindDocument, nil,
		func() Plugin { return removeUselessDefsPlugin{} })
	reg("reusePaths", "Deduplicates identical <path> elements via <use>.", KindDocument, nil,
		func() Plugin { return reusePathsPlugin{} })

	reg("cleanupNumericValues", "Rounds numeric attribute values to a float precision.", KindVisitor,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{"floatPrecision": numberSchema()})),
		func() Plugin { return cleanupNumericValuesPlugin{} })
	reg("convertColors", "Converts colors to their shortest representation.", KindVisitor,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{
			"shortenHex": boolSchema(), "convertCase": boolSchema(), "currentColor": boolSchema(),
		})),
		func() Plugin { return convertColorsPlugin{} })

	reg("removeUnknownsAndDefaults", "Removes attributes matching their SVG default value.", KindVisitor,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{"removeDefaultValues": boolSchema()})),
		func() Plugin { return removeUnknownsAndDefaultsPlugin{} })
	reg("removeNonInheritableGroupAttrs", "Removes attributes on <g> that have no effect.", KindVisitor, nil,
		func() Plugin { return removeNonInheritableGroupAttrsPlugin{} })
	reg("removeUselessStrokeAndFill", "Removes stroke properties made useless by stroke-width 0.", KindVisitor, nil,
		func() Plugin { return removeUselessStrokeAndFillPlugin{} })
	reg("cleanupEnableBackground", "Removes the enable-background attribute from <svg> elements.", KindVisitor, nil,
		func() Plugin { return cleanupEnableBackgroundPlugin{} })
	reg("removeHiddenElems", "Removes elements that cannot render.", KindVisitor, nil,
		func() Plugin { return removeHiddenElemsPlugin{} })
	reg("removeEmptyText", "Removes empty or whitespace-only text nodes.", KindVisitor, nil,
		func() Plugin { return removeEmptyTextPlugin{} })

	reg("convertShapeToPath", "Converts basic shapes to <path>.", KindVisitor,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{"convertArcs": boolSchema()})),
		func() Plugin { return convertShapeToPathPlugin{} })
	reg("convertEllipseToCircle", "Converts equal-radii <ellipse> to <circle>.", KindVisitor, nil,
		func() Plugin { return convertEllipseToCirclePlugin{} })
	reg("moveElemsAttrsToGroup", "Hoists identical sibling attributes to their parent <g>.", KindVisitor, nil,
		func() Plugin { return moveElemsAttrsToGroupPlugin{} })
	reg("moveGroupAttrsToElems", "Pushes a lone group transform down to its only child.", KindVisitor, nil,
		func() Plugin { return moveGroupAttrsToElemsPlugin{} })
	reg("collapseGroups", "Collapses attribute-less groups with a single element child or no children.", KindVisitor, nil,
		func() Plugin { return collapseGroupsPlugin{} })

	reg("convertPathData", "Canonicalizes and shortens path data.", KindVisitor,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{"floatPrecision": numberSchema()})),
		func() Plugin { return convertPathDataPlugin{} })
	reg("convertTransform", "Folds and shortens transform lists.", KindVisitor,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{"floatPrecision": numberSchema()})),
		func() Plugin { return convertTransformPlugin{} })
	reg("mergePaths", "Merges adjacent sibling paths sharing presentation attributes.", KindVisitor, nil,
		func() Plugin { return mergePathsPlugin{} })

	reg("removeEmptyAttrs", "Removes attributes with an empty value.", KindVisitor, nil,
		func() Plugin { return removeEmptyAttrsPlugin{} })
	reg("removeEmptyContainers", "Removes empty container elements.", KindVisitor, nil,
		func() Plugin { return removeEmptyContainersPlugin{} })
	reg("removeUnusedNS", "Removes unreferenced xmlns declarations.", KindDocument, nil,
		func() Plugin { return removeUnusedNSPlugin{} })
	reg("removeViewBox", "Removes a viewBox identical to width/height.", KindDocument, nil,
		func() Plugin { return removeViewBoxPlugin{} })
	reg("removeDimensions", "Removes width/height when a viewBox is present.", KindDocument, nil,
		func() Plugin { return removeDimensionsPlugin{} })

	reg("sortDefsChildren", "Sorts <defs> children by element name then id.", KindVisitor, nil,
		func() Plugin { return sortDefsChildrenPlugin{} })
	reg("sortAttrs", "Sorts attributes by a fixed priority then alphabetically.", KindVisitor,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{"order": stringArraySchema()})),
		func() Plugin { return sortAttrsPlugin{} })

	reg("addAttributesToSVGElement", "Adds attributes to the root <svg> element.", KindDocument, nil,
		func() Plugin { return addAttributesToSVGElementPlugin{} })
	reg("addClassesToSVGElement", "Adds classes to the root <svg> element.", KindDocument,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{"classNames": stringArraySchema()})),
		func() Plugin { return addClassesToSVGElementPlugin{} })
	reg("removeAttributesBySelector", "Removes attributes from elements matching a CSS selector.", KindVisitor,
		paramschema.MustNew(objectSchema(map[string]*jsonschema.Schema{
			"selector": stringSchema(), "attributes": stringArraySchema(),
		})),
		func() Plugin { return removeAttributesBySelectorPlugin{} })

	r.RegisterPreset("preset-default", defaultPresetDirectives())
	return r
}
