package vexysvgo

import (
	"context"
	"fmt"
	"sync"
)

// PluginOutcome records one plugin's contribution to a run, for the
// optimization report (§4.4).
type PluginOutcome struct {
	Plugin  string
	Changed int
	Err     error // non-nil only in non-strict mode, where the error was demoted
}

// OptimizeReport is the optimizer's account of a single Run: bytes
// before/after and per-plugin change counts (§4.4).
type OptimizeReport struct {
	BytesBefore int
	BytesAfter  int
	Passes      int
	Plugins     []PluginOutcome
	Diagnostics []Diagnostic
}

// Result bundles a run's serialized output with its report and error, for
// RunAll's per-document fan-out.
type Result struct {
	Output string
	Report *OptimizeReport
	Err    error
}

// Run executes the configured plugin pipeline over doc in place and
// serializes the result, per §4.4. ctx is consulted only at plugin and pass
// boundaries (§5); it is never passed into a plugin's own apply.
func Run(ctx context.Context, doc *Document, cfg Config, reg *Registry) (string, *OptimizeReport, error) {
	steps, err := reg.Resolve(cfg.Plugins)
	if err != nil {
		return "", nil, err
	}

	report := &OptimizeReport{}

	before, err := Stringify(doc, cfg.JS2SVG)
	if err != nil {
		return "", nil, err
	}
	report.BytesBefore = len(before)

	maxPasses := 1
	if cfg.Multipass {
		maxPasses = 10
	}

	lastLen := -1
	var out string

	for pass := 0; pass < maxPasses; pass++ {
		if err := ctxErr(ctx); err != nil {
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				Severity: SeverityWarn, Source: "driver",
				Message: fmt.Sprintf("cancelled after %d pass(es): %v", pass, err),
			})
			break
		}

		for _, step := range steps {
			if err := ctxErr(ctx); err != nil {
				break
			}

			r, perr := runStep(doc, step, cfg)
			if perr != nil {
				if cfg.Strict {
					return "", report, fmt.Errorf("%w: plugin %q: %v", ErrPlugin, step.Descriptor.Name, perr)
				}
				report.Diagnostics = append(report.Diagnostics, Diagnostic{
					Severity: SeverityWarn, Source: step.Descriptor.Name,
					Message: perr.Error(),
				})
				report.Plugins = append(report.Plugins, PluginOutcome{Plugin: step.Descriptor.Name, Err: perr})
				continue
			}
			outcome := PluginOutcome{Plugin: step.Descriptor.Name}
			if r != nil {
				outcome.Changed = r.Changed
			}
			report.Plugins = append(report.Plugins, outcome)
		}

		report.Passes = pass + 1

		out, err = Stringify(doc, cfg.JS2SVG)
		if err != nil {
			return "", report, err
		}

		if !cfg.Multipass {
			break
		}
		if lastLen >= 0 && len(out) >= lastLen {
			break
		}
		lastLen = len(out)
	}

	report.BytesAfter = len(out)
	report.Diagnostics = append(report.Diagnostics, doc.Diagnostics...)
	return out, report, nil
}

func runStep(doc *Document, step ResolvedStep, cfg Config) (r *Report, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	switch step.Descriptor.Kind {
	case KindDocument:
		return step.Descriptor.New().ApplyDocument(doc, mergeParams(step.Params, cfg))
	default:
		v, rep, verr := step.Descriptor.New().NewVisitor(mergeParams(step.Params, cfg))
		if verr != nil {
			return nil, verr
		}
		Walk(doc, v)
		return rep, nil
	}
}

// mergeParams folds global configuration (e.g. floatPrecision) into a
// plugin's own parameter bag as defaults, without overriding an explicit
// per-plugin override (§3: "global, overridable per plugin").
func mergeParams(params map[string]any, cfg Config) map[string]any {
	out := map[string]any{}
	for k, v := range params {
		out[k] = v
	}
	if _, ok := out["floatPrecision"]; !ok {
		out["floatPrecision"] = cfg.FloatPrecision
	}
	return out
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// RunAll processes multiple independent documents in parallel, one Document
// never shared across threads (§5). The returned slice is in input order.
func RunAll(ctx context.Context, docs []*Document, cfg Config, reg *Registry) []Result {
	results := make([]Result, len(docs))
	var wg sync.WaitGroup
	wg.Add(len(docs))
	for i, doc := range docs {
		go func(i int, doc *Document) {
			defer wg.Done()
			out, report, err := Run(ctx, doc, cfg, reg)
			results[i] = Result{Output: out, Report: report, Err: err}
		}(i, doc)
	}
	wg.Wait()
	return results
}
