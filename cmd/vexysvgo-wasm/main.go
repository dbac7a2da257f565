//go:build js && wasm

// Command vexysvgo-wasm exposes the optimizer to a host JavaScript runtime.
// It is a thin façade: the same vexysvgo.Run the CLI calls, with string
// marshaling across the syscall/js boundary and no CLI- or terminal-shaped
// dependency of its own.
package main

import (
	"context"
	"syscall/js"

	vexysvgo "github.com/gwen-lg/vexy-svgo"
	"github.com/gwen-lg/vexy-svgo/internal/config"
)

func main() {
	js.Global().Set("vexysvgoOptimize", js.FuncOf(optimize))
	select {}
}

// optimize(svg string, configJSON string) -> {output, error}, both fields
// always present so the JS caller never has to distinguish undefined from
// empty string.
func optimize(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return jsResult("", "optimize requires at least an svg argument")
	}
	svg := args[0].String()

	cfg := vexysvgo.DefaultConfig()
	if len(args) > 1 && args[1].Truthy() {
		parsed, err := config.Parse([]byte(args[1].String()))
		if err != nil {
			return jsResult("", err.Error())
		}
		cfg = parsed
	}

	doc, err := vexysvgo.Parse([]byte(svg))
	if err != nil {
		return jsResult("", err.Error())
	}

	out, _, err := vexysvgo.Run(context.Background(), doc, cfg, vexysvgo.NewDefaultRegistry())
	if err != nil {
		return jsResult("", err.Error())
	}
	return jsResult(out, "")
}

func jsResult(output, errMsg string) map[string]any {
	return map[string]any{"output": output, "error": errMsg}
}
