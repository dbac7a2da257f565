package main

import (
	"encoding/base64"
	"net/url"
)

// dataURI wraps svg per the --datauri mode: "base64" (standard base64
// encoding), "enc" (percent-encoded, URL-safe for inline CSS/HTML), or
// "unenc" (embedded verbatim, relying on the caller's context to tolerate
// raw XML).
func dataURI(svg, mode string) (string, error) {
	const mime = "data:image/svg+xml"
	switch mode {
	case "base64":
		return mime + ";base64," + base64.StdEncoding.EncodeToString([]byte(svg)), nil
	case "enc":
		return mime + "," + url.PathEscape(svg), nil
	case "unenc":
		return mime + "," + svg, nil
	default:
		return "", usageErrorf("unknown --datauri mode %q (want base64, enc, or unenc)", mode)
	}
}
