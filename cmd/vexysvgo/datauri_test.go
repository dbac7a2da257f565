package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURI(t *testing.T) {
	cases := []struct {
		mode string
		want string
	}{
		{mode: "base64", want: "data:image/svg+xml;base64,PHN2Zy8+"},
		{mode: "enc", want: "data:image/svg+xml,%3Csvg%2F%3E"},
		{mode: "unenc", want: "data:image/svg+xml,<svg/>"},
	}
	for _, c := range cases {
		t.Run(c.mode, func(t *testing.T) {
			got, err := dataURI("<svg/>", c.mode)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDataURIUnknownMode(t *testing.T) {
	_, err := dataURI("<svg/>", "bogus")
	assert.Error(t, err)
	assert.Equal(t, exitUsageErr, exitCodeFor(err))
}
