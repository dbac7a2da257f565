package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	vexysvgo "github.com/gwen-lg/vexy-svgo"
)

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, exitOK, exitCodeFor(nil))
	assert.Equal(t, exitUsageErr, exitCodeFor(usageErrorf("bad flag")))
	assert.Equal(t, exitConfigErr, exitCodeFor(vexysvgo.ErrConfig))
	assert.Equal(t, exitOptimizeErr, exitCodeFor(errors.New("boom")))
	assert.Equal(t, exitOptimizeErr, exitCodeFor(vexysvgo.ErrPlugin))
}
