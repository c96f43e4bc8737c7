package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFSPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := toFSPath(".")
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(got, "/"))
	assert.Equal(t, strings.TrimPrefix(filepath.ToSlash(wd), "/"), got)

	got, err = toFSPath("/")
	require.NoError(t, err)
	assert.Equal(t, ".", got)
}
