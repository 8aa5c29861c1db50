package main

import (
	"bytes"
	"testing"

	"github.com/bethropolis/inkblock/internal/block"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWritesAttributes(t *testing.T) {
	b := block.New("7", "hello", nil)
	b, _ = block.ToggleStyle(b, style.Bold, types.Range{Offset: 0, Length: 2, Direction: types.DirectionForward})

	var buf bytes.Buffer
	require.NoError(t, export(&buf, b))

	out := buf.String()
	assert.Contains(t, out, `id = "7"`)
	assert.Contains(t, out, `text = "hello"`)
	assert.Contains(t, out, "[[attributes]]")
	assert.Contains(t, out, `flags = ["bold"]`)
	assert.Contains(t, out, "range = [0, 1]")
	assert.Contains(t, out, "range = [2, 4]")
}

func TestExportEmptyBlock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export(&buf, block.Empty("x")))
	assert.Contains(t, buf.String(), `id = "x"`)
	assert.NotContains(t, buf.String(), "[[attributes]]")
}
