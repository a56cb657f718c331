package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestThousands_GroupsDigits(t *testing.T) {
	assert.Equal(t, "1,234,568", Thousands(1234567.8))
	assert.Equal(t, "91", Thousands(91.2))
	assert.Equal(t, "0", Thousands(0))
}

func TestSave_WritesPNGAndOverwrites(t *testing.T) {
	// GIVEN a trivial plot
	p := plot.New()
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	p.Add(line)
	path := filepath.Join(t.TempDir(), "line.png")

	// WHEN saved twice to the same path
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))
	require.NoError(t, Save(p, 3*vg.Inch, 2*vg.Inch, path))

	// THEN the file is a PNG replacing the previous content
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestWriteFile_MissingDirectory_ReturnsError(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "x.png"), pngMagic)
	assert.Error(t, err)
}
