package deltav

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ae267/engine-trade/internal/render"
)

func TestPlot_SingleCurve_TitleAndPNG(t *testing.T) {
	c, err := Compute(ntpParams())
	require.NoError(t, err)

	p, err := Plot(c)
	require.NoError(t, err)
	assert.Equal(t, "Delta-V vs Propellant Mass for Theoretical NTP Engine", p.Title.Text)

	data, err := render.Bytes(p, PlotWidth, PlotHeight)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}))
}

func TestPlot_NoCurves_Errors(t *testing.T) {
	_, err := Plot()
	assert.True(t, errors.Is(err, ErrInvalidParams))
}

func TestPrintMaxima_Format(t *testing.T) {
	c, err := Compute(ntpParams())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PrintMaxima(&buf, c))

	assert.Equal(t, "\nMaximum Delta-V value:\nTheoretical NTP: 24.1 km/s\n", buf.String())
}
