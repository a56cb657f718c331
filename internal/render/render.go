// Package render turns finished plots into image files and formats the numbers
// drawn on them. It is shared by the engine charts and the delta-v plot.
package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Format is the image encoding used for every artifact.
const Format = "png"

var printer = message.NewPrinter(language.English)

// Bytes draws p at the given size and returns the encoded image.
func Bytes(p *plot.Plot, width, height vg.Length) ([]byte, error) {
	wt, err := p.WriterTo(width, height, Format)
	if err != nil {
		return nil, fmt.Errorf("creating %s canvas: %w", Format, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", Format, err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes an encoded image to path, replacing any previous file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logrus.Infof("Wrote %s (%d bytes)", path, len(data))
	return nil
}

// Save draws p and writes it to path.
func Save(p *plot.Plot, width, height vg.Length, path string) error {
	data, err := Bytes(p, width, height)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return WriteFile(path, data)
}

// Thousands formats v rounded to an integer with comma grouping, e.g. 1234567.8 -> "1,234,568".
func Thousands(v float64) string {
	return printer.Sprintf("%.0f", v)
}
