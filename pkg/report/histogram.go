// Package report renders execution statistics gathered from an
// emulation session.
package report

import (
	"errors"
	"io"
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("report: no opcodes executed")

const (
	barWidth    = 14
	chartHeight = 4 * vg.Inch
	minWidth    = 4 * vg.Inch
)

// OpcodeCount is the number of times a single opcode was executed.
type OpcodeCount struct {
	Opcode uint8
	Name   string
	Count  uint64
}

// TopOpcodes returns the n most executed opcodes of counts, most
// executed first. Opcodes that were never executed are left out, and
// n <= 0 returns all of them.
func TopOpcodes(counts [256]uint64, name func(uint8) string, n int) []OpcodeCount {
	var entries []OpcodeCount
	for i, count := range counts {
		if count == 0 {
			continue
		}
		entries = append(entries, OpcodeCount{Opcode: uint8(i), Name: name(uint8(i)), Count: count})
	}

	slices.SortStableFunc(entries, func(a, b OpcodeCount) bool {
		return a.Count > b.Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// WriteOpcodeHistogram draws a bar chart of the top most executed
// opcodes of counts, and writes it to w as a PNG image.
func WriteOpcodeHistogram(w io.Writer, title string, counts [256]uint64, name func(uint8) string, top int) error {
	entries := TopOpcodes(counts, name, top)
	if len(entries) == 0 {
		return ErrNoData
	}

	values := make(plotter.Values, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Count)
		labels[i] = e.Name
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "executions"

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	width := vg.Points(float64(len(entries)) * barWidth * 1.5)
	if width < minWidth {
		width = minWidth
	}

	c := vgimg.New(width, chartHeight)
	p.Draw(draw.New(c))

	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}
