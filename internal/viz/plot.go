package viz

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/petewarden/magic-wand-capture/internal/gesture"
)

var axisNames = [gesture.Dim]string{"x", "y", "z"}

// Channels returns one line per axis of seq, indexed by sample number
func Channels(seq gesture.Sequence) [gesture.Dim]plotter.XYs {
	var lines [gesture.Dim]plotter.XYs
	for axis := range lines {
		lines[axis] = make(plotter.XYs, len(seq))
		for i, s := range seq {
			lines[axis][i].X = float64(i)
			lines[axis][i].Y = s[axis]
		}
	}
	return lines
}

// PlotSequence renders the three axes of rec to path. The image format
// follows the file extension.
func PlotSequence(rec gesture.Record, path string) error {
	if len(rec.Accel) == 0 {
		return errors.New("nothing to plot")
	}

	p, err := plot.New()
	if err != nil {
		return errors.Wrap(err, "failed to create plot")
	}
	p.Title.Text = rec.Label()
	if rec.SourceID != "" {
		p.Title.Text += " " + rec.SourceID
	}
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "m/s²"

	lines := Channels(rec.Accel)
	var args []interface{}
	for axis, xys := range lines {
		args = append(args, axisNames[axis], xys)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return errors.Wrap(err, "failed to add lines")
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}
