package ga

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePlot renders best and mean fitness per generation to path. The image
// format follows the file extension (.png, .svg, .pdf, ...).
func (h History) SavePlot(path string) error {
	if len(h) == 0 {
		return errors.New("no generations recorded")
	}

	p := plot.New()
	p.Title.Text = "Fitness per generation"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness"

	bestPts := make(plotter.XYs, len(h))
	meanPts := make(plotter.XYs, len(h))
	for i, gs := range h {
		bestPts[i].X = float64(gs.Epoch)
		bestPts[i].Y = gs.Best
		meanPts[i].X = float64(gs.Epoch)
		meanPts[i].Y = gs.Mean
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return fmt.Errorf("failed to build best line: %w", err)
	}
	bestLine.Color = color.RGBA{R: 200, A: 255}

	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return fmt.Errorf("failed to build mean line: %w", err)
	}
	meanLine.Color = color.RGBA{B: 200, A: 255}
	meanLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot '%s': %w", path, err)
	}
	return nil
}
