package main

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExpFit is a least-squares fit of d(k) = D0 * exp(-Lambda * k).
type ExpFit struct {
	D0     float64
	Lambda float64
}

// At evaluates the fitted curve at k.
func (f ExpFit) At(k float64) float64 {
	return f.D0 * math.Exp(-f.Lambda*k)
}

// fitExpDecay fits an exponential to the series with Nelder-Mead over
// (d0, lambda).
func fitExpDecay(series []float64) ExpFit {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			d0, lambda := x[0], x[1]
			var sse float64
			for k, v := range series {
				r := v - d0*math.Exp(-lambda*float64(k))
				sse += r * r
			}
			return sse
		},
	}

	init := []float64{series[0], 0.1}
	result, err := optimize.Minimize(problem, init, nil, &optimize.NelderMead{})
	if err != nil {
		// Nelder-Mead on a smooth 2-D objective only fails on degenerate
		// input; fall back to the raw initial guess.
		return ExpFit{D0: init[0], Lambda: init[1]}
	}
	return ExpFit{D0: result.X[0], Lambda: result.X[1]}
}

// seriesRow is one CSV record of measured and fitted values.
type seriesRow struct {
	K        int     `csv:"k"`
	Measured float64 `csv:"measured"`
	Fitted   float64 `csv:"fitted"`
}

func writeSeries(path string, series []float64, fit ExpFit) error {
	rows := make([]seriesRow, len(series))
	for k, v := range series {
		rows[k] = seriesRow{K: k, Measured: v, Fitted: fit.At(float64(k))}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func plotSeries(path, title, xLabel, yLabel string, series []float64, fit ExpFit) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	measured := make(plotter.XYs, len(series))
	fitted := make(plotter.XYs, len(series))
	for k, v := range series {
		measured[k] = plotter.XY{X: float64(k), Y: v}
		fitted[k] = plotter.XY{X: float64(k), Y: fit.At(float64(k))}
	}

	mLine, err := plotter.NewLine(measured)
	if err != nil {
		return fmt.Errorf("building measured line: %w", err)
	}
	mLine.Color = color.RGBA{R: 46, G: 110, B: 240, A: 255}

	fLine, err := plotter.NewLine(fitted)
	if err != nil {
		return fmt.Errorf("building fitted line: %w", err)
	}
	fLine.Color = color.RGBA{R: 230, G: 90, B: 40, A: 255}
	fLine.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(mLine, fLine)
	p.Legend.Add("measured", mLine)
	p.Legend.Add(fmt.Sprintf("fit %.3g·e^(-%.3g k)", fit.D0, fit.Lambda), fLine)
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
