/*
 * plot.go, part of gocon.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 */

//Package conplot plots the evolution of the simulation cell along a CON
//trajectory.
package conplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	con "github.com/rmera/gocon"
)

// Series holds one value per frame for each of the 3 cell parameters.
type Series struct {
	Frames []int        //the index of each frame in the trajectory
	Values [][3]float64 //a, b, c (or alpha, beta, gamma) for each frame
}

// Add appends the values for the frame with index i.
func (S *Series) Add(i int, v [3]float64) {
	S.Frames = append(S.Frames, i)
	S.Values = append(S.Values, v)
}

// Len returns the number of frames in the series.
func (S *Series) Len() int {
	return len(S.Frames)
}

// Lengths returns the cell lengths of the frames, numbered from first.
func Lengths(frames []*con.Frame, first int) *Series {
	S := new(Series)
	for i, F := range frames {
		S.Add(first+i, F.Cell())
	}
	return S
}

var colors = [3]color.RGBA{
	{R: 200, A: 255},
	{G: 150, A: 255},
	{B: 200, A: 255},
}

func basicCellPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Plot draws the 3 curves of S, labeled with names, and saves the plot to
// plotname. The format is deduced from the extension of plotname
// (png, svg, pdf, eps...).
func Plot(S *Series, names [3]string, title, ylabel, plotname string) error {
	if S == nil || S.Len() == 0 {
		return fmt.Errorf("conplot: no frames to plot")
	}
	p := basicCellPlot(title, ylabel)
	for k := range names {
		pts := make(plotter.XYs, S.Len())
		for i := range pts {
			pts[i].X = float64(S.Frames[i])
			pts[i].Y = S.Values[i][k]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("conplot: %s: %w", names[k], err)
		}
		l.Color = colors[k]
		l.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(names[k], l)
	}
	p.Legend.Top = true
	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotname); err != nil {
		return fmt.Errorf("conplot: %w", err)
	}
	return nil
}

// LengthsPlot plots the cell lengths in S.
func LengthsPlot(S *Series, title, plotname string) error {
	return Plot(S, [3]string{"a", "b", "c"}, title, "Length", plotname)
}

// AnglesPlot plots the cell angles in S.
func AnglesPlot(S *Series, title, plotname string) error {
	return Plot(S, [3]string{"alpha", "beta", "gamma"}, title, "Angle (degrees)", plotname)
}
