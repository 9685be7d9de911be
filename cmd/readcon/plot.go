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

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	con "github.com/rmera/gocon"
	"github.com/rmera/gocon/conplot"
)

func newPlotCmd() *cobra.Command {
	var every int
	var angles bool
	var title string
	cmd := &cobra.Command{
		Use:   "plot IN OUT",
		Short: "Plot the cell of each frame of a CON file",
		Long: `Plots the cell lengths (or, with --angles, the cell angles) of the frames
of IN against the frame number. The image format is taken from the extension
of OUT (png, svg, pdf...).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if every < 1 {
				return fmt.Errorf("--every must be 1 or more")
			}
			if title == "" {
				title = filepath.Base(args[0])
			}
			return runPlot(cmd, args[0], args[1], every, angles, title)
		},
	}
	cmd.Flags().IntVar(&every, "every", 1, "Plot one frame out of every N")
	cmd.Flags().BoolVar(&angles, "angles", false, "Plot the cell angles instead of the lengths")
	cmd.Flags().StringVar(&title, "title", "", "Plot title (default: the input file name)")
	return cmd
}

func runPlot(cmd *cobra.Command, in, out string, every int, angles bool, title string) error {
	log := logger(cmd)
	it, err := con.Open(in)
	if err != nil {
		return err
	}
	defer it.Close()
	S := new(conplot.Series)
	for {
		index := it.Frames()
		F, err := it.Next()
		if err != nil {
			if _, ok := err.(con.LastFrameError); ok {
				break
			}
			return err
		}
		if angles {
			S.Add(index, F.Angles())
		} else {
			S.Add(index, F.Cell())
		}
		log.Debug("frame read", "frame", index)
		for i := 1; i < every; i++ {
			if !it.Forward() {
				break
			}
		}
		if err := it.Err(); err != nil {
			return err
		}
	}
	if angles {
		err = conplot.AnglesPlot(S, title, out)
	} else {
		err = conplot.LengthsPlot(S, title, out)
	}
	if err != nil {
		return err
	}
	log.Info("plotted", "in", in, "out", out, "frames", S.Len())
	return nil
}
