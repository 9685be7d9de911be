/*
 * plot_test.go, part of gocon.
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

package conplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	con "github.com/rmera/gocon"
)

// TestLengthsPlot plots the cell lengths of a short trajectory.
func TestLengthsPlot(Te *testing.T) {
	frames, err := con.ReadFile("../test/tiny_multi_cuh2.con")
	require.NoError(Te, err)
	S := Lengths(frames, 0)
	require.Equal(Te, 3, S.Len())
	assert.Equal(Te, []int{0, 1, 2}, S.Frames)

	dir := Te.TempDir()
	for _, name := range []string{"cell.png", "cell.svg"} {
		out := filepath.Join(dir, name)
		require.NoError(Te, LengthsPlot(S, "Cell", out))
		info, err := os.Stat(out)
		require.NoError(Te, err)
		assert.NotZero(Te, info.Size(), name)
	}
}

func TestAnglesPlot(Te *testing.T) {
	S := new(Series)
	S.Add(4, [3]float64{90, 90, 120})
	S.Add(8, [3]float64{90, 91, 120})
	out := filepath.Join(Te.TempDir(), "angles.png")
	require.NoError(Te, AnglesPlot(S, "Angles", out))
}

func TestEmptyPlot(Te *testing.T) {
	err := LengthsPlot(new(Series), "Nothing", filepath.Join(Te.TempDir(), "x.png"))
	assert.Error(Te, err)
}
