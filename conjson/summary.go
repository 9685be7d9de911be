/*
 * summary.go, part of gocon.
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

package conjson

import con "github.com/rmera/gocon"

// Species describes one species block of a frame.
type Species struct {
	Symbol       string  `json:"symbol" yaml:"symbol"`
	AtomicNumber int     `json:"atomic_number" yaml:"atomic_number"`
	Count        int     `json:"count" yaml:"count"`
	Mass         float64 `json:"mass" yaml:"mass"`
}

// Summary describes a CON file through its frame count and its last frame.
type Summary struct {
	File     string     `json:"file" yaml:"file"`
	Frames   int        `json:"frames" yaml:"frames"`
	Cell     [3]float64 `json:"cell" yaml:"cell,flow"`
	Angles   [3]float64 `json:"angles" yaml:"angles,flow"`
	Atoms    int        `json:"atoms" yaml:"atoms"`
	Species  []Species  `json:"species" yaml:"species"`
	LastAtom *Atom      `json:"last_atom,omitempty" yaml:"last_atom,omitempty"`
	Error    *Error     `json:"error,omitempty" yaml:"error,omitempty"` //what stopped the reading, if anything
}

// Summarize returns the summary of a file with the given number of frames,
// the last of which is last.
func Summarize(file string, frames int, last *con.Frame) *Summary {
	S := &Summary{File: file, Frames: frames}
	if last == nil {
		return S
	}
	S.Cell = last.Cell()
	S.Angles = last.Angles()
	S.Atoms = last.Len()
	for _, b := range last.Species() {
		sym, _ := con.AtomicNumberToSymbol(b.AtomicNumber)
		S.Species = append(S.Species, Species{Symbol: sym, AtomicNumber: b.AtomicNumber, Count: b.Len(), Mass: b.Mass})
	}
	if n := last.Len(); n > 0 {
		J := FromFrame(last)
		S.LastAtom = &J.Atoms[n-1]
	}
	return S
}
