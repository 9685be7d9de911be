/*
 * frame.go, part of gocon.
 *
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
 *
 *
 * goCon is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package con

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Atom is one atom of a frame.
type Atom struct {
	AtomicNumber int
	X, Y, Z      float64
	ID           uint64
	Mass         float64
	Fixed        bool //true if the position of the atom is held fixed.
}

// Symbol returns the element symbol of the atom, or the empty string if
// its atomic number is not a known element.
func (A Atom) Symbol() string {
	s, err := AtomicNumberToSymbol(A.AtomicNumber)
	if err != nil {
		return ""
	}
	return s
}

// Section identifies one of the two pairs of free-text header lines.
type Section int

const (
	PreBox  Section = iota //the 2 lines before the cell lines
	PostBox                //the 2 lines after the cell lines
)

func (s Section) String() string {
	switch s {
	case PreBox:
		return "prebox"
	case PostBox:
		return "postbox"
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// Frame is one snapshot of a CON file. Frames are immutable: every method
// that "changes" a frame returns a new one, and the accessors return copies.
type Frame struct {
	prebox  [2]string
	cell    [3]float64
	angles  [3]float64
	postbox [2]string
	atoms   []Atom

	snapOnce sync.Once
	snap     *Snapshot
}

// newFrame builds a frame that takes ownership of atoms, without checks.
func newFrame(prebox [2]string, cell, angles [3]float64, postbox [2]string, atoms []Atom) *Frame {
	return &Frame{prebox: prebox, cell: cell, angles: angles, postbox: postbox, atoms: atoms}
}

// NewFrame returns a frame with the given data. The atoms are copied.
// It returns an error of kind InvalidFrame if a header line contains a line
// break, if a cell length is negative or not finite, if an atomic number
// is not a known element, if two atoms with the same atomic number have
// different masses, or if two atoms share an id.
func NewFrame(prebox [2]string, cell, angles [3]float64, postbox [2]string, atoms []Atom) (*Frame, error) {
	for _, h := range [4]string{prebox[0], prebox[1], postbox[0], postbox[1]} {
		if strings.ContainsAny(h, "\r\n") {
			return nil, newError(InvalidFrame, 0, fmt.Sprintf("header line %q contains a line break", h), nil, "NewFrame")
		}
	}
	for i := range cell {
		if cell[i] < 0 || math.IsNaN(cell[i]) || math.IsInf(cell[i], 0) {
			return nil, newError(InvalidFrame, 0, fmt.Sprintf("cell length %v", cell[i]), nil, "NewFrame")
		}
		if math.IsNaN(angles[i]) || math.IsInf(angles[i], 0) {
			return nil, newError(InvalidFrame, 0, fmt.Sprintf("cell angle %v", angles[i]), nil, "NewFrame")
		}
	}
	masses := make(map[int]float64)
	ids := make(map[uint64]int, len(atoms))
	for i, a := range atoms {
		if j, ok := ids[a.ID]; ok {
			return nil, newError(InvalidFrame, 0, fmt.Sprintf("atoms %d and %d have the same id %d", j, i, a.ID), nil, "NewFrame")
		}
		ids[a.ID] = i
		if _, err := AtomicNumberToSymbol(a.AtomicNumber); err != nil {
			return nil, newError(InvalidFrame, 0, fmt.Sprintf("atom %d has atomic number %d", i, a.AtomicNumber), nil, "NewFrame")
		}
		if m, ok := masses[a.AtomicNumber]; ok && m != a.Mass {
			return nil, newError(InvalidFrame, 0, fmt.Sprintf("atom %d has mass %v, but other atoms with atomic number %d have %v", i, a.Mass, a.AtomicNumber, m), nil, "NewFrame")
		}
		masses[a.AtomicNumber] = a.Mass
	}
	ats := make([]Atom, len(atoms))
	copy(ats, atoms)
	return newFrame(prebox, cell, angles, postbox, ats), nil
}

// Cell returns the lengths a, b, c of the simulation cell.
func (F *Frame) Cell() [3]float64 { return F.cell }

// Angles returns the angles alpha, beta, gamma of the simulation cell, in degrees.
func (F *Frame) Angles() [3]float64 { return F.angles }

// Len returns the number of atoms in the frame.
func (F *Frame) Len() int { return len(F.atoms) }

// Atom returns the Atom corresponding to the index i. Panics if
// out of range.
func (F *Frame) Atom(i int) Atom {
	if i < 0 || i >= len(F.atoms) {
		panic("Frame: Requested Atom out of bounds")
	}
	return F.atoms[i]
}

// Atoms returns a copy of the atoms of the frame, in order.
func (F *Frame) Atoms() []Atom {
	ret := make([]Atom, len(F.atoms))
	copy(ret, F.atoms)
	return ret
}

// Species returns the atoms grouped by species, as they are written to a file.
func (F *Frame) Species() []SpeciesBlock {
	return Group(F.atoms)
}

// Header returns the 2 free-text lines of the given section.
func (F *Frame) Header(s Section) [2]string {
	if s == PostBox {
		return F.postbox
	}
	return F.prebox
}

// HeaderLine returns the line i (0 or 1) of the given header section.
func (F *Frame) HeaderLine(s Section, i int) (string, error) {
	if (s != PreBox && s != PostBox) || i < 0 || i > 1 {
		return "", newError(InvalidFrame, 0, fmt.Sprintf("no header line %d in section %v", i, s), nil, "HeaderLine")
	}
	return F.Header(s)[i], nil
}

// HeaderLineInto copies the line i of the given header section into buf,
// C-style: at most len(buf)-1 bytes followed by a NUL byte. It never writes
// past len(buf) nor splits a multi-byte character. It returns the number of
// bytes copied (excluding the NUL) and whether the line had to be truncated.
// An empty buf gets nothing written.
func (F *Frame) HeaderLineInto(s Section, i int, buf []byte) (n int, truncated bool, err error) {
	line, err := F.HeaderLine(s, i)
	if err != nil {
		return 0, false, err
	}
	if len(buf) == 0 {
		return 0, line != "", nil
	}
	n = len(line)
	if n > len(buf)-1 {
		n = len(buf) - 1
		for n > 0 && !utf8.RuneStart(line[n]) {
			n--
		}
		truncated = true
	}
	copy(buf, line[:n])
	buf[n] = 0
	return n, truncated, nil
}

// Snapshot is a flat, read-only view of a frame, handy for numerical work.
// Row i of Coords, and element i of each slice, correspond to atom i.
// Snapshots are shared: they must not be modified.
type Snapshot struct {
	Cell          [3]float64
	Angles        [3]float64
	Coords        *mat.Dense //Nx3, nil if the frame has no atoms.
	AtomicNumbers []int
	Masses        []float64
	IDs           []uint64
	Fixed         []bool
}

// Snapshot returns the flat view of the frame. It is computed the first time
// it is requested, and cached.
func (F *Frame) Snapshot() *Snapshot {
	F.snapOnce.Do(func() {
		n := len(F.atoms)
		s := &Snapshot{
			Cell:          F.cell,
			Angles:        F.angles,
			AtomicNumbers: make([]int, n),
			Masses:        make([]float64, n),
			IDs:           make([]uint64, n),
			Fixed:         make([]bool, n),
		}
		var c []float64
		if n > 0 {
			c = make([]float64, 0, 3*n)
		}
		for i, a := range F.atoms {
			c = append(c, a.X, a.Y, a.Z)
			s.AtomicNumbers[i] = a.AtomicNumber
			s.Masses[i] = a.Mass
			s.IDs[i] = a.ID
			s.Fixed[i] = a.Fixed
		}
		if n > 0 {
			s.Coords = mat.NewDense(n, 3, c)
		}
		F.snap = s
	})
	return F.snap
}

// WithPositions returns a new frame, equal to F except for the atomic
// positions, which are taken from the rows of coords (Nx3, N=F.Len()).
func (F *Frame) WithPositions(coords mat.Matrix) (*Frame, error) {
	r, c := coords.Dims()
	if r != len(F.atoms) || c != 3 {
		return nil, newError(InvalidFrame, 0, fmt.Sprintf("%dx%d coordinates given, %dx3 expected", r, c, len(F.atoms)), nil, "WithPositions")
	}
	atoms := F.Atoms()
	for i := range atoms {
		atoms[i].X = coords.At(i, 0)
		atoms[i].Y = coords.At(i, 1)
		atoms[i].Z = coords.At(i, 2)
	}
	return newFrame(F.prebox, F.cell, F.angles, F.postbox, atoms), nil
}

// Equal returns true if G has the same headers, atomic numbers, ids and
// fixed flags as F, and cell, angles, positions and masses equal within
// tol (absolute or relative).
func (F *Frame) Equal(G *Frame, tol float64) bool {
	if F == nil || G == nil {
		return F == G
	}
	if F.prebox != G.prebox || F.postbox != G.postbox || len(F.atoms) != len(G.atoms) {
		return false
	}
	eq := func(a, b float64) bool { return scalar.EqualWithinAbsOrRel(a, b, tol, tol) }
	for i := range F.cell {
		if !eq(F.cell[i], G.cell[i]) || !eq(F.angles[i], G.angles[i]) {
			return false
		}
	}
	for i, a := range F.atoms {
		b := G.atoms[i]
		if a.AtomicNumber != b.AtomicNumber || a.ID != b.ID || a.Fixed != b.Fixed {
			return false
		}
		if !eq(a.X, b.X) || !eq(a.Y, b.Y) || !eq(a.Z, b.Z) || !eq(a.Mass, b.Mass) {
			return false
		}
	}
	return true
}
