/*
 * species.go, part of gocon.
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

// Site is the per-atom data stored in a species block: everything about an
// atom except what it shares with the rest of its species.
type Site struct {
	X, Y, Z float64
	ID      uint64
	Fixed   bool
}

// SpeciesBlock is a run of atoms of one species, as stored in a CON file.
type SpeciesBlock struct {
	AtomicNumber int
	Mass         float64
	Sites        []Site
}

// Len returns the number of atoms in the block.
func (B SpeciesBlock) Len() int {
	return len(B.Sites)
}

// Flatten concatenates the blocks, in order, into one slice of atoms.
// Each atom gets the atomic number and mass of its block.
func Flatten(blocks []SpeciesBlock) []Atom {
	n := 0
	for _, b := range blocks {
		n += len(b.Sites)
	}
	atoms := make([]Atom, 0, n)
	for _, b := range blocks {
		for _, s := range b.Sites {
			atoms = append(atoms, Atom{
				AtomicNumber: b.AtomicNumber,
				X:            s.X,
				Y:            s.Y,
				Z:            s.Z,
				ID:           s.ID,
				Mass:         b.Mass,
				Fixed:        s.Fixed,
			})
		}
	}
	return atoms
}

// Group is the inverse of Flatten. Blocks come in the order in which each
// atomic number first appears in atoms, and each block takes the mass of its
// first atom. If the atoms of a species are not contiguous they are
// gathered, keeping their relative order, into that species' only block,
// since a CON file stores each species once.
func Group(atoms []Atom) []SpeciesBlock {
	blocks := make([]SpeciesBlock, 0, 4)
	index := make(map[int]int, 4) //atomic number -> position in blocks
	prev := -1                    //index of the block of the previous atom
	for _, a := range atoms {
		var bi int
		if prev >= 0 && blocks[prev].AtomicNumber == a.AtomicNumber {
			bi = prev
		} else if i, ok := index[a.AtomicNumber]; ok {
			bi = i
		} else {
			blocks = append(blocks, SpeciesBlock{AtomicNumber: a.AtomicNumber, Mass: a.Mass})
			bi = len(blocks) - 1
			index[a.AtomicNumber] = bi
		}
		blocks[bi].Sites = append(blocks[bi].Sites, Site{X: a.X, Y: a.Y, Z: a.Z, ID: a.ID, Fixed: a.Fixed})
		prev = bi
	}
	return blocks
}

// speciesCounts returns the number of atoms in each block.
func speciesCounts(blocks []SpeciesBlock) []int {
	c := make([]int, len(blocks))
	for i, b := range blocks {
		c[i] = len(b.Sites)
	}
	return c
}
