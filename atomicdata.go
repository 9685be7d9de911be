/*
 * atomicdata.go, part of gocon.
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
	"sync"
)

// elementSymbols holds the symbols of the elements, in order of atomic number,
// starting from H (Z=1).
var elementSymbols = [...]string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// symbolTable is the bidirectional symbol <-> atomic number map.
// It is built once, the first time it is needed, and never changed afterwards,
// so it can be read from any number of goroutines.
type symbolTable struct {
	toZ map[string]int
}

var (
	symbolsOnce sync.Once
	symbols     *symbolTable
)

func table() *symbolTable {
	symbolsOnce.Do(func() {
		t := &symbolTable{toZ: make(map[string]int, len(elementSymbols))}
		for i, s := range elementSymbols {
			t.toZ[s] = i + 1
		}
		symbols = t
	})
	return symbols
}

// MaxAtomicNumber is the largest atomic number known to the symbol table.
const MaxAtomicNumber = len(elementSymbols)

// SymbolToAtomicNumber returns the atomic number for the element symbol s.
// The match is exact and case-sensitive ("Cu", not "CU" or "cu").
func SymbolToAtomicNumber(s string) (int, error) {
	z, ok := table().toZ[s]
	if !ok {
		return 0, newError(UnknownSymbol, 0, fmt.Sprintf("%q is not an element symbol", s), nil, "SymbolToAtomicNumber")
	}
	return z, nil
}

// AtomicNumberToSymbol returns the element symbol for the atomic number z.
func AtomicNumberToSymbol(z int) (string, error) {
	if z < 1 || z > len(elementSymbols) {
		return "", newError(UnknownSymbol, 0, fmt.Sprintf("no element with atomic number %d", z), nil, "AtomicNumberToSymbol")
	}
	return elementSymbols[z-1], nil
}
