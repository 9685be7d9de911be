/*
 * atomicdata_test.go, part of gocon.
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

package con

import (
	"errors"
	"sync"
	"testing"
)

func TestSymbolRoundTrip(Te *testing.T) {
	for z := 1; z <= MaxAtomicNumber; z++ {
		s, err := AtomicNumberToSymbol(z)
		if err != nil {
			Te.Fatalf("atomic number %d: %v", z, err)
		}
		z2, err := SymbolToAtomicNumber(s)
		if err != nil {
			Te.Fatalf("symbol %s: %v", s, err)
		}
		if z2 != z {
			Te.Errorf("%s: got atomic number %d, expected %d", s, z2, z)
		}
	}
	if MaxAtomicNumber != 118 {
		Te.Errorf("table has %d elements", MaxAtomicNumber)
	}
}

func TestKnownSymbols(Te *testing.T) {
	known := map[string]int{"H": 1, "He": 2, "C": 6, "O": 8, "Fe": 26, "Cu": 29, "Pt": 78, "U": 92, "Og": 118}
	for s, z := range known {
		got, err := SymbolToAtomicNumber(s)
		if err != nil || got != z {
			Te.Errorf("%s: got %d, %v, expected %d", s, got, err, z)
		}
	}
}

func TestUnknownSymbols(Te *testing.T) {
	for _, s := range []string{"", "h", "CU", "cu", "Xx", " H", "H ", "Uue"} {
		_, err := SymbolToAtomicNumber(s)
		if !errors.Is(err, ErrUnknownSymbol) {
			Te.Errorf("symbol %q: expected an unknown symbol error, got %v", s, err)
		}
	}
	for _, z := range []int{-1, 0, 119, 1000} {
		_, err := AtomicNumberToSymbol(z)
		if !IsKind(err, UnknownSymbol) {
			Te.Errorf("atomic number %d: expected an unknown symbol error, got %v", z, err)
		}
	}
}

func TestSymbolTableConcurrentReads(Te *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for z := 1; z <= MaxAtomicNumber; z++ {
				s, err := AtomicNumberToSymbol(z)
				if err != nil {
					errs <- err
					return
				}
				if _, err := SymbolToAtomicNumber(s); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		Te.Error(err)
	}
}
