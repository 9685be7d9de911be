/*
 * codec.go, part of gocon.
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
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Number of lines in a frame header, before the first species block.
const headerLines = 9

// ParseFrame parses the first frame in text. Anything after that frame is
// ignored. If text contains nothing but whitespace, the error is a
// LastFrameError.
func ParseFrame(text string) (*Frame, error) {
	F, err := readFrame(newLineReader(strings.NewReader(text)))
	if err == io.EOF {
		return nil, newlastFrameError("", "ParseFrame")
	}
	if err != nil {
		return nil, errDecorate(err, "ParseFrame", "")
	}
	return F, nil
}

// readFrame parses the next frame from L. It returns io.EOF, and nothing
// else, if L is at a frame boundary with only blank lines left. Running out
// of lines anywhere else is a TruncatedFrame error.
func readFrame(L *lineReader) (*Frame, error) {
	end, err := L.atEnd()
	if err != nil {
		return nil, newError(IOError, L.line+1, "", err)
	}
	if end {
		return nil, io.EOF
	}
	line := L.need
	var prebox, postbox [2]string
	var cell, angles [3]float64
	for i := range prebox {
		if prebox[i], err = line("header"); err != nil {
			return nil, err
		}
	}
	s, err := line("cell lengths")
	if err != nil {
		return nil, err
	}
	v, err := parseFloats(s, 3, L.line, "cell lengths")
	if err != nil {
		return nil, err
	}
	for i, c := range v {
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, newError(MalformedHeader, L.line, fmt.Sprintf("invalid cell length %s", s), nil)
		}
		cell[i] = c
	}
	if s, err = line("cell angles"); err != nil {
		return nil, err
	}
	if v, err = parseFloats(s, 3, L.line, "cell angles"); err != nil {
		return nil, err
	}
	for i, a := range v {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, newError(MalformedHeader, L.line, fmt.Sprintf("invalid cell angle %s", s), nil)
		}
		angles[i] = a
	}
	for i := range postbox {
		if postbox[i], err = line("header"); err != nil {
			return nil, err
		}
	}
	if s, err = line("number of species"); err != nil {
		return nil, err
	}
	nspecies, err := parseCounts(s, 1, L.line, "number of species")
	if err != nil {
		return nil, err
	}
	K := nspecies[0]
	if s, err = line("atoms per species"); err != nil {
		return nil, err
	}
	counts, err := parseCounts(s, K, L.line, "atoms per species")
	if err != nil {
		return nil, err
	}
	if s, err = line("masses per species"); err != nil {
		return nil, err
	}
	masses, err := parseFloats(s, K, L.line, "masses per species")
	if err != nil {
		return nil, err
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	atoms := make([]Atom, 0, min(total, 1<<20))
	seen := make(map[int]float64, K) //mass of each species read so far
	ids := make(map[uint64]struct{}, min(total, 1<<20))
	for k := 0; k < K; k++ {
		if s, err = line("species symbol"); err != nil {
			return nil, err
		}
		f, err := splitFields(s, 1, L.line, "species symbol")
		if err != nil {
			return nil, err
		}
		z, err := SymbolToAtomicNumber(f[0])
		if err != nil {
			err.(*Error).Line = L.line
			return nil, err
		}
		if m, ok := seen[z]; ok && m != masses[k] {
			return nil, newError(MalformedHeader, L.line, fmt.Sprintf("species %s appears with masses %v and %v", f[0], m, masses[k]), nil)
		}
		seen[z] = masses[k]
		if s, err = line("atom count of species " + f[0]); err != nil {
			return nil, err
		}
		n, err := blockCount(s, L.line, counts[k])
		if err != nil {
			return nil, err
		}
		if n != counts[k] {
			return nil, newError(SpeciesCountMismatch, L.line, fmt.Sprintf("species %s (block %d) has %d atoms, the header says %d", f[0], k+1, n, counts[k]), nil)
		}
		for j := 0; j < n; j++ {
			if s, err = line("atom line"); err != nil {
				return nil, err
			}
			site, err := parseSite(s, L.line)
			if err != nil {
				return nil, err
			}
			if _, dup := ids[site.ID]; dup {
				return nil, newError(MalformedHeader, L.line, fmt.Sprintf("atom id %d appears more than once", site.ID), nil)
			}
			ids[site.ID] = struct{}{}
			atoms = append(atoms, Atom{
				AtomicNumber: z,
				X:            site.X,
				Y:            site.Y,
				Z:            site.Z,
				ID:           site.ID,
				Mass:         masses[k],
				Fixed:        site.Fixed,
			})
		}
	}
	if len(atoms) != total {
		return nil, newError(SpeciesCountMismatch, L.line, fmt.Sprintf("read %d atom lines, the header says %d", len(atoms), total), nil)
	}
	return newFrame(prebox, cell, angles, postbox, atoms), nil
}

// blockCount reads the line that follows a species symbol. It normally holds
// the atom count of the block and one more field, which is ignored. The
// "Coordinates of Component N" label that eOn writes there is also accepted,
// and then the count from the frame header (expected) is used.
func blockCount(s string, lineno, expected int) (int, error) {
	f := strings.Fields(s)
	if len(f) > 0 && f[0] == "Coordinates" {
		return expected, nil
	}
	if len(f) != 2 {
		return 0, newError(MalformedHeader, lineno, fmt.Sprintf("atom count line: expected 2 fields, found %d", len(f)), nil)
	}
	return parseCount(f[0], lineno, "atom count")
}

// FormatFrame returns the CON text for F, with reals written with the
// shortest representation that reads back to the same value.
func FormatFrame(F *Frame) (string, error) {
	b, err := marshalFrame(F, -1)
	if err != nil {
		return "", errDecorate(err, "FormatFrame", "")
	}
	return string(b), nil
}

// WriteFrame writes F to w in CON format. If O is nil, DefaultOptions are used.
// Only the precision is taken from O: compression is a property of files,
// see Create.
func WriteFrame(w io.Writer, F *Frame, O *Options) error {
	if O == nil {
		O = DefaultOptions()
	}
	b, err := marshalFrame(F, O.Prec())
	if err != nil {
		return errDecorate(err, "WriteFrame", "")
	}
	if _, err = w.Write(b); err != nil {
		return errDecorate(err, "WriteFrame", "")
	}
	return nil
}

// marshalFrame serializes F. Nothing is produced unless every species can
// be named, so a failed frame never leaves half-written text behind.
func marshalFrame(F *Frame, prec int) ([]byte, error) {
	blocks := Group(F.atoms)
	syms := make([]string, len(blocks))
	for i, b := range blocks {
		s, err := AtomicNumberToSymbol(b.AtomicNumber)
		if err != nil {
			return nil, err
		}
		syms[i] = s
	}
	var buf bytes.Buffer
	buf.Grow(64*len(F.atoms) + 256)
	ln := func(s string) {
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
	ln(F.prebox[0])
	ln(F.prebox[1])
	ln(joinFloats(F.cell[:], prec))
	ln(joinFloats(F.angles[:], prec))
	ln(F.postbox[0])
	ln(F.postbox[1])
	ln(strconv.Itoa(len(blocks)))
	counts := speciesCounts(blocks)
	cs := make([]string, len(counts))
	ms := make([]float64, len(blocks))
	for i, c := range counts {
		cs[i] = strconv.Itoa(c)
		ms[i] = blocks[i].Mass
	}
	ln(strings.Join(cs, " "))
	ln(joinFloats(ms, prec))
	for i, b := range blocks {
		ln(syms[i])
		ln(strconv.Itoa(len(b.Sites)) + " " + strconv.Itoa(i+1))
		for _, s := range b.Sites {
			flag := "0"
			if s.Fixed {
				flag = "1"
			}
			ln(formatFloat(s.X, prec) + " " + formatFloat(s.Y, prec) + " " + formatFloat(s.Z, prec) + " " + strconv.FormatUint(s.ID, 10) + " " + flag)
		}
	}
	return buf.Bytes(), nil
}
