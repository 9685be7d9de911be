/*
 * grammar_test.go, part of gocon.
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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFloats(Te *testing.T) {
	v, err := parseFloats(" 1e-3\t-2.5E+2   3 ", 3, 4, "test")
	if err != nil {
		Te.Fatal(err)
	}
	if d := cmp.Diff([]float64{0.001, -250, 3}, v); d != "" {
		Te.Errorf("unexpected values (-want +got):\n%s", d)
	}
	_, err = parseFloats("1 2", 3, 4, "test")
	if e, ok := err.(*Error); !ok || e.Kind != MalformedHeader || e.Line != 4 {
		Te.Errorf("2 fields for 3 reals: got %v", err)
	}
	_, err = parseFloats("1 2 x", 3, 5, "test")
	if e, ok := err.(*Error); !ok || e.Kind != MalformedNumber || e.Line != 5 {
		Te.Errorf("non-numeric field: got %v", err)
	}
}

func TestParseCounts(Te *testing.T) {
	v, err := parseCounts("8 2", 2, 1, "test")
	if err != nil {
		Te.Fatal(err)
	}
	if d := cmp.Diff([]int{8, 2}, v); d != "" {
		Te.Errorf("unexpected counts (-want +got):\n%s", d)
	}
	for _, bad := range []string{"-1", "1.5", "x", "1e3", "99999999999"} {
		if _, err := parseCounts(bad, 1, 1, "test"); !IsKind(err, MalformedNumber) {
			Te.Errorf("%q: expected a malformed number, got %v", bad, err)
		}
	}
}

func TestParseSite(Te *testing.T) {
	s, err := parseSite("0.5 -1.25 3e1 17 1", 1)
	if err != nil {
		Te.Fatal(err)
	}
	if d := cmp.Diff(Site{X: 0.5, Y: -1.25, Z: 30, ID: 17, Fixed: true}, s); d != "" {
		Te.Errorf("unexpected site (-want +got):\n%s", d)
	}
	s, err = parseSite("0 0 0 3 0.0", 1)
	if err != nil || s.Fixed {
		Te.Errorf("flag 0.0: got %v, %v", s, err)
	}
	bad := map[string]Kind{
		"0 0 0 3":       MalformedHeader,
		"0 0 0 3 1 9":   MalformedHeader,
		"0 0 0 -3 1":    MalformedNumber,
		"0 0 0 3 2":     MalformedNumber,
		"0 zero 0 3 1":  MalformedNumber,
		"0 0 0 3 true":  MalformedNumber,
		"0 0 0 3.5 0":   MalformedNumber,
		"0 0 0 3 0.5":   MalformedNumber,
		"0 0 NaNx 3 0":  MalformedNumber,
		"1 2 3 4 5 6 7": MalformedHeader,
	}
	for line, kind := range bad {
		if _, err := parseSite(line, 7); !IsKind(err, kind) {
			Te.Errorf("%q: expected %v, got %v", line, kind, err)
		}
	}
}

func TestFormatFloat(Te *testing.T) {
	cases := []struct {
		v    float64
		prec int
		want string
	}{
		{10, -1, "10"},
		{0.1, -1, "0.1"},
		{-0.757, -1, "-0.757"},
		{6, 6, "6.000000"},
		{1.0 / 3.0, 3, "0.333"},
	}
	for _, c := range cases {
		if got := formatFloat(c.v, c.prec); got != c.want {
			Te.Errorf("formatFloat(%v, %d) = %s, expected %s", c.v, c.prec, got, c.want)
		}
	}
}

func TestLineReader(Te *testing.T) {
	L := newLineReader(strings.NewReader("a\r\nb\n\n c"))
	var got []string
	for {
		s, err := L.next()
		if err != nil {
			break
		}
		got = append(got, s)
	}
	if d := cmp.Diff([]string{"a", "b", "", " c"}, got); d != "" {
		Te.Errorf("unexpected lines (-want +got):\n%s", d)
	}
	if L.line != 4 {
		Te.Errorf("counted %d lines, expected 4", L.line)
	}
}

func TestLineReaderSkipLongLine(Te *testing.T) {
	long := strings.Repeat("1.0 ", 50000) //longer than the reader's buffer
	L := newLineReader(strings.NewReader(long + "\nnext\n"))
	if err := L.skip(); err != nil {
		Te.Fatal(err)
	}
	s, err := L.next()
	if err != nil || s != "next" || L.line != 2 {
		Te.Errorf("got %q, %v at line %d", s, err, L.line)
	}
	if err := L.needSkip("nothing"); !IsKind(err, TruncatedFrame) {
		Te.Errorf("skipping past the end: got %v", err)
	}
}

func TestLineReaderAtEnd(Te *testing.T) {
	L := newLineReader(strings.NewReader("\n \n\t\n"))
	end, err := L.atEnd()
	if err != nil || !end {
		Te.Errorf("whitespace only: got %v, %v", end, err)
	}
	L = newLineReader(strings.NewReader("\n\nX\n"))
	end, err = L.atEnd()
	if err != nil || end {
		Te.Fatalf("blank lines then text: got %v, %v", end, err)
	}
	var got []string
	for i := 0; i < 3; i++ {
		s, err := L.next()
		if err != nil {
			Te.Fatal(err)
		}
		got = append(got, s)
	}
	if d := cmp.Diff([]string{"", "", "X"}, got); d != "" {
		Te.Errorf("lines looked at by atEnd were lost (-want +got):\n%s", d)
	}
	if L.line != 3 {
		Te.Errorf("counted %d lines, expected 3", L.line)
	}
}
