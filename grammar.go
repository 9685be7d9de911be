/*
 * grammar.go, part of gocon.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//The line grammar: a CON line is a whitespace-separated list of fields, and
//every structural line has a fixed number of them. These helpers only check
//arity and number syntax. Whether a value makes sense is decided by the codec.

func splitFields(line string, n, lineno int, what string) ([]string, error) {
	f := strings.Fields(line)
	if len(f) != n {
		return nil, newError(MalformedHeader, lineno, fmt.Sprintf("%s: expected %d fields, found %d", what, n, len(f)), nil)
	}
	return f, nil
}

func parseFloat(s string, lineno int, what string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newError(MalformedNumber, lineno, fmt.Sprintf("%s: can't parse %q as a real number", what, s), nil)
	}
	return v, nil
}

// parseFloats reads exactly n reals from line.
func parseFloats(line string, n, lineno int, what string) ([]float64, error) {
	f, err := splitFields(line, n, lineno, what)
	if err != nil {
		return nil, err
	}
	ret := make([]float64, n)
	for i, v := range f {
		if ret[i], err = parseFloat(v, lineno, what); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func parseCount(s string, lineno int, what string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, newError(MalformedNumber, lineno, fmt.Sprintf("%s: can't parse %q as a non-negative integer", what, s), nil)
	}
	return int(v), nil
}

// parseCounts reads exactly n non-negative integers from line.
func parseCounts(line string, n, lineno int, what string) ([]int, error) {
	f, err := splitFields(line, n, lineno, what)
	if err != nil {
		return nil, err
	}
	ret := make([]int, n)
	for i, v := range f {
		if ret[i], err = parseCount(v, lineno, what); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// parseFlag reads a fixed/free flag. "1.0" and "0.0" are accepted, since some
// writers print the flag as a real.
func parseFlag(s string, lineno int) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && (f == 0 || f == 1) {
		return f == 1, nil
	}
	return false, newError(MalformedNumber, lineno, fmt.Sprintf("fixed flag must be 0 or 1, not %q", s), nil)
}

// parseSite reads an atom line: x y z atom_id fixed_flag
func parseSite(line string, lineno int) (Site, error) {
	var s Site
	f, err := splitFields(line, 5, lineno, "atom line")
	if err != nil {
		return s, err
	}
	if s.X, err = parseFloat(f[0], lineno, "atom line"); err != nil {
		return s, err
	}
	if s.Y, err = parseFloat(f[1], lineno, "atom line"); err != nil {
		return s, err
	}
	if s.Z, err = parseFloat(f[2], lineno, "atom line"); err != nil {
		return s, err
	}
	if s.ID, err = strconv.ParseUint(f[3], 10, 64); err != nil {
		return s, newError(MalformedNumber, lineno, fmt.Sprintf("atom line: can't parse atom id %q", f[3]), nil)
	}
	s.Fixed, err = parseFlag(f[4], lineno)
	return s, err
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func joinFloats(v []float64, prec int) string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = formatFloat(f, prec)
	}
	return strings.Join(s, " ")
}

// lineReader hands out the lines of a stream, without their terminators
// ("\n" or "\r\n"), and keeps the count of the lines consumed so far.
// Lines read ahead by atEnd are kept in pending and handed out first.
type lineReader struct {
	r       *bufio.Reader
	line    int
	pending []string
}

func newLineReader(r io.Reader) *lineReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 64*1024)
	}
	return &lineReader{r: br}
}

// read gets a line from the underlying reader. A last line with no
// terminator is still a line. io.EOF is only returned when nothing was read.
func (L *lineReader) read() (string, error) {
	s, err := L.r.ReadString('\n')
	if err != nil {
		if err != io.EOF || s == "" {
			return "", err
		}
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// next returns the next line.
func (L *lineReader) next() (string, error) {
	if len(L.pending) > 0 {
		s := L.pending[0]
		L.pending = L.pending[1:]
		L.line++
		return s, nil
	}
	s, err := L.read()
	if err != nil {
		return "", err
	}
	L.line++
	return s, nil
}

// skip discards the next line without building a string from it.
func (L *lineReader) skip() error {
	if len(L.pending) > 0 {
		L.pending = L.pending[1:]
		L.line++
		return nil
	}
	partial := false
	for {
		b, err := L.r.ReadSlice('\n')
		switch {
		case err == bufio.ErrBufferFull:
			partial = true
			continue
		case err == io.EOF:
			if len(b) == 0 && !partial {
				return io.EOF
			}
		case err != nil:
			return err
		}
		L.line++
		return nil
	}
}

// atEnd reports whether only blank lines remain in the stream. The lines
// it needs to look at are kept, so a frame whose first header lines are
// empty is not lost. If it returns true, the blank lines are dropped.
func (L *lineReader) atEnd() (bool, error) {
	for i := 0; ; i++ {
		if i < len(L.pending) {
			if strings.TrimSpace(L.pending[i]) != "" {
				return false, nil
			}
			continue
		}
		s, err := L.read()
		if err == io.EOF {
			L.pending = nil
			return true, nil
		}
		if err != nil {
			return false, err
		}
		L.pending = append(L.pending, s)
		if strings.TrimSpace(s) != "" {
			return false, nil
		}
	}
}

// need is next for lines that must exist: running out of input is a
// TruncatedFrame error.
func (L *lineReader) need(what string) (string, error) {
	s, err := L.next()
	if err == io.EOF {
		return "", newError(TruncatedFrame, L.line+1, "input ended while expecting the "+what, nil)
	}
	if err != nil {
		return "", newError(IOError, L.line+1, "", err)
	}
	return s, nil
}

// needSkip is skip for lines that must exist.
func (L *lineReader) needSkip(what string) error {
	err := L.skip()
	if err == io.EOF {
		return newError(TruncatedFrame, L.line+1, "input ended while expecting the "+what, nil)
	}
	if err != nil {
		return newError(IOError, L.line+1, "", err)
	}
	return nil
}
