/*
 * options.go, part of gocon.
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

import "strings"

// Compression formats understood by Open and Create.
const (
	Plain = "plain"
	Gzip  = "gz"
	Zstd  = "zst"
)

// Options contains the settings for writing CON files.
type Options struct {
	prec        int
	compression string //empty means "deduce from the file name"
	level       int
}

// DefaultOptions returns options that write reals with the shortest
// representation that reads back exactly, and deduce the compression from
// the file name.
func DefaultOptions() *Options {
	r := new(Options)
	r.prec = -1
	r.level = -1 //the library's default
	return r
}

// Prec returns the number of decimals used to write reals, and sets it to
// a new value, if given. -1 means "as many as needed to read back the
// same number".
func (O *Options) Prec(p ...int) int {
	if len(p) > 0 && p[0] >= -1 {
		O.prec = p[0]
	}
	return O.prec
}

// Compression returns the compression format for new files, and sets it to
// a new value (Plain, Gzip or Zstd), if given. An empty value means that
// the format will be deduced from the file name. Unknown values are ignored.
func (O *Options) Compression(c ...string) string {
	if len(c) > 0 {
		switch f := strings.ToLower(c[0]); f {
		case "", Plain, Gzip, Zstd:
			O.compression = f
		case "gzip":
			O.compression = Gzip
		case "zstd":
			O.compression = Zstd
		}
	}
	return O.compression
}

// Level returns the compression level, and sets it to a new value, if given.
// For gzip it is the usual 1-9, for zstd 1 (fastest) to 4 (best).
// -1 means the default of the compressor.
func (O *Options) Level(l ...int) int {
	if len(l) > 0 && l[0] >= -1 {
		O.level = l[0]
	}
	return O.level
}

// formatFromName deduces the compression format from a file name.
func formatFromName(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".gz"):
		return Gzip
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return Zstd
	}
	return Plain
}
