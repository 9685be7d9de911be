/*
 * doc.go, part of gocon.
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
 * goCon is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

/*
Package con reads and writes CON files, the plain-text structure/trajectory
format used by eOn and related saddle-search codes.

A CON file is a concatenation of frames. Each frame looks like this:

	Random Number Seed            <- 2 free-text lines
	Time
	10.0 10.0 10.0                <- cell lengths a b c
	90.0 90.0 90.0                <- cell angles alpha beta gamma
	0 0                           <- 2 free-text lines
	0 0 0
	2                             <- number of species K
	2 1                           <- atoms per species (K integers)
	1.008 15.999                  <- mass per species (K reals)
	H                             <- for each species: symbol
	2 1                           <- count and an ignored field
	0.0 0.0 0.0 0 0               <- x y z atom_id fixed (count lines)
	0.0 0.0 0.74 1 1
	O
	1 2
	0.0 0.7 0.37 2 0

On disk atoms are grouped by species. In memory a Frame exposes them as a
flat, ordered slice of Atom, each carrying its atomic number and mass. Group
and Flatten convert between both views.

Frames are read one at a time with an Iterator, which can also skip frames
(Forward) without parsing their atoms, and are written with a Writer.
ReadFile and WriteFile are eager conveniences. Files ending in .gz or
.zst are transparently (de)compressed.

The package does no logging and no console I/O. Errors are of type *Error
and carry a Kind and, for format errors, the offending line.
*/
package con
