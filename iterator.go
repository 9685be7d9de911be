/*
 * iterator.go, part of gocon.
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
	"io"
	"iter"
)

// Iterator reads the frames of a CON stream, one at a time.
// An Iterator must only be used by one goroutine at a time.
//
// Once Next or Forward finds a malformed frame, or the stream fails, the
// error is latched: the position in the stream can't be trusted anymore,
// so every later call returns the same error. The end of the stream is
// also final.
type Iterator struct {
	lr       *lineReader
	closers  []io.Closer
	filename string
	err      error           //latched format or I/O error
	end      *lastFrameError //non-nil once the stream ended cleanly
	closed   bool
	frames   int
}

// NewIterator returns an Iterator reading from r.
func NewIterator(r io.Reader) *Iterator {
	return &Iterator{lr: newLineReader(r)}
}

// Readable returns true if it is possible to call Next on the iterator and
// possibly get a frame.
func (I *Iterator) Readable() bool {
	return I.err == nil && I.end == nil && !I.closed
}

// Next returns the next frame of the stream. At the end of the stream the
// error implements LastFrameError (and errors.Is(err, io.EOF) is true).
// Other errors are *Error.
func (I *Iterator) Next() (*Frame, error) {
	if err := I.terminal(); err != nil {
		return nil, err
	}
	F, err := readFrame(I.lr)
	if err != nil {
		return nil, I.stop(err, "Next")
	}
	I.frames++
	return F, nil
}

// Forward skips the next frame. Only the lines needed to know how long the
// frame is (the number of species and the atoms per species) are parsed,
// the rest are discarded without being looked at, so a malformed atom line
// is not noticed. It returns false if there was no frame to skip, either
// because the stream ended or because of an error, which is then available
// from Err.
func (I *Iterator) Forward() bool {
	if I.terminal() != nil {
		return false
	}
	if err := I.skipFrame(); err != nil {
		I.stop(err, "Forward")
		return false
	}
	I.frames++
	return true
}

func (I *Iterator) skipFrame() error {
	L := I.lr
	end, err := L.atEnd()
	if err != nil {
		return newError(IOError, L.line+1, "", err)
	}
	if end {
		return io.EOF
	}
	for i := 0; i < headerLines-3; i++ {
		if err := L.needSkip("header"); err != nil {
			return err
		}
	}
	s, err := L.need("number of species")
	if err != nil {
		return err
	}
	nspecies, err := parseCounts(s, 1, L.line, "number of species")
	if err != nil {
		return err
	}
	if s, err = L.need("atoms per species"); err != nil {
		return err
	}
	counts, err := parseCounts(s, nspecies[0], L.line, "atoms per species")
	if err != nil {
		return err
	}
	if err = L.needSkip("masses per species"); err != nil {
		return err
	}
	//a symbol line and a count line per species, plus the atoms.
	n := 2 * nspecies[0]
	for _, c := range counts {
		n += c
	}
	for i := 0; i < n; i++ {
		if err := L.needSkip("species block"); err != nil {
			return err
		}
	}
	return nil
}

// terminal returns the error that Next should return without reading, if any.
func (I *Iterator) terminal() error {
	switch {
	case I.err != nil:
		return I.err
	case I.end != nil:
		return I.end
	case I.closed:
		return newError(IOError, 0, "iterator is closed", nil, "Next")
	}
	return nil
}

// stop latches the end of the stream or the error err, and releases the
// underlying file, as nothing else will be read from it.
func (I *Iterator) stop(err error, caller string) error {
	if err == io.EOF {
		I.end = newlastFrameError(I.filename, caller)
		I.release()
		return I.end
	}
	I.err = errDecorate(err, caller, I.filename)
	I.release()
	return I.err
}

// Err returns the error that stopped the iterator, or nil if it is still
// readable or if the stream ended normally.
func (I *Iterator) Err() error {
	return I.err
}

// Frames returns the number of frames read or skipped so far.
func (I *Iterator) Frames() int {
	return I.frames
}

// All returns a range-over-func view of the remaining frames. The sequence
// stops at the end of the stream, or after yielding an error.
//
//	for F, err := range it.All() {
//		if err != nil {
//			return err
//		}
//		...
//	}
func (I *Iterator) All() iter.Seq2[*Frame, error] {
	return func(yield func(*Frame, error) bool) {
		for {
			F, err := I.Next()
			if err != nil {
				if _, ok := err.(LastFrameError); !ok {
					yield(nil, err)
				}
				return
			}
			if !yield(F, nil) {
				return
			}
		}
	}
}

func (I *Iterator) release() error {
	var err error
	for _, c := range I.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	I.closers = nil
	return err
}

// Close releases the underlying file, if the iterator was obtained from Open.
// After Close, Next and Forward stop working. It is safe to call Close more
// than once, and after the end of the stream.
func (I *Iterator) Close() error {
	if I == nil {
		return nil
	}
	I.closed = true
	return errDecorate(I.release(), "Close", I.filename)
}
