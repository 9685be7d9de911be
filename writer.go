/*
 * writer.go, part of gocon.
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
	"errors"
	"fmt"
	"io"
)

// Writer appends frames to a CON stream. A Writer must only be used by one
// goroutine at a time.
type Writer struct {
	w         *bufio.Writer
	closers   []io.Closer //closed in order by Close
	filename  string
	prec      int
	writeable bool
	frames    int
}

// NewWriter returns a Writer that writes to w. If O is nil, DefaultOptions
// are used. Closing the Writer flushes it, but doesn't close w.
func NewWriter(w io.Writer, O *Options) *Writer {
	if O == nil {
		O = DefaultOptions()
	}
	return &Writer{w: bufio.NewWriter(w), prec: O.Prec(), writeable: true}
}

// Append writes the frames, in order. Calling it with no frames does nothing.
// Each frame is fully serialized before any of it is written, so a frame
// that can't be serialized (say, an atom with an unknown atomic number)
// is not written at all. There is no rollback, though: the frames before
// the failing one stay written, and are flushed.
func (W *Writer) Append(frames ...*Frame) error {
	if len(frames) == 0 {
		return nil
	}
	if !W.writeable {
		return newError(IOError, 0, "writer is closed", nil, "Append")
	}
	for i, F := range frames {
		if F == nil {
			return W.flushAfter(newError(InvalidFrame, 0, fmt.Sprintf("frame %d is nil", i), nil, "Append"))
		}
		b, err := marshalFrame(F, W.prec)
		if err != nil {
			return W.flushAfter(errDecorate(err, fmt.Sprintf("Append: frame %d", i), W.filename))
		}
		if _, err = W.w.Write(b); err != nil {
			return errDecorate(err, fmt.Sprintf("Append: frame %d", i), W.filename)
		}
		W.frames++
	}
	if err := W.w.Flush(); err != nil {
		return errDecorate(err, "Append", W.filename)
	}
	return nil
}

// flushAfter flushes the frames written before the failure err. If that
// fails too, both errors are returned, err first.
func (W *Writer) flushAfter(err error) error {
	if ferr := W.w.Flush(); ferr != nil {
		return errors.Join(err, errDecorate(ferr, "Append: flush", W.filename))
	}
	return err
}

// Frames returns the number of frames written so far.
func (W *Writer) Frames() int {
	return W.frames
}

// Close flushes the writer and closes whatever it opened (compressor and
// file, if it was obtained from Create). It is safe to call more than once.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	err := W.w.Flush()
	for _, c := range W.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return errDecorate(err, "Close", W.filename)
}
