/*
 * files.go, part of gocon.
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
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// zstdCloser makes a *zstd.Decoder an io.Closer. Its Close method
// doesn't return an error.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// prepSource returns a reader that reads the contents of f,
// decompressing them first if needed, and the things to close, in order,
// once reading is over.
func prepSource(f *os.File, format string) (io.Reader, []io.Closer, error) {
	reader := bufio.NewReader(f)
	switch format {
	case Gzip:
		z, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, err
		}
		return z, []io.Closer{z, f}, nil
	case Zstd:
		z, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, err
		}
		return z, []io.Closer{zstdCloser{z}, f}, nil
	}
	return reader, []io.Closer{f}, nil
}

// prepSink is the writing counterpart of prepSource.
func prepSink(f *os.File, format string, level int) (io.Writer, []io.Closer, error) {
	switch format {
	case Gzip:
		z, err := gzip.NewWriterLevel(f, level)
		if err != nil {
			return nil, nil, err
		}
		return z, []io.Closer{z, f}, nil
	case Zstd:
		var opts []zstd.EOption
		if level > 0 {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevel(level)))
		}
		z, err := zstd.NewWriter(f, opts...)
		if err != nil {
			return nil, nil, err
		}
		return z, []io.Closer{z, f}, nil
	}
	return f, []io.Closer{f}, nil
}

// Open opens the CON file name for reading. Files ending in .gz or .zst
// (or .zstd) are decompressed on the fly. Frames are read from the file as
// they are requested: the file is never loaded whole.
func Open(name string) (*Iterator, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errDecorate(err, "Open", name)
	}
	r, closers, err := prepSource(f, formatFromName(name))
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "Open", name)
	}
	I := NewIterator(r)
	I.filename = name
	I.closers = closers
	return I, nil
}

// Create creates or truncates the file name, and returns a Writer for it.
// The file is truncated right away, even if no frame is ever appended.
// The compression format is taken from O or, if O doesn't set one, from
// the file name (see Open). If O is nil, DefaultOptions are used.
func Create(name string, O *Options) (*Writer, error) {
	if O == nil {
		O = DefaultOptions()
	}
	format := O.Compression()
	if format == "" {
		format = formatFromName(name)
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, errDecorate(err, "Create", name)
	}
	w, closers, err := prepSink(f, format, O.Level())
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "Create", name)
	}
	W := NewWriter(w, O)
	W.filename = name
	W.closers = closers
	return W, nil
}

// ReadFile reads all the frames in the file name. If a frame can't be read,
// the frames before it are returned together with the error.
func ReadFile(name string) ([]*Frame, error) {
	I, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer I.Close()
	var frames []*Frame
	for {
		F, err := I.Next()
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				return frames, nil
			}
			return frames, err
		}
		frames = append(frames, F)
	}
}

// WriteFile writes frames to the file name, which is created or truncated.
// If O is nil, DefaultOptions are used.
func WriteFile(name string, O *Options, frames ...*Frame) error {
	W, err := Create(name, O)
	if err != nil {
		return err
	}
	err = W.Append(frames...)
	if cerr := W.Close(); err == nil {
		err = cerr
	}
	return err
}
