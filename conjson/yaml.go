/*
 * yaml.go, part of gocon.
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

package conjson

import (
	"io"

	"gopkg.in/yaml.v3"

	con "github.com/rmera/gocon"
)

// EncodeYAML writes v to out as a YAML document.
func EncodeYAML(out io.Writer, v any) *Error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return NewError("EncodeYAML", err)
	}
	if err := enc.Close(); err != nil {
		return NewError("EncodeYAML", err)
	}
	return nil
}

// EncodeFramesYAML writes the frames to out, one YAML document per frame.
func EncodeFramesYAML(out io.Writer, frames ...*con.Frame) *Error {
	W := NewYAMLWriter(out)
	if err := W.Append(frames...); err != nil {
		return err.(*Error)
	}
	if err := W.Close(); err != nil {
		return err.(*Error)
	}
	return nil
}

// DecodeFramesYAML reads YAML documents, one frame each, until stream ends.
func DecodeFramesYAML(stream io.Reader) ([]*con.Frame, *Error) {
	const funcname = "DecodeFramesYAML"
	dec := yaml.NewDecoder(stream)
	var frames []*con.Frame
	for {
		J := new(Frame)
		if err := dec.Decode(J); err == io.EOF {
			return frames, nil
		} else if err != nil {
			return frames, NewError(funcname, err)
		}
		F, err := J.ToFrame()
		if err != nil {
			return frames, NewError(funcname, err)
		}
		frames = append(frames, F)
	}
}
