/*
 * writer.go, part of gocon.
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
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	con "github.com/rmera/gocon"
)

// Writer streams frames as JSON (one object per line) or as YAML (one
// document per frame). It fullfills con.FrameSink.
type Writer struct {
	enc      interface{ Encode(any) error }
	close    func() error
	funcname string
}

// NewJSONWriter returns a Writer that writes JSON to out.
func NewJSONWriter(out io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(out), funcname: "JSONWriter"}
}

// NewYAMLWriter returns a Writer that writes YAML to out. The Writer must be
// closed for the output to be complete.
func NewYAMLWriter(out io.Writer) *Writer {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	return &Writer{enc: enc, close: enc.Close, funcname: "YAMLWriter"}
}

// Append encodes the frames, in order.
func (W *Writer) Append(frames ...*con.Frame) error {
	for _, F := range frames {
		if F == nil {
			continue
		}
		if err := W.enc.Encode(FromFrame(F)); err != nil {
			return NewError(W.funcname+".Append", err)
		}
	}
	return nil
}

// Close flushes the Writer. It doesn't close the underlying io.Writer.
func (W *Writer) Close() error {
	if W.close == nil {
		return nil
	}
	c := W.close
	W.close = nil
	if err := c(); err != nil {
		return NewError(W.funcname+".Close", err)
	}
	return nil
}
