/*
 * json.go, part of gocon.
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
	"errors"
	"io"
	"strings"

	con "github.com/rmera/gocon"
)

// A ready-to-serialize container for an atom.
type Atom struct {
	Symbol       string     `json:"symbol" yaml:"symbol"`
	AtomicNumber int        `json:"atomic_number" yaml:"atomic_number"`
	Coords       [3]float64 `json:"coords" yaml:"coords,flow"`
	ID           uint64     `json:"id" yaml:"id"`
	Mass         float64    `json:"mass" yaml:"mass"`
	Fixed        bool       `json:"fixed" yaml:"fixed"`
}

// A ready-to-serialize container for a frame.
type Frame struct {
	PreBox  [2]string  `json:"prebox" yaml:"prebox,flow"`
	Cell    [3]float64 `json:"cell" yaml:"cell,flow"`
	Angles  [3]float64 `json:"angles" yaml:"angles,flow"`
	PostBox [2]string  `json:"postbox" yaml:"postbox,flow"`
	Atoms   []Atom     `json:"atoms" yaml:"atoms"`
}

// FromFrame returns the serializable version of F.
func FromFrame(F *con.Frame) *Frame {
	J := &Frame{
		PreBox:  F.Header(con.PreBox),
		Cell:    F.Cell(),
		Angles:  F.Angles(),
		PostBox: F.Header(con.PostBox),
		Atoms:   make([]Atom, 0, F.Len()),
	}
	for _, a := range F.Atoms() {
		J.Atoms = append(J.Atoms, Atom{
			Symbol:       a.Symbol(),
			AtomicNumber: a.AtomicNumber,
			Coords:       [3]float64{a.X, a.Y, a.Z},
			ID:           a.ID,
			Mass:         a.Mass,
			Fixed:        a.Fixed,
		})
	}
	return J
}

// ToFrame builds a CON frame from J. An atom with no atomic number gets
// the one of its symbol. The frame is validated as by con.NewFrame.
func (J *Frame) ToFrame() (*con.Frame, error) {
	atoms := make([]con.Atom, len(J.Atoms))
	for i, a := range J.Atoms {
		z := a.AtomicNumber
		if z == 0 {
			var err error
			if z, err = con.SymbolToAtomicNumber(a.Symbol); err != nil {
				return nil, err
			}
		}
		atoms[i] = con.Atom{
			AtomicNumber: z,
			X:            a.Coords[0],
			Y:            a.Coords[1],
			Z:            a.Coords[2],
			ID:           a.ID,
			Mass:         a.Mass,
			Fixed:        a.Fixed,
		}
	}
	return con.NewFrame(J.PreBox, J.Cell, J.Angles, J.PostBox, atoms)
}

// An easily JSON-serializable error type.
type Error struct {
	deco     []string
	IsError  bool   `json:"is_error" yaml:"is_error"` //If this is false (no error) all the other fields will be at their zero-values.
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Function string `json:"function" yaml:"function"` //which go function gave the error
	Message  string `json:"message" yaml:"message"`   //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and the name of the function where it happened, and
// creates a JSON-marshal-able error. The details of CON errors are kept.
func NewError(function string, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Message: err.Error()}
	var cerr *con.Error
	if errors.As(err, &cerr) {
		jerr.Kind = cerr.Kind.String()
		jerr.File = cerr.FileName()
		jerr.Line = cerr.Line
	}
	return jerr
}

// EncodeFrames writes the frames to out as JSON, one object per line.
func EncodeFrames(out io.Writer, frames ...*con.Frame) *Error {
	if err := NewJSONWriter(out).Append(frames...); err != nil {
		return err.(*Error)
	}
	return nil
}

// DecodeFrames reads JSON frames from stream until it ends.
func DecodeFrames(stream io.Reader) ([]*con.Frame, *Error) {
	const funcname = "DecodeFrames"
	dec := json.NewDecoder(stream)
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
