/*
 * errors.go, part of gocon.
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
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind classifies the errors returned by this package.
type Kind int

const (
	//IOError means that opening, reading or writing the underlying stream failed.
	IOError Kind = iota + 1
	//TruncatedFrame means that the input ended in the middle of a frame.
	TruncatedFrame
	//MalformedHeader means that a line has the wrong number of fields, or
	//a value that makes no sense where it is.
	MalformedHeader
	//MalformedNumber means that a field that should be a number isn't.
	MalformedNumber
	//SpeciesCountMismatch means that the atom count of a species block does
	//not match the per-species count line of the frame header.
	SpeciesCountMismatch
	//UnknownSymbol means that an element symbol or atomic number is not in the table.
	UnknownSymbol
	//InvalidFrame means that a Frame built by the caller breaks one of the
	//Frame invariants.
	InvalidFrame
)

var kindNames = map[Kind]string{
	IOError:              "I/O error",
	TruncatedFrame:       "truncated frame",
	MalformedHeader:      "malformed header",
	MalformedNumber:      "malformed number",
	SpeciesCountMismatch: "species count mismatch",
	UnknownSymbol:        "unknown symbol",
	InvalidFrame:         "invalid frame",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its Kind.
var (
	ErrIO                   = &Error{Kind: IOError}
	ErrTruncatedFrame       = &Error{Kind: TruncatedFrame}
	ErrMalformedHeader      = &Error{Kind: MalformedHeader}
	ErrMalformedNumber      = &Error{Kind: MalformedNumber}
	ErrSpeciesCountMismatch = &Error{Kind: SpeciesCountMismatch}
	ErrUnknownSymbol        = &Error{Kind: UnknownSymbol}
	ErrInvalidFrame         = &Error{Kind: InvalidFrame}
)

// Error is the general structure for CON errors. It fullfills the DecoratedError
// and TrajError interfaces.
type Error struct {
	Kind Kind
	//Line is the 1-based line of the input where the problem was found,
	//or 0 if the error is not related to a line.
	Line     int
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	err      error
}

func newError(kind Kind, line int, message string, cause error, deco ...string) *Error {
	return &Error{Kind: kind, Line: line, message: message, err: cause, deco: deco}
}

func (E *Error) Error() string {
	var b strings.Builder
	b.WriteString("con")
	if E.filename != "" {
		b.WriteString(" file ")
		b.WriteString(E.filename)
	}
	if E.Line > 0 {
		fmt.Fprintf(&b, " line %d", E.Line)
	}
	b.WriteString(": ")
	b.WriteString(E.Kind.String())
	if E.message != "" {
		b.WriteString(": ")
		b.WriteString(E.message)
	}
	if E.err != nil {
		b.WriteString(": ")
		b.WriteString(E.err.Error())
	}
	return b.String()
}

// Decorate adds new information to the error
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Unwrap returns the underlying cause, if any (typically an I/O error).
func (E *Error) Unwrap() error { return E.err }

// Is reports whether target is an *Error of the same Kind.
func (E *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == E.Kind
}

// FileName returns the file to which the failing stream was associated, if any.
func (E *Error) FileName() string { return E.filename }

// Format returns the format of the file associated to the error (always "con")
func (E *Error) Format() string { return "con" }

// Critical returns true if the error is critical, false otherwise. Every
// *Error is critical: the normal end of a trajectory is a LastFrameError instead.
func (E *Error) Critical() bool { return true }

// IsKind returns true if err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// errDecorate decorates err with the caller's name, and with the file name if
// the error is ours and has none yet. Errors that are not ours are wrapped
// as IOError.
func errDecorate(err error, caller, filename string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		if _, ok := err.(LastFrameError); ok {
			return err
		}
		e = newError(IOError, 0, "", err)
	}
	if e.filename == "" {
		e.filename = filename
	}
	e.Decorate(caller)
	return e
}

// lastFrameError implements LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

// NormalLastFrameTermination does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "con" }

// Is makes errors.Is(err, io.EOF) true for the end of a trajectory.
func (E *lastFrameError) Is(target error) bool { return target == io.EOF }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
