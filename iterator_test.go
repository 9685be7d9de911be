/*
 * iterator_test.go, part of gocon.
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

package con

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIteratorEnd(Te *testing.T) {
	it, err := Open("test/tiny_multi_cuh2.con")
	if err != nil {
		Te.Fatal(err)
	}
	defer it.Close()
	for i := 0; i < 3; i++ {
		if !it.Readable() {
			Te.Fatalf("iterator not readable before frame %d", i)
		}
		F, err := it.Next()
		if err != nil {
			Te.Fatalf("frame %d: %v", i, err)
		}
		if F.Len() != 10 {
			Te.Errorf("frame %d has %d atoms", i, F.Len())
		}
	}
	//the trailing blank lines are not a frame, and the end is final.
	for i := 0; i < 3; i++ {
		F, err := it.Next()
		if F != nil {
			Te.Errorf("got a frame after the end")
		}
		if _, ok := err.(LastFrameError); !ok {
			Te.Fatalf("expected a LastFrameError, got %v", err)
		}
		if !errors.Is(err, io.EOF) {
			Te.Errorf("end of stream doesn't match io.EOF")
		}
		if err.(LastFrameError).Critical() {
			Te.Errorf("end of stream is critical")
		}
	}
	if it.Forward() {
		Te.Errorf("Forward succeeded after the end")
	}
	if it.Readable() || it.Err() != nil || it.Frames() != 3 {
		Te.Errorf("readable: %v, err: %v, frames: %d", it.Readable(), it.Err(), it.Frames())
	}
}

func TestForwardNextAlignment(Te *testing.T) {
	all, err := ReadFile("test/tiny_multi_cuh2.con")
	if err != nil {
		Te.Fatal(err)
	}
	for skip := 0; skip <= len(all); skip++ {
		it, err := Open("test/tiny_multi_cuh2.con")
		if err != nil {
			Te.Fatal(err)
		}
		for i := 0; i < skip; i++ {
			if !it.Forward() {
				Te.Fatalf("skip %d: Forward failed at %d: %v", skip, i, it.Err())
			}
		}
		F, err := it.Next()
		if skip == len(all) {
			if _, ok := err.(LastFrameError); !ok {
				Te.Errorf("expected the end after skipping every frame, got %v", err)
			}
		} else if err != nil {
			Te.Errorf("skip %d: %v", skip, err)
		} else if d := cmp.Diff(view(all[skip]), view(F)); d != "" {
			Te.Errorf("skip %d: (-want +got):\n%s", skip, d)
		}
		it.Close()
	}
}

func TestForwardDoesntParseAtoms(Te *testing.T) {
	bad := replaceLine(12, "not an atom line at all")
	it := NewIterator(strings.NewReader(bad + waterText))
	if !it.Forward() {
		Te.Fatalf("Forward failed: %v", it.Err())
	}
	F, err := it.Next()
	if err != nil {
		Te.Fatal(err)
	}
	if d := cmp.Diff(water(), F.Atoms()); d != "" {
		Te.Errorf("(-want +got):\n%s", d)
	}
	//Next does look at atom lines.
	it = NewIterator(strings.NewReader(bad))
	if _, err := it.Next(); !IsKind(err, MalformedHeader) {
		Te.Errorf("got %v", err)
	}
}

func TestForwardTruncated(Te *testing.T) {
	lines := strings.Split(waterText, "\n")
	it := NewIterator(strings.NewReader(waterText + strings.Join(lines[:14], "\n")))
	if !it.Forward() {
		Te.Fatal(it.Err())
	}
	if it.Forward() {
		Te.Fatal("skipped a truncated frame")
	}
	var e *Error
	if !errors.As(it.Err(), &e) || e.Kind != TruncatedFrame || e.Line != 16+15 {
		Te.Errorf("got %v", it.Err())
	}
	if it.Readable() {
		Te.Errorf("iterator readable after an error")
	}
}

func TestErrorsAreLatched(Te *testing.T) {
	text := waterText + replaceLine(12, "0.757 0.586 zero 0 0") + waterText
	it := NewIterator(strings.NewReader(text))
	if _, err := it.Next(); err != nil {
		Te.Fatal(err)
	}
	_, err := it.Next()
	var e *Error
	if !errors.As(err, &e) || e.Kind != MalformedNumber || e.Line != 16+12 {
		Te.Fatalf("got %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, again := it.Next(); again != err {
			Te.Errorf("expected the same error again, got %v", again)
		}
	}
	if it.Forward() {
		Te.Errorf("Forward succeeded after an error")
	}
	if it.Err() != err {
		Te.Errorf("Err returned %v", it.Err())
	}
	if it.Frames() != 1 {
		Te.Errorf("counted %d frames", it.Frames())
	}
}

func TestBlankHeaderLines(Te *testing.T) {
	blank := replaceLine(2, "")
	blank = strings.Replace(blank, "Random Number Seed", "", 1)
	it := NewIterator(strings.NewReader(waterText + blank))
	var got []*Frame
	for F, err := range it.All() {
		if err != nil {
			Te.Fatal(err)
		}
		got = append(got, F)
	}
	if len(got) != 2 {
		Te.Fatalf("got %d frames, expected 2", len(got))
	}
	if h := got[1].Header(PreBox); h != [2]string{"", ""} {
		Te.Errorf("blank header lines were not kept: %q", h)
	}
}

func TestAllStopsAtError(Te *testing.T) {
	text := waterText + replaceLine(10, "Zz") + waterText
	it := NewIterator(strings.NewReader(text))
	frames, errs := 0, 0
	for _, err := range it.All() {
		if err != nil {
			errs++
			if !IsKind(err, UnknownSymbol) {
				Te.Errorf("got %v", err)
			}
			continue
		}
		frames++
	}
	if frames != 1 || errs != 1 {
		Te.Errorf("got %d frames and %d errors", frames, errs)
	}
}

func TestAllBreak(Te *testing.T) {
	it, err := Open("test/tiny_multi_cuh2.con")
	if err != nil {
		Te.Fatal(err)
	}
	defer it.Close()
	for range it.All() {
		break
	}
	if it.Frames() != 1 {
		Te.Errorf("read %d frames", it.Frames())
	}
	F, err := it.Next()
	if err != nil || F == nil {
		Te.Errorf("iteration doesn't resume after a break: %v", err)
	}
}

func TestClosedIterator(Te *testing.T) {
	it, err := Open("test/h2o_two.con")
	if err != nil {
		Te.Fatal(err)
	}
	if err := it.Close(); err != nil {
		Te.Fatal(err)
	}
	if _, err := it.Next(); !IsKind(err, IOError) {
		Te.Errorf("got %v", err)
	}
	if it.Forward() {
		Te.Errorf("Forward worked on a closed iterator")
	}
	if err := it.Close(); err != nil {
		Te.Errorf("second Close: %v", err)
	}
}

func TestOpenMissingFile(Te *testing.T) {
	_, err := Open("test/no_such_file.con")
	var e *Error
	if !errors.As(err, &e) || e.Kind != IOError || e.FileName() != "test/no_such_file.con" {
		Te.Fatalf("got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("the cause was lost: %v", err)
	}
}

func benchmarkInput(B *testing.B) string {
	b, err := os.ReadFile("test/tiny_multi_cuh2.con")
	if err != nil {
		B.Fatal(err)
	}
	return strings.Repeat(strings.TrimSpace(string(b))+"\n", 100)
}

func BenchmarkNext(B *testing.B) {
	text := benchmarkInput(B)
	B.SetBytes(int64(len(text)))
	B.ResetTimer()
	for i := 0; i < B.N; i++ {
		it := NewIterator(strings.NewReader(text))
		for {
			if _, err := it.Next(); err != nil {
				break
			}
		}
	}
}

func BenchmarkForward(B *testing.B) {
	text := benchmarkInput(B)
	B.SetBytes(int64(len(text)))
	B.ResetTimer()
	for i := 0; i < B.N; i++ {
		it := NewIterator(strings.NewReader(text))
		for it.Forward() {
		}
	}
}
