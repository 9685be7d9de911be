/*
 * convert.go, part of gocon.
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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	con "github.com/rmera/gocon"
	"github.com/rmera/gocon/conjson"
)

func newConvertCmd() *cobra.Command {
	var skip, every, prec, level int
	var compression string
	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Rewrite the frames of a CON file",
		Long: `Copies the frames of IN to OUT. OUT is written as CON unless its name
ends in .json or .ndjson (one JSON object per frame and line) or in .yaml or
.yml (one YAML document per frame). CON output is compressed if OUT ends in
.gz or .zst, or as requested with --compression.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if skip < 0 || every < 1 {
				return fmt.Errorf("--skip must be 0 or more and --every 1 or more")
			}
			O := con.DefaultOptions()
			O.Prec(prec)
			O.Level(level)
			if compression != "" && O.Compression(compression) == "" {
				return fmt.Errorf("unknown compression %q", compression)
			}
			return runConvert(cmd, args[0], args[1], skip, every, O)
		},
	}
	cmd.Flags().IntVar(&skip, "skip", 0, "Frames to skip, without parsing them, before the first one written")
	cmd.Flags().IntVar(&every, "every", 1, "Write one frame out of every N")
	cmd.Flags().IntVar(&prec, "prec", -1, "Decimals for reals in CON output (-1: shortest exact)")
	cmd.Flags().StringVar(&compression, "compression", "", "Compression for CON output: plain, gz or zst (default: from the file name)")
	cmd.Flags().IntVar(&level, "level", -1, "Compression level (-1: the compressor's default)")
	return cmd
}

func runConvert(cmd *cobra.Command, in, out string, skip, every int, O *con.Options) error {
	log := logger(cmd)
	src, err := con.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := openSink(out, O)
	if err != nil {
		return err
	}
	n, err := copyFrames(src, dst, skip, every)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Error("conversion stopped", "in", in, "out", out, "frames_written", n, "error", err)
		return err
	}
	if n == 0 {
		log.Warn("no frames written", "in", in, "out", out, "skip", skip)
	}
	log.Info("converted", "in", in, "out", out, "frames_written", n)
	return nil
}

// fileSink closes its file after the sink.
type fileSink struct {
	con.FrameSink
	f *os.File
}

func (s fileSink) Close() error {
	err := s.FrameSink.Close()
	if ferr := s.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// openSink creates the file name and returns a sink for it, chosen by the
// file extension.
func openSink(name string, O *con.Options) (con.FrameSink, error) {
	var newSink func(f *os.File) con.FrameSink
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".ndjson":
		newSink = func(f *os.File) con.FrameSink { return conjson.NewJSONWriter(f) }
	case ".yaml", ".yml":
		newSink = func(f *os.File) con.FrameSink { return conjson.NewYAMLWriter(f) }
	default:
		W, err := con.Create(name, O)
		if err != nil {
			return nil, err
		}
		return W, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return fileSink{FrameSink: newSink(f), f: f}, nil
}

// forwardErr returns the error that made src.Forward fail, or nil if the
// stream just ended.
func forwardErr(src con.FrameSource) error {
	if e, ok := src.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// copyFrames skips the first skip frames of src, then appends one frame of
// every every to dst. It returns the number of frames appended.
func copyFrames(src con.FrameSource, dst con.FrameSink, skip, every int) (int, error) {
	for i := 0; i < skip; i++ {
		if !src.Forward() {
			return 0, forwardErr(src)
		}
	}
	n := 0
	for {
		F, err := src.Next()
		if err != nil {
			if _, ok := err.(con.LastFrameError); ok {
				return n, nil
			}
			return n, err
		}
		if err := dst.Append(F); err != nil {
			return n, err
		}
		n++
		for i := 1; i < every; i++ {
			if !src.Forward() {
				return n, forwardErr(src)
			}
		}
	}
}
