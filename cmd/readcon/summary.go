/*
 * summary.go, part of gocon.
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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	con "github.com/rmera/gocon"
	"github.com/rmera/gocon/conjson"
)

func newSummaryCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Summarize the last valid frame of a CON file",
		Long: `Reads every frame of FILE and prints the number of frames and a summary
of the last one. If a frame can't be read, the rest of the file is discarded,
with a warning, and the summary covers the frames before it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func runSummary(cmd *cobra.Command, name, format string) error {
	switch format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	log := logger(cmd)
	it, err := con.Open(name)
	if err != nil {
		return err
	}
	defer it.Close()
	var last *con.Frame
	var readErr error
	for F, err := range it.All() {
		if err != nil {
			readErr = err
			log.Warn("discarding the rest of the file", "file", name, "valid_frames", it.Frames(), "error", err)
			break
		}
		log.Debug("frame read", "frames_read", it.Frames(), "atoms", F.Len())
		last = F
	}
	if last == nil {
		if readErr != nil {
			return fmt.Errorf("no valid frames in %s: %w", name, readErr)
		}
		return fmt.Errorf("no frames in %s", name)
	}
	S := conjson.Summarize(name, it.Frames(), last)
	if readErr != nil {
		S.Error = conjson.NewError("summary", readErr)
	}
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(S)
	case "yaml":
		if err := conjson.EncodeYAML(out, S); err != nil {
			return err
		}
		return nil
	}
	printSummary(out, S)
	return nil
}

func printSummary(out io.Writer, S *conjson.Summary) {
	fmt.Fprintf(out, "file: %s\n", S.File)
	fmt.Fprintf(out, "frames: %d\n", S.Frames)
	fmt.Fprintf(out, "cell: %s\n", join3(S.Cell))
	fmt.Fprintf(out, "angles: %s\n", join3(S.Angles))
	fmt.Fprintf(out, "species: %d\n", len(S.Species))
	for _, s := range S.Species {
		fmt.Fprintf(out, "  %-3s %d atoms, mass %v\n", s.Symbol, s.Count, s.Mass)
	}
	fmt.Fprintf(out, "atoms: %d\n", S.Atoms)
	if a := S.LastAtom; a != nil {
		state := "free"
		if a.Fixed {
			state = "fixed"
		}
		fmt.Fprintf(out, "last atom: %s %s id %d %s\n", a.Symbol, join3(a.Coords), a.ID, state)
	}
	if S.Error != nil {
		fmt.Fprintf(out, "stopped by: %s\n", S.Error.Message)
	}
}

func join3(v [3]float64) string {
	s := make([]string, 3)
	for i, f := range v {
		s[i] = fmt.Sprint(f)
	}
	return strings.Join(s, " ")
}
