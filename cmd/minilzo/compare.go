// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/woozymasta/minilzo/codec"
)

// ErrRoundTripMismatch is returned when a codec does not restore its input.
var ErrRoundTripMismatch = errors.New("round trip mismatch")

// compareResult is one row of the compare table.
type compareResult struct {
	Codec string
	In    int
	Out   int
}

// compareData compresses data with every codec and verifies each round trip.
// The codec named first leads the result.
func compareData(data []byte, first string, maxOutput uint64) ([]compareResult, error) {
	compressors := codec.All(maxOutput)
	results := make([]compareResult, 0, len(compressors))

	for _, c := range compressors {
		packed, err := c.Compress(data)
		if err != nil {
			return nil, errors.Wrap(err, c.Name())
		}

		plain, err := c.Decompress(packed)
		if err != nil {
			return nil, errors.Wrap(err, c.Name())
		}

		if !bytes.Equal(plain, data) {
			return nil, errors.Wrap(ErrRoundTripMismatch, c.Name())
		}

		row := compareResult{Codec: c.Name(), In: len(data), Out: len(packed)}
		if c.Name() == first {
			results = append([]compareResult{row}, results...)
			continue
		}
		results = append(results, row)
	}

	return results, nil
}

func writeCompare(w io.Writer, path string, results []compareResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", path)
	fmt.Fprintf(tw, "  codec\tin\tout\tratio\n")
	for _, r := range results {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%.3f\n", r.Codec, r.In, r.Out, ratio(r.Out, r.In))
	}

	return tw.Flush()
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file>...",
		Short: "Print compressed size and ratio for every codec",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseline, err := codec.New(opts.codec, 0)
			if err != nil {
				return err
			}

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrap(err, "read input")
				}

				results, err := compareData(data, baseline.Name(), opts.maxOutput)
				if err != nil {
					return errors.Wrap(err, path)
				}

				if err := writeCompare(cmd.OutOrStdout(), path, results); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
