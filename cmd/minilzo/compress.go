// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/woozymasta/minilzo/codec"
)

func newCompressCmd(log *logrus.Logger, opts *rootOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "compress <file>...",
		Short: "Compress files, appending the codec extension",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := codec.New(opts.codec, opts.maxOutput)
			if err != nil {
				return err
			}

			for _, src := range args {
				dst, err := compressFile(log, c, src, outDir)
				if err != nil {
					return err
				}

				log.WithField("path", dst).Info("written")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory, defaults to the input's directory")

	return cmd
}

func newDecompressCmd(log *logrus.Logger, opts *rootOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "decompress <file>...",
		Short: "Decompress files, choosing the codec by extension",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, src := range args {
				dst, err := decompressFile(log, src, outDir, opts.maxOutput)
				if err != nil {
					return err
				}

				log.WithField("path", dst).Info("written")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory, defaults to the input's directory")

	return cmd
}
