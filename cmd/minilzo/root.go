// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/woozymasta/minilzo/codec"
)

// defaultMaxOutput caps decompressed files at 1 GiB unless --max-output says otherwise.
const defaultMaxOutput = 1 << 30

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	codec     string
	maxOutput uint64
	verbose   bool
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "minilzo",
		Short:         "Compress and decompress files with LZO1X-1",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.codec, "codec", "c", codec.NameLZO1X, "codec used for compression and comparison baseline")
	flags.Uint64Var(&opts.maxOutput, "max-output", defaultMaxOutput, "largest decompressed size accepted, 0 for no limit")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every processed file")

	cmd.AddCommand(
		newCompressCmd(log, opts),
		newDecompressCmd(log, opts),
		newCompareCmd(opts),
		newVersionCmd(),
	)

	return cmd
}
