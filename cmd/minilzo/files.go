// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/minilzo/codec"
)

// outputPath places name in outDir, or next to src when outDir is empty.
func outputPath(src, outDir, name string) string {
	if outDir == "" {
		outDir = filepath.Dir(src)
	}

	return filepath.Join(outDir, name)
}

// compressFile writes src compressed with c to <outDir>/<base><ext>.
func compressFile(log logrus.FieldLogger, c codec.Compressor, src, outDir string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}

	packed, err := c.Compress(data)
	if err != nil {
		return "", errors.Wrapf(err, "compress %s", src)
	}

	dst := outputPath(src, outDir, filepath.Base(src)+c.Extension())
	if err := os.WriteFile(dst, packed, 0o644); err != nil { //nolint:gosec // G306: regular output file
		return "", errors.Wrap(err, "write output")
	}

	log.WithFields(logrus.Fields{
		"path":  dst,
		"codec": c.Name(),
		"in":    len(data),
		"out":   len(packed),
		"ratio": ratio(len(packed), len(data)),
	}).Debug("compressed")

	return dst, nil
}

// decompressFile picks the codec from src's extension and writes the restored
// file without that extension.
func decompressFile(log logrus.FieldLogger, src, outDir string, maxOutput uint64) (string, error) {
	ext := filepath.Ext(src)
	c, err := codec.ForExtension(ext, maxOutput)
	if err != nil {
		return "", errors.Wrap(err, src)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}

	plain, err := c.Decompress(data)
	if err != nil {
		return "", errors.Wrapf(err, "decompress %s", src)
	}

	name := strings.TrimSuffix(filepath.Base(src), ext)
	dst := outputPath(src, outDir, name)
	if err := os.WriteFile(dst, plain, 0o644); err != nil { //nolint:gosec // G306: regular output file
		return "", errors.Wrap(err, "write output")
	}

	log.WithFields(logrus.Fields{
		"path":  dst,
		"codec": c.Name(),
		"in":    len(data),
		"out":   len(plain),
	}).Debug("decompressed")

	return dst, nil
}

// ratio returns packed/plain, or 0 for empty input.
func ratio(packed, plain int) float64 {
	if plain == 0 {
		return 0
	}

	return float64(packed) / float64(plain)
}
