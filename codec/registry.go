// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package codec

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Registered algorithm names.
const (
	NameLZO1X  = "lzo1x"
	NameSnappy = "snappy"
	NameLZ4    = "lz4"
	NameBrotli = "brotli"
)

// ErrUnknownCodec is returned for names and extensions no compressor claims.
var ErrUnknownCodec = errors.New("unknown codec")

// constructors maps names to constructors; it is never modified.
var constructors = map[string]func(maxLength uint64) Compressor{
	NameLZO1X:  func(maxLength uint64) Compressor { return NewLZO1XCompressor(maxLength) },
	NameSnappy: func(maxLength uint64) Compressor { return NewSnappyCompressor(maxLength) },
	NameLZ4:    func(maxLength uint64) Compressor { return NewLZ4Compressor(maxLength) },
	NameBrotli: func(maxLength uint64) Compressor { return NewBrotliCompressor(maxLength) },
}

// New returns a fresh compressor for name (case-insensitive).
func New(name string, maxLength uint64) (Compressor, error) {
	ctor, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCodec, "%q (known: %s)", name, strings.Join(Names(), ", "))
	}

	return ctor(maxLength), nil
}

// Names returns registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// All returns one compressor per registered name, in Names order.
func All(maxLength uint64) []Compressor {
	names := Names()
	out := make([]Compressor, 0, len(names))
	for _, name := range names {
		out = append(out, constructors[name](maxLength))
	}

	return out
}

// ForExtension returns the compressor whose Extension matches ext (with or without the dot).
func ForExtension(ext string, maxLength uint64) (Compressor, error) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	for _, c := range All(maxLength) {
		if c.Extension() == ext {
			return c, nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownCodec, "extension %q", ext)
}
