// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

/*
Package minilzo implements the LZO1X-1 compressor and a bounds-checked LZO1X
decompressor over whole in-memory buffers, plus the small length-prefixed
container used by MiniLZO-style tools.

The compressor is the classic single-probe hash parser: a 16384-slot table of
prior positions, greedy matches of 3 bytes or more, and the standard
`0x11 0x00 0x00` stream terminator. Every call owns its own table, so calls on
independent buffers may run concurrently.

# Compress

Compress never fails; the result is at most MaxCompressedLen(len(src)) bytes:

	stream := minilzo.Compress(data)

# Decompress

The decompressed size is required. Decompress is strict: the stream must fill
the destination exactly and be consumed to its last byte.

	out, err := minilzo.Decompress(stream, minilzo.DefaultDecompressOptions(len(data)))

To reuse caller-managed output memory:

	dst := make([]byte, expectedLen)
	out, err := minilzo.DecompressInto(stream, dst)

For back-to-back blocks, DecompressN stops at the terminator and reports how
many input bytes it consumed:

	out, nRead, err := minilzo.DecompressN(stream, minilzo.DefaultDecompressOptions(expectedLen))
	// advance: stream = stream[nRead:]

# Framed container

The framed form prepends the original length as a little-endian uint32:

	framed, err := minilzo.CompressFramed(data)
	out, err := minilzo.DecompressFramed(framed)

# Errors

Decoding failures wrap one of ErrOutputOverrun, ErrInputOverrun,
ErrLookbehindOverrun, ErrEOFMarkerNotFound, ErrInputNotConsumed or
ErrOutputUnderrun; match them with errors.Is. All of them mean the input is
corrupt or truncated.
*/
package minilzo
