package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/minilzo/codec"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	cmd := newRootCmd(quietLogger())
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func writeInput(t *testing.T, dir, name string) []byte {
	t.Helper()

	data := bytes.Repeat([]byte("minilzo command line round trip. "), 200)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))

	return data
}

func TestCLI_CompressDecompress(t *testing.T) {
	for _, name := range codec.Names() {
		t.Run(name, func(t *testing.T) {
			src := t.TempDir()
			out := t.TempDir()
			data := writeInput(t, src, "input.bin")

			_, err := runCLI(t, "compress", "--codec", name, filepath.Join(src, "input.bin"))
			require.NoError(t, err)

			c, err := codec.New(name, 0)
			require.NoError(t, err)
			packedPath := filepath.Join(src, "input.bin"+c.Extension())
			require.FileExists(t, packedPath)

			_, err = runCLI(t, "decompress", "-o", out, packedPath)
			require.NoError(t, err)

			restored, err := os.ReadFile(filepath.Join(out, "input.bin"))
			require.NoError(t, err)
			assert.Equal(t, data, restored)
		})
	}
}

func TestCLI_DecompressRespectsMaxOutput(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "big.bin")

	_, err := runCLI(t, "compress", filepath.Join(dir, "big.bin"))
	require.NoError(t, err)

	_, err = runCLI(t, "decompress", "--max-output", "16", "-o", t.TempDir(), filepath.Join(dir, "big.bin.lzo"))
	require.ErrorIs(t, err, codec.ErrMaxLengthExceeded)
}

func TestCLI_Errors(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "plain.txt")

	_, err := runCLI(t, "compress", "--codec", "zip", filepath.Join(dir, "plain.txt"))
	require.ErrorIs(t, err, codec.ErrUnknownCodec)

	_, err = runCLI(t, "decompress", filepath.Join(dir, "plain.txt"))
	require.ErrorIs(t, err, codec.ErrUnknownCodec)

	_, err = runCLI(t, "compress")
	require.Error(t, err)
}

func TestCLI_Compare(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "sample.txt")

	stdout, err := runCLI(t, "compare", "--codec", "snappy", filepath.Join(dir, "sample.txt"))
	require.NoError(t, err)

	for _, name := range codec.Names() {
		assert.Contains(t, stdout, name)
	}
}

func TestCompareData_BaselineFirst(t *testing.T) {
	data := bytes.Repeat([]byte("abc"), 500)

	results, err := compareData(data, codec.NameSnappy, 0)
	require.NoError(t, err)
	require.Len(t, results, len(codec.Names()))
	assert.Equal(t, codec.NameSnappy, results[0].Codec)

	for _, r := range results {
		assert.Equal(t, len(data), r.In)
		assert.Less(t, r.Out, r.In, r.Codec)
	}
}

func TestCLI_Version(t *testing.T) {
	stdout, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "minilzo dev\n", stdout)
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 0.0, ratio(10, 0), 1e-9)
	assert.InDelta(t, 0.5, ratio(5, 10), 1e-9)
}
