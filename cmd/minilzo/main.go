// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

// Command minilzo compresses and decompresses whole files with minilzo's
// framed LZO1X stream or one of the other registered codecs.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	if err := newRootCmd(log).Execute(); err != nil {
		log.WithError(err).Error("minilzo failed")
		os.Exit(1)
	}
}
