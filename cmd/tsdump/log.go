// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/decred/slog"
)

// logSubsystem is the subsystem tag of diagnostics emitted by tsdump.
const logSubsystem = "TSDP"

// newLogger returns a logger writing to w at the named level.
func newLogger(w io.Writer, level string) (slog.Logger, error) {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return nil, fmt.Errorf("invalid debug level: %v", level)
	}

	log := slog.NewBackend(w).Logger(logSubsystem)
	log.SetLevel(lvl)
	return log, nil
}
