// Copyright (c) 2017-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/decred/slog"
	"github.com/decred/tsdump/timestamp"
	flags "github.com/jessevdk/go-flags"
)

// run reports the configured timestamps followed by now() when requested.
// An out of range timestamp does not stop the remaining output, its error is
// returned once everything else was written.
func run(cfg *config, w io.Writer, log slog.Logger, now func() time.Time) error {
	r := timestamp.NewReporter(w, log, time.Local)

	if cfg.Args.Timestamps == "" && !cfg.Now {
		log.Debugf("Nothing to report")
		return nil
	}

	var batchErr error
	if cfg.Args.Timestamps != "" {
		batchErr = r.Batch(cfg.Args.Timestamps, cfg.Format)
		if batchErr != nil && !errors.Is(batchErr, timestamp.ErrOutOfRange) {
			return batchErr
		}
	}

	if cfg.Now {
		if err := r.Now(now()); err != nil {
			return err
		}
	}

	return batchErr
}

func _main() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, e.Message)
			return nil
		}
		return err
	}

	if cfg.ShowVersion {
		fmt.Printf("tsdump version %v\n", version())
		return nil
	}

	log, err := newLogger(os.Stderr, cfg.DebugLevel)
	if err != nil {
		return err
	}

	return run(cfg, os.Stdout, log, time.Now)
}

func main() {
	err := _main()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
