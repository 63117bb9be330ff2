// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/decred/tsdump/timestamp"
	flags "github.com/jessevdk/go-flags"
)

const defaultDebugLevel = "info"

// config defines the configuration options for tsdump.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool           `short:"V" long:"version" description:"Display version information and exit"`
	Format      timestamp.Unit `short:"f" long:"format" default:"seconds" choice:"seconds" choice:"milliseconds" choice:"microseconds" choice:"nanoseconds" description:"Unit the timestamps are provided in"`
	Now         bool           `short:"n" long:"now" description:"Include the current time"`
	DebugLevel  string         `short:"d" long:"debuglevel" default:"info" env:"TSDUMP_DEBUGLEVEL" description:"Logging level {trace, debug, info, warn, error, critical, off}"`

	Args struct {
		Timestamps string `positional-arg-name:"timestamps" description:"Comma separated list of timestamps, use -- before negative values"`
	} `positional-args:"yes"`
}

// loadConfig parses args into a config.  A request for help is returned as a
// *flags.Error of type flags.ErrHelp carrying the usage text.
func loadConfig(args []string) (*config, error) {
	// Default config.
	cfg := config{
		Format:     timestamp.Seconds,
		DebugLevel: defaultDebugLevel,
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remaining) > 0 {
		return nil, fmt.Errorf("unexpected argument: %v", remaining[0])
	}

	return &cfg, nil
}
