// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
)

const (
	appMajor uint = 1
	appMinor uint = 0
	appPatch uint = 0

	// appPreRelease is appended to the version when not empty.
	appPreRelease = ""
)

// appBuild may be set at link time, e.g.
// -ldflags "-X main.appBuild=$(git rev-parse --short HEAD)".
var appBuild string

// version returns the application version as a semver string.
func version() string {
	v := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if appPreRelease != "" {
		v += "-" + appPreRelease
	}
	if appBuild != "" {
		v += "+" + appBuild
	}
	return v
}
