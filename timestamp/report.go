// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
)

// dumpConfig renders Times.  Methods stay enabled so that time.Time values
// are printed through their String method.
var dumpConfig = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Reporter decodes timestamps and writes their Times dump to w.  Failures
// are reported through log.
type Reporter struct {
	w   io.Writer
	log slog.Logger
	loc *time.Location
}

// NewReporter returns a Reporter writing to w.  LocalTime is rendered in
// loc, or time.Local when loc is nil.  A nil log disables diagnostics.
func NewReporter(w io.Writer, log slog.Logger, loc *time.Location) *Reporter {
	if log == nil {
		log = slog.Disabled
	}
	if loc == nil {
		loc = time.Local
	}
	return &Reporter{
		w:   w,
		log: log,
		loc: loc,
	}
}

// write prints a single entry.
func (r *Reporter) write(prefix string, t time.Time) error {
	_, err := fmt.Fprintf(r.w, "%v: %v", prefix,
		dumpConfig.Sdump(NewTimes(t, r.loc)))
	return err
}

// Batch reports every timestamp in the comma separated list raw, read as u.
// Tokens that are not integers are logged and skipped.  Tokens that decode
// outside the supported range are logged and skipped as well, but make
// Batch return an error wrapping ErrOutOfRange once all other tokens have
// been written.
func (r *Reporter) Batch(raw string, u Unit) error {
	tokens, errs := ParseTokens(raw)
	for _, err := range errs {
		r.log.Errorf("%v", err)
	}
	r.log.Debugf("Batch: %v tokens accepted, %v rejected, unit %v",
		len(tokens), len(errs), u)

	var rangeErrs int
	for _, tok := range tokens {
		t, err := Decode(tok.Value, u)
		if err != nil {
			if !errors.Is(err, ErrOutOfRange) {
				return err
			}
			r.log.Errorf("%v", err)
			rangeErrs++
			continue
		}
		r.log.Tracef("Decoded %v %v: %v", tok.Raw, u.Symbol(), t)

		err = r.write(tok.Raw+" "+u.Symbol(), t)
		if err != nil {
			return err
		}
	}
	if rangeErrs > 0 {
		return fmt.Errorf("%v of %v timestamps: %w", rangeErrs,
			len(tokens), ErrOutOfRange)
	}

	return nil
}

// Now reports t, which is expected to be the current time.
func (r *Reporter) Now(t time.Time) error {
	return r.write("now", t)
}
