// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrOutOfRange is returned when a timestamp decodes to an instant
	// outside of [MinTime, MaxTime].
	ErrOutOfRange = errors.New("timestamp out of range")

	// MinTime is the earliest instant Decode accepts.
	MinTime = time.Date(-262143, time.January, 1, 0, 0, 0, 0, time.UTC)

	// MaxTime is the latest instant Decode accepts.
	MaxTime = time.Date(262142, time.December, 31, 23, 59, 59,
		999999999, time.UTC)

	minUnix = MinTime.Unix()
	maxUnix = MaxTime.Unix()
)

// floorDiv divides a by b rounding towards negative infinity.  b must be
// positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// checkRange verifies that the whole second sec falls within the decodable
// range.
func checkRange(v int64, u Unit, sec int64) error {
	if sec < minUnix || sec > maxUnix {
		return fmt.Errorf("%v %v: %w", v, u.Symbol(), ErrOutOfRange)
	}
	return nil
}

// Decode interprets v as a count of u since the Unix epoch and returns the
// corresponding instant in UTC.  Nanoseconds never fail since every int64
// lies within range.
func Decode(v int64, u Unit) (time.Time, error) {
	switch u {
	case Seconds:
		if err := checkRange(v, u, v); err != nil {
			return time.Time{}, err
		}
		return time.Unix(v, 0).UTC(), nil

	case Milliseconds:
		if err := checkRange(v, u, floorDiv(v, 1e3)); err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(v).UTC(), nil

	case Microseconds:
		if err := checkRange(v, u, floorDiv(v, 1e6)); err != nil {
			return time.Time{}, err
		}
		return time.UnixMicro(v).UTC(), nil

	case Nanoseconds:
		return time.Unix(0, v).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid unit: %v", u)
}
