// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"time"
)

// Times holds the views of a single instant that are reported.
type Times struct {
	LocalTime   time.Time
	UTC         time.Time
	UnixSeconds int64
	UnixMillis  int64
}

// NewTimes returns the views of t, with LocalTime expressed in loc.  A nil
// loc means time.Local.  Any monotonic clock reading is dropped.
func NewTimes(t time.Time, loc *time.Location) Times {
	if loc == nil {
		loc = time.Local
	}
	t = t.Round(0)
	return Times{
		LocalTime:   t.In(loc),
		UTC:         t.UTC(),
		UnixSeconds: t.Unix(),
		UnixMillis:  t.UnixMilli(),
	}
}
