// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDecodeEpoch(t *testing.T) {
	for _, u := range []Unit{Seconds, Milliseconds, Microseconds,
		Nanoseconds} {
		got, err := Decode(0, u)
		if err != nil {
			t.Fatalf("%v: %v", u, err)
		}
		if !got.Equal(time.Unix(0, 0)) {
			t.Errorf("%v: want epoch got %v", u, got)
		}
		if got.Location() != time.UTC {
			t.Errorf("%v: want UTC got %v", u, got.Location())
		}
		if got.Unix() != 0 {
			t.Errorf("%v: want 0 got %v", u, got.Unix())
		}
	}
}

// millisTests verifies the scaling law: decoding v in unit then reading the
// millisecond epoch back yields v scaled to milliseconds, floored.
var millisTests = []struct {
	in     int64
	unit   Unit
	millis int64
}{
	{1725932348, Seconds, 1725932348000},
	{-1, Seconds, -1000},
	{1725932348123, Milliseconds, 1725932348123},
	{-1, Milliseconds, -1},
	{1725932348123456, Microseconds, 1725932348123},
	{1999, Microseconds, 1},
	{-1, Microseconds, -1},
	{1725932348123456789, Nanoseconds, 1725932348123},
	{-1, Nanoseconds, -1},
	{math.MaxInt64, Nanoseconds, 9223372036854},
	{math.MinInt64, Nanoseconds, -9223372036855},
}

func TestDecodeMillis(t *testing.T) {
	for _, v := range millisTests {
		t.Logf("testing %v %v", v.in, v.unit)
		got, err := Decode(v.in, v.unit)
		if err != nil {
			t.Fatalf("%v %v: %v", v.in, v.unit, err)
		}
		if got.UnixMilli() != v.millis {
			t.Errorf("%v %v: want %v got %v", v.in, v.unit,
				v.millis, got.UnixMilli())
		}
	}
}

func TestDecodeSubSecond(t *testing.T) {
	got, err := Decode(1725932348, Seconds)
	if err != nil {
		t.Fatal(err)
	}
	if got.Nanosecond() != 0 {
		t.Fatalf("want 0 got %v", got.Nanosecond())
	}

	got, err = Decode(1725932348123456, Microseconds)
	if err != nil {
		t.Fatal(err)
	}
	if got.Nanosecond() != 123456000 {
		t.Fatalf("want 123456000 got %v", got.Nanosecond())
	}
}

var rangeTests = []struct {
	in   int64
	unit Unit
	ok   bool
}{
	{maxUnix, Seconds, true},
	{maxUnix + 1, Seconds, false},
	{minUnix, Seconds, true},
	{minUnix - 1, Seconds, false},
	{math.MaxInt64, Seconds, false},
	{math.MinInt64, Seconds, false},
	{maxUnix*1e3 + 999, Milliseconds, true},
	{(maxUnix + 1) * 1e3, Milliseconds, false},
	{minUnix * 1e3, Milliseconds, true},
	{minUnix*1e3 - 1, Milliseconds, false},
	{math.MaxInt64, Milliseconds, false},
	{maxUnix*1e6 + 999999, Microseconds, true},
	{(maxUnix + 1) * 1e6, Microseconds, false},
	{minUnix * 1e6, Microseconds, true},
	{minUnix*1e6 - 1, Microseconds, false},
	{math.MaxInt64, Microseconds, false},
	{math.MinInt64, Microseconds, false},
	{math.MaxInt64, Nanoseconds, true},
	{math.MinInt64, Nanoseconds, true},
}

func TestDecodeRange(t *testing.T) {
	for _, v := range rangeTests {
		t.Logf("testing %v %v %v", v.in, v.unit, v.ok)
		_, err := Decode(v.in, v.unit)
		switch {
		case v.ok && err != nil:
			t.Errorf("%v %v: unexpected error %v", v.in, v.unit, err)
		case !v.ok && !errors.Is(err, ErrOutOfRange):
			t.Errorf("%v %v: want ErrOutOfRange got %v", v.in,
				v.unit, err)
		}
	}
}

func TestDecodeBounds(t *testing.T) {
	got, err := Decode(maxUnix, Seconds)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(MaxTime.Truncate(time.Second)) {
		t.Fatalf("want %v got %v", MaxTime, got)
	}
	if got.Year() != 262142 {
		t.Fatalf("want 262142 got %v", got.Year())
	}

	got, err = Decode(minUnix, Seconds)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(MinTime) {
		t.Fatalf("want %v got %v", MinTime, got)
	}
}

func TestDecodeInvalidUnit(t *testing.T) {
	_, err := Decode(1, Unit(42))
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrOutOfRange) {
		t.Fatalf("unexpected range error: %v", err)
	}
}
