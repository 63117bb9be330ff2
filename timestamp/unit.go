// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"fmt"
)

// Unit is the granularity an integer timestamp is expressed in.
type Unit int

const (
	Seconds Unit = iota
	Milliseconds
	Microseconds
	Nanoseconds
)

var (
	// unitNames maps a Unit to the name used on the command line.
	unitNames = map[Unit]string{
		Seconds:      "seconds",
		Milliseconds: "milliseconds",
		Microseconds: "microseconds",
		Nanoseconds:  "nanoseconds",
	}

	// unitSymbols maps a Unit to its display symbol.
	unitSymbols = map[Unit]string{
		Seconds:      "s",
		Milliseconds: "ms",
		Microseconds: "μs",
		Nanoseconds:  "ns",
	}
)

// ParseUnit returns the Unit with the provided name.
func ParseUnit(name string) (Unit, error) {
	for u, n := range unitNames {
		if n == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("invalid unit: %v", name)
}

// Symbol returns the short display symbol of the unit, e.g. "ms".
func (u Unit) Symbol() string {
	s, ok := unitSymbols[u]
	if !ok {
		return "?"
	}
	return s
}

func (u Unit) String() string {
	n, ok := unitNames[u]
	if !ok {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return n
}

// UnmarshalFlag satisfies the go-flags Unmarshaler interface.
func (u *Unit) UnmarshalFlag(value string) error {
	v, err := ParseUnit(value)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalFlag satisfies the go-flags Marshaler interface.
func (u Unit) MarshalFlag() (string, error) {
	if _, ok := unitNames[u]; !ok {
		return "", fmt.Errorf("invalid unit: %d", int(u))
	}
	return u.String(), nil
}
