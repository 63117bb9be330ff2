// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"fmt"
	"strconv"
	"strings"
)

// Token is a single accepted entry of a comma separated timestamp list.
type Token struct {
	Raw   string // Trimmed text as provided
	Value int64
}

// ParseTokens splits raw on commas and returns the tokens that are valid
// base 10 int64 values, in input order.  Empty tokens are dropped.  Every
// other rejected token yields one error naming it.
func ParseTokens(raw string) ([]Token, []error) {
	var (
		tokens []Token
		errs   []error
	)
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			if e, ok := err.(*strconv.NumError); ok {
				err = e.Err
			}
			errs = append(errs, fmt.Errorf("invalid timestamp %q: %v",
				s, err))
			continue
		}
		tokens = append(tokens, Token{Raw: s, Value: v})
	}
	return tokens, errs
}
