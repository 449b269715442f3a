// This file is part of model2rom.
//
// model2rom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// model2rom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with model2rom.  If not, see <https://www.gnu.org/licenses/>.

package curated

import (
	"errors"
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is stored along with the
// values and is only formatted when Error() is called.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	// de-duplicate adjacent parts of the message
	p := strings.Split(s, ": ")
	d := p[:1]
	for _, q := range p[1:] {
		if q != d[len(d)-1] {
			d = append(d, q)
		}
	}

	return strings.Join(d, ": ")
}

// Unwrap returns any error values that were supplied to Errorf(). It allows
// the functions in the standard errors package to see through curated errors.
func (er curated) Unwrap() []error {
	var errs []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// IsAny returns true if err was created by Errorf().
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is returns true if err was created by Errorf() with the specified pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has returns true if the pattern is found anywhere in the error chain.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	switch er := err.(type) {
	case curated:
		for _, e := range er.Unwrap() {
			if Has(e, pattern) {
				return true
			}
		}
	default:
		if e := errors.Unwrap(err); e != nil {
			return Has(e, pattern)
		}
	}

	return false
}

// Values returns the placeholder values of the first error in the chain that
// was created with the specified pattern. Returns nil if the pattern does not
// occur in the chain.
func Values(err error, pattern string) []any {
	if err == nil {
		return nil
	}

	er, ok := err.(curated)
	if !ok {
		if e := errors.Unwrap(err); e != nil {
			return Values(e, pattern)
		}
		return nil
	}

	if er.pattern == pattern {
		return er.values
	}

	for _, e := range er.Unwrap() {
		if v := Values(e, pattern); v != nil {
			return v
		}
	}

	return nil
}
