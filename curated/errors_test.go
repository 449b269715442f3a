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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/model2emu/model2rom/curated"
	"github.com/model2emu/model2rom/test"
)

const testPattern = "test: %s (%d)"

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, "foo", 10)
	test.ExpectEquality(t, err.Error(), "test: foo (10)")
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, testPattern))
	test.ExpectFailure(t, curated.Is(err, "test: %s"))

	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.IsAny(io.EOF))
	test.ExpectFailure(t, curated.Is(io.EOF, testPattern))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "bar", 20)
	outer := curated.Errorf("wrapper: %v", inner)

	test.ExpectFailure(t, curated.Is(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, "wrapper: %v"))
	test.ExpectFailure(t, curated.Has(outer, "missing"))

	v := curated.Values(outer, testPattern)
	test.DemandEquality(t, len(v), 2)
	test.ExpectEquality(t, v[0].(string), "bar")
	test.ExpectEquality(t, v[1].(int), 20)
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("romloader: %s", "missing rom")
	outer := curated.Errorf("romloader: %v", inner)
	test.ExpectEquality(t, outer.Error(), "romloader: missing rom")
}

type detailedError struct {
	detail string
}

func (e *detailedError) Error() string {
	return e.detail
}

func TestUnwrap(t *testing.T) {
	err := curated.Errorf("outer: %v", curated.Errorf("inner: %w", io.ErrUnexpectedEOF))
	test.ExpectSuccess(t, errors.Is(err, io.ErrUnexpectedEOF))

	err = curated.Errorf("detail: %v", &detailedError{detail: "abc"})
	var de *detailedError
	test.DemandSuccess(t, errors.As(err, &de))
	test.ExpectEquality(t, de.detail, "abc")
}
