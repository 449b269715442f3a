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

// Package test contains helper functions to remove common boilerplate from
// the tests in model2rom.
//
// The Expect functions report a test error and allow the test to continue.
// The Demand functions report a fatal test error and stop the test
// immediately. Demand functions are useful when the value being tested is
// used by later parts of the test.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool -> true is success, false is failure
//	error -> nil is success, non-nil is failure
//
// A nil value is considered a success. This is how error values work in
// practice and is the only sensible interpretation of an untyped nil.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output so that it can be compared with an expected string.
package test
