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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for. Every error returned across a package boundary in model2rom is
// a curated error.
//
// Curated errors are created with Errorf(), which takes a formatting pattern
// and placeholder values in the same way as fmt.Errorf(). Formatting is
// deferred until Error() is called. The pattern itself is the identity of the
// error and is what the Is() and Has() functions test against:
//
//	err := curated.Errorf(catalog.UnknownTitle, "vf3")
//	if curated.Is(err, catalog.UnknownTitle) {
//		...
//	}
//
// Patterns that form part of a package's error taxonomy are exported as
// string constants from that package.
//
// Has() searches the chain of values for a pattern, so a pattern wrapped
// inside another curated error is still found:
//
//	inner := curated.Errorf(archivefs.CorruptArchive, "vf2.zip", io.ErrUnexpectedEOF)
//	outer := curated.Errorf("romloader: %v", inner)
//	curated.Has(outer, archivefs.CorruptArchive) // true
//	curated.Is(outer, archivefs.CorruptArchive)  // false
//
// Error values supplied as placeholder values are also reachable through the
// standard errors.Is() and errors.As() functions.
//
// The Error() function removes duplicate adjacent parts of the message, where
// parts are separated by ": ". This means that wrapping an error with the
// same package prefix does not lead to stuttering messages.
package curated
