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

// Package prefs implements typed preference values that can be saved to and
// loaded from a file on disk.
//
// Preference values are registered with a Disk using a key. Many Disk
// instances can share the same file: saving one Disk preserves the values
// written by any other.
//
// The file consists of a warning line followed by one line per key:
//
//	key :: value
//
// Values can also be supplied on the command line with
// PushCommandLineStack(). A value on the command line stack takes priority
// over the value in the file when the key is added to a Disk, and is never
// written back to the file.
package prefs
