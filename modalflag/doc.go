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

// Package modalflag handles command lines made up of modes, each mode with
// its own set of flags. For example:
//
//	model2rom -log LOAD -path roms vf2
//
// The top level flags are parsed first. The first remaining argument then
// selects the mode, in this case LOAD, and the flags for that mode are
// parsed from the arguments that follow:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CATALOG", "LOAD")
//	log := md.AddBool("log", false, "echo log to stdout")
//
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "LOAD":
//		md.NewMode()
//		path := md.AddString("path", "", "search path")
//		...
//	}
//
// Mode names are case insensitive. If the first remaining argument does not
// name a mode then the first mode passed to AddSubModes() is used and the
// argument is left in place.
//
// A -help flag is recognised by every mode and prints the flags and
// sub-modes available at that point.
package modalflag
