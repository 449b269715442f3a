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

// Package romsys ties together the catalog, the loader and the memory mapper.
// A System loads a title by name and places its ROMs in the Model 2 address
// space:
//
//	sys := romsys.NewSystem(catalog.Builtin())
//	sys.Loader().AddSearchPath("roms")
//	title, err := sys.Load("vf2")
//
// The resulting Title can be queried through its memory map and reported on
// with WriteReport().
package romsys
