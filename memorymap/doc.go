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

// Package memorymap places the ROM images of a title into the 32 bit address
// space of the emulated machine.
//
// The address space is split into four windows, one for each Area. Each ROM
// is placed in the window for its area, at the next free bank boundary, in
// the order the ROMs are given. A ROM always occupies at least one bank.
//
//	0x00000000	Program
//	0x08000000	Graphics
//	0x10000000	Audio
//	0x18000000	Data
//
// A Map never contains overlapping entries. MapTitle() checks the finished
// map with ValidateOverlaps() before returning it.
package memorymap
