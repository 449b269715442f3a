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

package memorymap

import "github.com/model2emu/model2rom/catalog"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Program:
		return "Program"
	case Graphics:
		return "Graphics"
	case Audio:
		return "Audio"
	case Data:
		return "Data"
	}
	return "undefined"
}

// The different memory areas.
const (
	Program Area = iota
	Graphics
	Audio
	Data
	numAreas
)

// Areas lists every Area in address order.
var Areas = [...]Area{Program, Graphics, Audio, Data}

// WindowSize is the size of the address range reserved for each area.
const WindowSize = 0x08000000

// AreaOf returns the area that ROMs of the specified type are placed in.
func AreaOf(t catalog.RomType) Area {
	switch t {
	case catalog.Program:
		return Program
	case catalog.Graphics, catalog.Geometry, catalog.Texture:
		return Graphics
	case catalog.Sound, catalog.Samples:
		return Audio
	}
	return Data
}
