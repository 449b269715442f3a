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

package catalog

const (
	kb = 1024
	mb = 1024 * kb
)

// the standard Model 2 system configuration. titles differ mostly in the
// controls they support.
func model2System(controls ...string) SystemConfig {
	return SystemConfig{
		CPUFrequency:  25000000,
		Width:         496,
		Height:        384,
		RefreshRate:   57.5,
		DisplayMode:   "progressive",
		SampleRate:    44100,
		AudioChannels: 2,
		UseSCSP:       true,
		Controls:      controls,
	}
}

// VirtuaFighter2 is the short name of the Virtua Fighter 2 record.
const VirtuaFighter2 = "virtua_fighter_2"

var builtinRecords = []TitleRecord{
	{
		ShortName:   VirtuaFighter2,
		Aliases:     []string{"vf2"},
		Name:        "Virtua Fighter 2",
		Developer:   "Sega AM2",
		Year:        1994,
		Region:      "World",
		Version:     "2.1",
		Description: "3D fighting game with motion captured character animation.",
		Required: []RomEntry{
			{Name: "epr-17570.ic12", Type: Program, Size: 512 * kb, Checksums: Checksums{CRC32: 0x4fe7ef0e}},
			{Name: "epr-17571.ic13", Type: Program, Size: 512 * kb, Checksums: Checksums{CRC32: 0xb3e6a2d1}},
			{Name: "mpr-17572.ic10", Type: Data, Size: 2 * mb, Checksums: Checksums{CRC32: 0x2d7d8e5c}},
			{Name: "mpr-17573.ic11", Type: Data, Size: 2 * mb, Checksums: Checksums{CRC32: 0x8a6b1e47}},
			{Name: "mpr-17574.ic17", Type: Geometry, Size: 4 * mb, Checksums: Checksums{CRC32: 0x9b1a3d6f}},
			{Name: "mpr-17575.ic18", Type: Geometry, Size: 4 * mb, Checksums: Checksums{CRC32: 0x61c0f2aa}},
			{Name: "mpr-17576.ic19", Type: Graphics, Size: 4 * mb, Checksums: Checksums{CRC32: 0x0e5f9c21}},
			{Name: "mpr-17577.ic20", Type: Graphics, Size: 4 * mb, Checksums: Checksums{CRC32: 0xd24c7b90}},
			{Name: "mpr-17578.ic25", Type: Texture, Size: 4 * mb, Checksums: Checksums{CRC32: 0x7f30a5be}},
			{Name: "mpr-17579.ic26", Type: Texture, Size: 4 * mb, Checksums: Checksums{CRC32: 0xc8e41d03}},
			{Name: "epr-17583.ic27", Type: Microcode, Size: 64 * kb, Checksums: Checksums{CRC32: 0x15a9e6c4}},
			{Name: "epr-17580.ic31", Type: Sound, Size: 512 * kb, Checksums: Checksums{CRC32: 0xa43f0b72}},
			{Name: "mpr-17581.ic32", Type: Samples, Size: 4 * mb, Checksums: Checksums{CRC32: 0x5c92d8e1}},
			{Name: "mpr-17582.ic33", Type: Samples, Size: 4 * mb, Checksums: Checksums{CRC32: 0xe07b6a3f}},
		},
		Optional: []RomEntry{
			{Name: "epr-17584.ic4", Type: Config, Size: 32 * kb, Checksums: Checksums{CRC32: 0x3b8c1f5d}},
		},
		System: model2System("joystick", "3buttons"),
	},
	{
		ShortName:   "daytona_usa",
		Aliases:     []string{"daytona"},
		Name:        "Daytona USA",
		Developer:   "Sega AM2",
		Year:        1993,
		Region:      "World",
		Version:     "1.0",
		Description: "3D racing game set on the Daytona Speedway.",
		Required: []RomEntry{
			{Name: "epr-16722a.ic12", Type: Program, Size: 512 * kb, Checksums: Checksums{CRC32: 0x7d3a1c88}},
			{Name: "epr-16723a.ic13", Type: Program, Size: 512 * kb, Checksums: Checksums{CRC32: 0x9c5e07b4}},
			{Name: "mpr-16708.ic14", Type: Data, Size: 2 * mb, Checksums: Checksums{CRC32: 0x1af3e962}},
			{Name: "mpr-16710.ic18", Type: Geometry, Size: 4 * mb, Checksums: Checksums{CRC32: 0xb67c2d15}},
			{Name: "mpr-16712.ic25", Type: Texture, Size: 4 * mb, Checksums: Checksums{CRC32: 0x43d0f8a9}},
			{Name: "epr-16720.ic31", Type: Sound, Size: 512 * kb, Checksums: Checksums{CRC32: 0xe1289b3c}},
			{Name: "mpr-16718.ic32", Type: Samples, Size: 4 * mb, Checksums: Checksums{CRC32: 0x0b9d56f7}},
		},
		Optional: []RomEntry{
			{Name: "epr-16724.ic4", Type: Config, Size: 32 * kb, Checksums: Checksums{CRC32: 0x68f2c4e0}},
		},
		System: model2System("steering", "pedals", "shifter"),
	},
	{
		ShortName:   "virtua_cop",
		Aliases:     []string{"vcop"},
		Name:        "Virtua Cop",
		Developer:   "Sega AM2",
		Year:        1994,
		Region:      "World",
		Version:     "1.0",
		Description: "Light gun shooter with polygonal graphics.",
		Required: []RomEntry{
			{Name: "epr-17168a.ic12", Type: Program, Size: 512 * kb, Checksums: Checksums{CRC32: 0xc4e3b7a2}},
			{Name: "mpr-17160.ic10", Type: Data, Size: 2 * mb, Checksums: Checksums{CRC32: 0x2f81d06b}},
			{Name: "mpr-17161.ic17", Type: Geometry, Size: 4 * mb, Checksums: Checksums{CRC32: 0x8e57a3c9}},
			{Name: "mpr-17164.ic25", Type: Texture, Size: 4 * mb, Checksums: Checksums{CRC32: 0x51bc7e04}},
			{Name: "epr-17166.ic31", Type: Sound, Size: 512 * kb, Checksums: Checksums{CRC32: 0xf3a0921d}},
			{Name: "mpr-17167.ic32", Type: Samples, Size: 4 * mb, Checksums: Checksums{CRC32: 0x96d45b8e}},
		},
		System: model2System("lightgun"),
	},
}

var builtin *Catalog

func init() {
	var err error
	builtin, err = New(builtinRecords...)
	if err != nil {
		panic(err)
	}
}

// Builtin returns the compiled-in catalog.
func Builtin() *Catalog {
	return builtin
}
