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

import (
	"fmt"
	"strings"

	"github.com/model2emu/model2rom/curated"
)

// RomType is the declared purpose of a ROM image.
type RomType int

// List of valid RomType values.
const (
	Program RomType = iota
	Graphics
	Sound
	Data
	Geometry
	Texture
	Samples
	Config
	Microcode
)

// RomTypes lists every RomType in declaration order.
var RomTypes = [...]RomType{Program, Graphics, Sound, Data, Geometry, Texture, Samples, Config, Microcode}

func (t RomType) String() string {
	switch t {
	case Program:
		return "Program"
	case Graphics:
		return "Graphics"
	case Sound:
		return "Sound"
	case Data:
		return "Data"
	case Geometry:
		return "Geometry"
	case Texture:
		return "Texture"
	case Samples:
		return "Samples"
	case Config:
		return "Config"
	case Microcode:
		return "Microcode"
	}
	return "undefined"
}

// ParseRomType is the inverse of RomType.String(). Case insensitive.
func ParseRomType(s string) (RomType, error) {
	for _, t := range RomTypes {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return Data, curated.Errorf(UnknownRomType, s)
}

// Checksums are the expected digests of a ROM image. A zero CRC32 or an empty
// string means that the digest is not known.
type Checksums struct {
	CRC32  uint32
	MD5    string
	SHA256 string
}

// normalised returns the checksums with the digest strings in lower case.
func (c Checksums) normalised() Checksums {
	c.MD5 = strings.ToLower(strings.TrimSpace(c.MD5))
	c.SHA256 = strings.ToLower(strings.TrimSpace(c.SHA256))
	return c
}

// HasAny returns true if at least one checksum is known.
func (c Checksums) HasAny() bool {
	return c.CRC32 != 0 || c.MD5 != "" || c.SHA256 != ""
}

func (c Checksums) String() string {
	var s []string
	if c.CRC32 != 0 {
		s = append(s, fmt.Sprintf("crc32=%08x", c.CRC32))
	}
	if c.MD5 != "" {
		s = append(s, fmt.Sprintf("md5=%s", c.MD5))
	}
	if c.SHA256 != "" {
		s = append(s, fmt.Sprintf("sha256=%s", c.SHA256))
	}
	if len(s) == 0 {
		return "no checksums"
	}
	return strings.Join(s, " ")
}

// RomEntry describes one ROM image belonging to a title.
type RomEntry struct {
	// filename of the ROM image, as it would appear in a directory or as an
	// archive member
	Name string

	Type RomType

	// expected length in bytes
	Size int

	Checksums Checksums
}

func (e RomEntry) String() string {
	return fmt.Sprintf("%s (%s, %d bytes)", e.Name, e.Type, e.Size)
}

// SystemConfig is the hardware configuration expected by a title.
type SystemConfig struct {
	CPUFrequency int
	Width        int
	Height       int
	RefreshRate  float64
	DisplayMode  string

	SampleRate    int
	AudioChannels int
	UseSCSP       bool

	Controls []string
}

func (s SystemConfig) String() string {
	return fmt.Sprintf("%dx%d@%.1fHz %s, %d channel audio at %dHz", s.Width, s.Height,
		s.RefreshRate, s.DisplayMode, s.AudioChannels, s.SampleRate)
}

// TitleRecord describes a supported title.
type TitleRecord struct {
	ShortName   string
	Aliases     []string
	Name        string
	Developer   string
	Year        int
	Region      string
	Version     string
	Description string

	// required entries are in the logical order of the board (program first)
	// and this order is preserved by the loader and the memory mapper
	Required []RomEntry
	Optional []RomEntry

	System SystemConfig
}

func (r TitleRecord) String() string {
	return fmt.Sprintf("%s (%s, %s %d)", r.Name, r.ShortName, r.Developer, r.Year)
}

// Entries returns required entries followed by optional entries.
func (r TitleRecord) Entries() []RomEntry {
	e := make([]RomEntry, 0, len(r.Required)+len(r.Optional))
	e = append(e, r.Required...)
	e = append(e, r.Optional...)
	return e
}

// Entry returns the entry with the specified name and whether it is a
// required entry.
func (r TitleRecord) Entry(name string) (RomEntry, bool, bool) {
	for _, e := range r.Required {
		if e.Name == name {
			return e, true, true
		}
	}
	for _, e := range r.Optional {
		if e.Name == name {
			return e, false, true
		}
	}
	return RomEntry{}, false, false
}

// TotalSize is the sum of the expected sizes of the required entries.
func (r TitleRecord) TotalSize() int {
	var n int
	for _, e := range r.Required {
		n += e.Size
	}
	return n
}

// clone makes a deep copy of the record so that no slice is shared with the
// catalog.
func (r TitleRecord) clone() TitleRecord {
	c := r
	c.Aliases = append([]string(nil), r.Aliases...)
	c.Required = append([]RomEntry(nil), r.Required...)
	c.Optional = append([]RomEntry(nil), r.Optional...)
	for i := range c.Required {
		c.Required[i].Checksums = c.Required[i].Checksums.normalised()
	}
	for i := range c.Optional {
		c.Optional[i].Checksums = c.Optional[i].Checksums.normalised()
	}
	c.System.Controls = append([]string(nil), r.System.Controls...)
	return c
}
