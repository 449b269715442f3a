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

package romtest

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"hash/crc32"
	"hash/fnv"
	"math/rand"

	"github.com/model2emu/model2rom/catalog"
)

// smallest image generated by a scaled fixture. large enough for a program
// image to hold a vector table and some code.
const minSize = 4096

// Random returns size bytes of pseudo-random data seeded by name.
func Random(name string, size int) []byte {
	h := fnv.New64a()
	h.Write([]byte(name))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	d := make([]byte, size)
	_, _ = rng.Read(d)
	return d
}

// Program returns random data with a plausible 68000 vector table at the
// start. The reset vector points at offset 0x400.
func Program(name string, size int) []byte {
	d := Random(name, size)
	if size < 0x404 {
		return d
	}

	// initial stack pointer and reset vector
	binary.BigEndian.PutUint32(d[0:], 0x00fff000)
	binary.BigEndian.PutUint32(d[4:], 0x00000400)

	// exception vectors all point to the same handler
	for v := 2; v < 64; v++ {
		binary.BigEndian.PutUint32(d[v*4:], 0x00000500)
	}

	return d
}

// Pattern returns low-entropy data made from a repeating four byte pattern.
func Pattern(size int) []byte {
	d := make([]byte, size)
	for i := range d {
		d[i] = byte(i % 4)
	}
	return d
}

// Fill returns data that suits the declared type of the entry.
func Fill(e catalog.RomEntry) []byte {
	switch e.Type {
	case catalog.Program:
		return Program(e.Name, e.Size)
	case catalog.Config:
		return Pattern(e.Size)
	}
	return Random(e.Name, e.Size)
}

// Corrupt returns a copy of d with one byte changed.
func Corrupt(d []byte) []byte {
	c := make([]byte, len(d))
	copy(c, d)
	if len(c) > 0 {
		c[len(c)/2] ^= 0xff
	}
	return c
}

// Checksums computes a CRC32 for d and, for program images, an MD5 as well.
func Checksums(e catalog.RomEntry, d []byte) catalog.Checksums {
	c := catalog.Checksums{
		CRC32: crc32.ChecksumIEEE(d),
	}
	if e.Type == catalog.Program {
		s := md5.Sum(d)
		c.MD5 = hex.EncodeToString(s[:])
	}
	return c
}

// Fixture is a title record together with data for each of its entries.
type Fixture struct {
	Record catalog.TitleRecord

	// data keyed by entry name
	Data map[string][]byte
}

// NewFixture generates data for every entry in rec. Sizes are divided by
// scale (a scale of 1 or less uses the real sizes) and the checksums are
// replaced by the checksums of the generated data.
func NewFixture(rec catalog.TitleRecord, scale int) Fixture {
	fx := Fixture{
		Record: rec,
		Data:   make(map[string][]byte),
	}

	fx.Record.Required = fx.fill(rec.Required, scale)
	fx.Record.Optional = fx.fill(rec.Optional, scale)

	return fx
}

func (fx *Fixture) fill(entries []catalog.RomEntry, scale int) []catalog.RomEntry {
	out := make([]catalog.RomEntry, 0, len(entries))
	for _, e := range entries {
		if scale > 1 {
			e.Size /= scale
			if e.Size < minSize {
				e.Size = minSize
			}
		}
		d := Fill(e)
		e.Checksums = Checksums(e, d)
		fx.Data[e.Name] = d
		out = append(out, e)
	}
	return out
}

// Members returns the fixture data as archive members, in descriptor order.
// Entries named in skip are left out.
func (fx Fixture) Members(skip ...string) []Member {
	var m []Member
	for _, e := range fx.Record.Entries() {
		if contains(skip, e.Name) {
			continue
		}
		m = append(m, Member{Name: e.Name, Data: fx.Data[e.Name]})
	}
	return m
}

func contains(l []string, s string) bool {
	for _, t := range l {
		if t == s {
			return true
		}
	}
	return false
}
