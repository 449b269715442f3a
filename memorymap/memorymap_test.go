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

package memorymap_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/curated"
	"github.com/model2emu/model2rom/memorymap"
	"github.com/model2emu/model2rom/test"
)

// fake ROM that returns the low byte of the offset for every read.
type rom struct {
	name string
	typ  catalog.RomType
	size int
}

func (r rom) Name() string          { return r.name }
func (r rom) Type() catalog.RomType { return r.typ }
func (r rom) Len() int              { return r.size }

func (r rom) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(r.size) {
		return 0, io.EOF
	}
	for i := range p {
		p[i] = byte(off + int64(i))
	}
	return len(p), nil
}

func fromRecord(rec catalog.TitleRecord) []memorymap.ROM {
	var roms []memorymap.ROM
	for _, e := range rec.Required {
		roms = append(roms, rom{name: e.Name, typ: e.Type, size: e.Size})
	}
	return roms
}

func TestConfig(t *testing.T) {
	test.ExpectSuccess(t, memorymap.DefaultConfig().Validate())

	cfg := memorymap.DefaultConfig()
	cfg.BankSize = 0x00180000
	cfg.BankMask = 0x0017ffff
	test.ExpectSuccess(t, curated.Is(cfg.Validate(), memorymap.InvalidMemoryConfig))

	cfg = memorymap.DefaultConfig()
	cfg.BankMask = 0x0007ffff
	test.ExpectSuccess(t, curated.Is(cfg.Validate(), memorymap.InvalidMemoryConfig))

	cfg = memorymap.DefaultConfig()
	cfg.AudioBase = cfg.GraphicsBase
	test.ExpectSuccess(t, curated.Is(cfg.Validate(), memorymap.InvalidMemoryConfig))

	cfg = memorymap.DefaultConfig()
	cfg.DataBase = 0x18000800
	test.ExpectSuccess(t, curated.Is(cfg.Validate(), memorymap.InvalidMemoryConfig))

	cfg = memorymap.DefaultConfig()
	cfg.BankSize = 0
	test.ExpectFailure(t, cfg.Validate())

	mp := memorymap.NewMapper()
	test.ExpectFailure(t, mp.SetMemoryConfig(cfg))
	test.ExpectEquality(t, mp.MemoryConfig(), memorymap.DefaultConfig())
}

func TestAreaOf(t *testing.T) {
	test.ExpectEquality(t, memorymap.AreaOf(catalog.Program), memorymap.Program)
	test.ExpectEquality(t, memorymap.AreaOf(catalog.Graphics), memorymap.Graphics)
	test.ExpectEquality(t, memorymap.AreaOf(catalog.Geometry), memorymap.Graphics)
	test.ExpectEquality(t, memorymap.AreaOf(catalog.Texture), memorymap.Graphics)
	test.ExpectEquality(t, memorymap.AreaOf(catalog.Sound), memorymap.Audio)
	test.ExpectEquality(t, memorymap.AreaOf(catalog.Samples), memorymap.Audio)
	test.ExpectEquality(t, memorymap.AreaOf(catalog.Data), memorymap.Data)
	test.ExpectEquality(t, memorymap.AreaOf(catalog.Config), memorymap.Data)
	test.ExpectEquality(t, memorymap.AreaOf(catalog.Microcode), memorymap.Data)
}

func TestVirtuaFighter2(t *testing.T) {
	rec, err := catalog.Builtin().Lookup(catalog.VirtuaFighter2)
	test.DemandSuccess(t, err)

	m, err := memorymap.NewMapper().MapTitle(fromRecord(rec))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(m.Entries), 14)
	test.ExpectSuccess(t, memorymap.ValidateOverlaps(m))

	base := make(map[string]uint32)
	for _, e := range m.Entries {
		test.ExpectEquality(t, e.Base&m.Config.BankMask, uint32(0), e.Name())
		base[e.Name()] = e.Base
	}

	test.ExpectEquality(t, base["epr-17570.ic12"], uint32(0x00000000))
	test.ExpectEquality(t, base["epr-17571.ic13"], uint32(0x00100000))
	test.ExpectEquality(t, base["mpr-17572.ic10"], uint32(0x18000000))
	test.ExpectEquality(t, base["mpr-17573.ic11"], uint32(0x18200000))
	test.ExpectEquality(t, base["mpr-17574.ic17"], uint32(0x08000000))
	test.ExpectEquality(t, base["mpr-17579.ic26"], uint32(0x09400000))
	test.ExpectEquality(t, base["epr-17583.ic27"], uint32(0x18400000))
	test.ExpectEquality(t, base["epr-17580.ic31"], uint32(0x10000000))
	test.ExpectEquality(t, base["mpr-17581.ic32"], uint32(0x10100000))
	test.ExpectEquality(t, base["mpr-17582.ic33"], uint32(0x10500000))

	st := m.Stats()
	test.ExpectEquality(t, st.TotalBanks, 40)
	test.ExpectEquality(t, st.FreeBanksPerArea[memorymap.Program], 126)
	test.ExpectEquality(t, st.FreeBanksPerArea[memorymap.Graphics], 104)
	test.ExpectEquality(t, st.FreeBanksPerArea[memorymap.Audio], 119)
	test.ExpectEquality(t, st.FreeBanksPerArea[memorymap.Data], 123)
	test.ExpectEquality(t, st.BytesPerArea[memorymap.Program], 0x100000)
}

func TestSmallROMs(t *testing.T) {
	roms := []memorymap.ROM{
		rom{name: "a", typ: catalog.Program, size: 0},
		rom{name: "b", typ: catalog.Program, size: 1},
		rom{name: "c", typ: catalog.Program, size: 0x100001},
		rom{name: "d", typ: catalog.Program, size: 16},
	}

	m, err := memorymap.MapTitle(roms, memorymap.DefaultConfig())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Entries[0].Banks, 1)
	test.ExpectEquality(t, m.Entries[1].Base, uint32(0x00100000))
	test.ExpectEquality(t, m.Entries[2].Banks, 2)
	test.ExpectEquality(t, m.Entries[3].Base, uint32(0x00400000))
}

func TestForcedOverlap(t *testing.T) {
	cfg := memorymap.DefaultConfig()
	cfg.GraphicsBase = 0x00100000

	roms := []memorymap.ROM{
		rom{name: "program", typ: catalog.Program, size: 0x200000},
		rom{name: "graphics", typ: catalog.Graphics, size: 0x100000},
	}

	_, err := memorymap.MapTitle(roms, cfg)
	test.ExpectSuccess(t, curated.Is(err, memorymap.Overlap))

	var oe *memorymap.OverlapError
	test.DemandSuccess(t, errors.As(err, &oe))
	test.DemandEquality(t, len(oe.Pairs), 1)
	test.ExpectEquality(t, oe.Pairs[0].A.Name(), "program")
	test.ExpectEquality(t, oe.Pairs[0].B.Name(), "graphics")

	// same base and same offset
	m := &memorymap.Map{
		Config: memorymap.DefaultConfig(),
		Entries: []memorymap.Entry{
			{ROM: rom{name: "x"}, Base: 0x1000000, Length: 1, Banks: 1, BankSize: 0x100000},
			{ROM: rom{name: "y"}, Base: 0x1000000, Length: 1, Banks: 1, BankSize: 0x100000},
		},
	}
	test.ExpectSuccess(t, curated.Is(memorymap.ValidateOverlaps(m), memorymap.Overlap))
}

func TestAddressSpaceExhausted(t *testing.T) {
	cfg := memorymap.DefaultConfig()
	cfg.DataBase = 0xfff00000

	roms := []memorymap.ROM{
		rom{name: "data", typ: catalog.Data, size: 0x200000},
	}
	_, err := memorymap.MapTitle(roms, cfg)
	test.ExpectSuccess(t, curated.Is(err, memorymap.InvalidMemoryConfig))
}

func TestWindowExhausted(t *testing.T) {
	cfg := memorymap.DefaultConfig()

	var roms []memorymap.ROM
	for i := 0; i < 128; i++ {
		roms = append(roms, rom{name: fmt.Sprintf("prg.ic%d", i), typ: catalog.Program, size: int(cfg.BankSize)})
	}

	// exactly fills the program window
	m, err := memorymap.MapTitle(roms, cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Stats().FreeBanksPerArea[memorymap.Program], 0)
	test.ExpectEquality(t, m.Entries[127].End(), cfg.GraphicsBase-1)

	// one more bank would spill into the graphics window
	roms = append(roms, rom{name: "prg.ic128", typ: catalog.Program, size: int(cfg.BankSize)})
	_, err = memorymap.MapTitle(roms, cfg)
	test.ExpectSuccess(t, curated.Is(err, memorymap.InvalidMemoryConfig))
}

func TestRead(t *testing.T) {
	roms := []memorymap.ROM{
		rom{name: "program", typ: catalog.Program, size: 0x200},
		rom{name: "sound", typ: catalog.Sound, size: 0x200},
	}
	m, err := memorymap.MapTitle(roms, memorymap.DefaultConfig())
	test.DemandSuccess(t, err)

	e, offset, ok := m.MapAddress(0x10000010)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Name(), "sound")
	test.ExpectEquality(t, offset, uint32(0x10))

	b, err := m.Read(0x00000123)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0x23))

	// past the end of the data but inside the bank
	_, _, ok = m.MapAddress(0x00000200)
	test.ExpectFailure(t, ok)
	_, err = m.Read(0x00000200)
	test.ExpectFailure(t, err)
}

const validSummary = `00000000 -> 000fffff	Program	program (512 bytes, 1 banks)
08000000 -> 081fffff	Graphics	graphics (1048577 bytes, 2 banks)
10000000 -> 100fffff	Audio	sound (16 bytes, 1 banks)
`

func TestSummary(t *testing.T) {
	roms := []memorymap.ROM{
		rom{name: "sound", typ: catalog.Sound, size: 16},
		rom{name: "graphics", typ: catalog.Geometry, size: 0x100001},
		rom{name: "program", typ: catalog.Program, size: 0x200},
	}
	m, err := memorymap.MapTitle(roms, memorymap.DefaultConfig())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Summary(), validSummary)

	s := &strings.Builder{}
	m.Visualise(s)
	test.ExpectSuccess(t, strings.Contains(s.String(), "digraph"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "graphics"))
}
