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

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/curated"
	"github.com/model2emu/model2rom/logger"
)

// Sentinal error patterns.
const (
	InvalidMemoryConfig = "memorymap: invalid memory config: %s"
	Overlap             = "memorymap: overlap: %v"
)

const logTag = "memorymap"

// ROM is the view of a ROM image needed by the mapper.
type ROM interface {
	Name() string
	Type() catalog.RomType
	Len() int
	ReadAt(p []byte, off int64) (int, error)
}

// Entry is the placement of a single ROM.
type Entry struct {
	ROM  ROM
	Area Area

	// absolute address of the first byte
	Base uint32

	// length of the ROM data. the entry occupies Banks*BankSize bytes of
	// address space
	Length   int
	Banks    int
	BankSize uint32
}

// Name of the ROM in the entry.
func (e Entry) Name() string {
	if e.ROM == nil {
		return ""
	}
	return e.ROM.Name()
}

// End returns the last address occupied by the entry, including any unused
// space at the end of the last bank.
func (e Entry) End() uint32 {
	return uint32(uint64(e.Base) + e.span() - 1)
}

func (e Entry) span() uint64 {
	return uint64(e.Banks) * uint64(e.BankSize)
}

func (e Entry) String() string {
	return fmt.Sprintf("%08x -> %08x\t%s\t%s (%d bytes, %d banks)", e.Base, e.End(), e.Area, e.Name(), e.Length, e.Banks)
}

// Map is the result of mapping a title.
type Map struct {
	// entries in the order the ROMs were supplied
	Entries []Entry

	Config Config
}

// OverlapPair is two entries whose address ranges intersect.
type OverlapPair struct {
	A Entry
	B Entry
}

// OverlapError lists every overlapping pair of entries in a map.
type OverlapError struct {
	Pairs []OverlapPair
}

func (e *OverlapError) Error() string {
	s := make([]string, 0, len(e.Pairs))
	for _, p := range e.Pairs {
		s = append(s, fmt.Sprintf("%s (%08x -> %08x) overlaps %s (%08x -> %08x)",
			p.A.Name(), p.A.Base, p.A.End(), p.B.Name(), p.B.Base, p.B.End()))
	}
	return strings.Join(s, "; ")
}

// ValidateOverlaps checks every pair of entries in the map. The error
// returned is an Overlap error wrapping an *OverlapError.
func ValidateOverlaps(m *Map) error {
	oe := &OverlapError{}

	for i, a := range m.Entries {
		for _, b := range m.Entries[i+1:] {
			as, ae := uint64(a.Base), uint64(a.Base)+a.span()
			bs, be := uint64(b.Base), uint64(b.Base)+b.span()
			if as < be && bs < ae {
				oe.Pairs = append(oe.Pairs, OverlapPair{A: a, B: b})
			}
		}
	}

	if len(oe.Pairs) > 0 {
		return curated.Errorf(Overlap, oe)
	}
	return nil
}

// MapTitle places the ROMs according to cfg. ROMs are placed in the order
// supplied.
func MapTitle(roms []ROM, cfg Config) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Map{
		Entries: make([]Entry, 0, len(roms)),
		Config:  cfg,
	}

	var offset [numAreas]uint64

	for _, r := range roms {
		area := AreaOf(r.Type())

		banks := (r.Len() + int(cfg.BankSize) - 1) / int(cfg.BankSize)
		if banks < 1 {
			banks = 1
		}

		e := Entry{
			ROM:      r,
			Area:     area,
			Length:   r.Len(),
			Banks:    banks,
			BankSize: cfg.BankSize,
		}

		if offset[area]+e.span() > WindowSize {
			return nil, curated.Errorf(InvalidMemoryConfig,
				fmt.Sprintf("%s does not fit in the %s window (%#x bytes)", r.Name(), area, WindowSize))
		}

		base := uint64(cfg.Base(area)) + offset[area]
		if base+e.span() > 1<<32 {
			return nil, curated.Errorf(InvalidMemoryConfig,
				fmt.Sprintf("%s does not fit in the address space (%s area full)", r.Name(), area))
		}
		e.Base = uint32(base)
		offset[area] += e.span()

		m.Entries = append(m.Entries, e)
	}

	if err := ValidateOverlaps(m); err != nil {
		return nil, err
	}

	return m, nil
}

// Mapper maps titles using a configurable layout. It is safe for concurrent
// use.
type Mapper struct {
	crit sync.Mutex
	cfg  Config
}

// NewMapper is the preferred method of initialisation for the Mapper type.
func NewMapper() *Mapper {
	return &Mapper{
		cfg: DefaultConfig(),
	}
}

// SetMemoryConfig changes the layout used by future calls to MapTitle(). The
// configuration is validated immediately.
func (mp *Mapper) SetMemoryConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	mp.crit.Lock()
	defer mp.crit.Unlock()
	mp.cfg = cfg
	return nil
}

// MemoryConfig returns the layout currently in use.
func (mp *Mapper) MemoryConfig() Config {
	mp.crit.Lock()
	defer mp.crit.Unlock()
	return mp.cfg
}

// MapTitle places the ROMs using the current configuration.
func (mp *Mapper) MapTitle(roms []ROM) (*Map, error) {
	m, err := MapTitle(roms, mp.MemoryConfig())
	if err != nil {
		logger.Log(logger.Allow, logTag, err)
		return nil, err
	}
	logger.Logf(logger.Allow, logTag, "mapped %d roms into %d banks", len(m.Entries), m.Stats().TotalBanks)
	return m, nil
}

// MapAddress returns the entry containing the address and the offset of the
// address within the ROM. Addresses in the unused part of a bank are not
// mapped.
func (m *Map) MapAddress(address uint32) (Entry, uint32, bool) {
	for _, e := range m.Entries {
		if address >= e.Base && uint64(address-e.Base) < uint64(e.Length) {
			return e, address - e.Base, true
		}
	}
	return Entry{}, 0, false
}

// Read a single byte from the mapped ROM data.
func (m *Map) Read(address uint32) (uint8, error) {
	e, offset, ok := m.MapAddress(address)
	if !ok {
		return 0, curated.Errorf("memorymap: unmapped address (%#08x)", address)
	}
	var b [1]byte
	if _, err := e.ROM.ReadAt(b[:], int64(offset)); err != nil {
		return 0, curated.Errorf("memorymap: %s: %v", e.Name(), err)
	}
	return b[0], nil
}

// Stats summarises the use of the address space.
type Stats struct {
	TotalBanks       int
	BytesPerArea     map[Area]int
	FreeBanksPerArea map[Area]int
}

// Stats returns usage statistics for the map.
func (m *Map) Stats() Stats {
	st := Stats{
		BytesPerArea:     make(map[Area]int),
		FreeBanksPerArea: make(map[Area]int),
	}

	used := make(map[Area]int)
	for _, e := range m.Entries {
		st.TotalBanks += e.Banks
		st.BytesPerArea[e.Area] += e.Length
		used[e.Area] += e.Banks
	}

	window := 0
	if m.Config.BankSize > 0 {
		window = int(WindowSize / m.Config.BankSize)
	}
	for _, a := range Areas {
		free := window - used[a]
		if free < 0 {
			free = 0
		}
		st.FreeBanksPerArea[a] = free
	}

	return st
}

func (st Stats) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("total banks: %d\n", st.TotalBanks))
	for _, a := range Areas {
		s.WriteString(fmt.Sprintf("%-8s\t%d bytes\t%d free banks\n", a, st.BytesPerArea[a], st.FreeBanksPerArea[a]))
	}
	return s.String()
}

// Summary returns a single multiline string detailing every entry in address
// order. Useful for reference.
func (m *Map) Summary() string {
	e := make([]Entry, len(m.Entries))
	copy(e, m.Entries)
	sort.SliceStable(e, func(i, j int) bool {
		return e[i].Base < e[j].Base
	})

	s := strings.Builder{}
	for _, x := range e {
		s.WriteString(x.String())
		s.WriteString("\n")
	}
	return s.String()
}
