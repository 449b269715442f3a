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

package romsys

import (
	"fmt"
	"io"

	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/logger"
	"github.com/model2emu/model2rom/memorymap"
	"github.com/model2emu/model2rom/preferences"
	"github.com/model2emu/model2rom/romloader"
)

const logTag = "romsys"

// System owns one loader and one mapper. It is safe for concurrent use.
type System struct {
	cat    *catalog.Catalog
	loader *romloader.Loader
	mapper *memorymap.Mapper
}

// NewSystem is the preferred method of initialisation for the System type.
func NewSystem(cat *catalog.Catalog) *System {
	return &System{
		cat:    cat,
		loader: romloader.NewLoader(cat),
		mapper: memorymap.NewMapper(),
	}
}

// Loader returns the loader used by the system.
func (sys *System) Loader() *romloader.Loader {
	return sys.loader
}

// Mapper returns the mapper used by the system.
func (sys *System) Mapper() *memorymap.Mapper {
	return sys.mapper
}

// Catalog returns the catalog used by the system.
func (sys *System) Catalog() *catalog.Catalog {
	return sys.cat
}

// ApplyPreferences configures the loader and the mapper. Search paths in the
// preferences are added to any paths already known to the loader. Nothing is
// changed if either configuration is invalid.
func (sys *System) ApplyPreferences(p *preferences.Preferences) error {
	lc := p.LoadConfig()
	if err := lc.Validate(); err != nil {
		return err
	}
	mc := p.MemoryConfig()
	if err := mc.Validate(); err != nil {
		return err
	}

	if err := sys.loader.SetLoadConfig(lc); err != nil {
		return err
	}
	if err := sys.mapper.SetMemoryConfig(mc); err != nil {
		return err
	}
	for _, path := range p.Paths() {
		sys.loader.AddSearchPath(path)
	}

	return nil
}

// Load the named title and map its ROMs. ROMs are mapped in the order of the
// title record. If the ROMs cannot be mapped the title is put into the Failed
// state but the validated images remain in the loader's cache.
func (sys *System) Load(name string) (*Title, error) {
	set, err := sys.loader.LoadGame(name)
	if err != nil {
		return nil, err
	}

	ordered := set.Ordered()
	roms := make([]memorymap.ROM, 0, len(ordered))
	for _, img := range ordered {
		roms = append(roms, img)
	}

	m, err := sys.mapper.MapTitle(roms)
	if err != nil {
		sys.loader.MarkFailed(set.Title.ShortName, err)
		return nil, err
	}

	logger.Logf(logger.Allow, logTag, "%s ready (%d roms, %d bytes)", set.Title.ShortName, len(ordered), set.Size())

	return &Title{
		Set: set,
		Map: m,
	}, nil
}

// AvailabilityReport writes the availability of every entry in the named
// title.
func (sys *System) AvailabilityReport(output io.Writer, name string) error {
	a, err := sys.loader.AvailabilityReport(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(output, a.String())
	return err
}

// CatalogReport lists every title in the catalog together with the load
// state of the title.
func (sys *System) CatalogReport(output io.Writer) error {
	for _, t := range sys.cat.Titles() {
		_, err := fmt.Fprintf(output, "%-20s %-32s %-10s %d roms (%d optional)\t%s\n",
			t.ShortName, t.Name, t.Region, len(t.Required), len(t.Optional),
			sys.loader.State(t.ShortName))
		if err != nil {
			return err
		}
	}
	return nil
}
