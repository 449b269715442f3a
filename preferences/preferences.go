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

package preferences

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/model2emu/model2rom/curated"
	"github.com/model2emu/model2rom/memorymap"
	"github.com/model2emu/model2rom/prefs"
	"github.com/model2emu/model2rom/resources"
	"github.com/model2emu/model2rom/romloader"
)

// Preferences for the ROM subsystem.
type Preferences struct {
	dsk *prefs.Disk

	// compute and compare checksums when loading
	ValidateChecksums prefs.Bool

	// a checksum mismatch is a warning rather than an error
	AllowBadChecksums prefs.Bool

	// cache budget in bytes
	MaxCacheSize prefs.Int

	// parallelism of extraction and validation. zero is GOMAXPROCS
	Workers prefs.Int

	// list of directories separated by the OS path list separator
	SearchPaths prefs.String

	BankSize     prefs.Int
	ProgramBase  prefs.Int
	GraphicsBase prefs.Int
	AudioBase    prefs.Int
	DataBase     prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty the default preferences file in the
// resource directory is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.setHooks()
	p.SetDefaults()

	var err error

	if path == "" {
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("romloader.validateChecksums", &p.ValidateChecksums)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("romloader.allowBadChecksums", &p.AllowBadChecksums)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("romloader.maxCacheSize", &p.MaxCacheSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("romloader.workers", &p.Workers)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("romloader.searchPaths", &p.SearchPaths)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memorymap.bankSize", &p.BankSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memorymap.programBase", &p.ProgramBase)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memorymap.graphicsBase", &p.GraphicsBase)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memorymap.audioBase", &p.AudioBase)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memorymap.dataBase", &p.DataBase)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) setHooks() {
	p.MaxCacheSize.SetHookPre(func(v prefs.Value) error {
		if v.(int64) <= 0 {
			return curated.Errorf("preferences: cache size must be greater than zero")
		}
		return nil
	})
	p.Workers.SetHookPre(func(v prefs.Value) error {
		if v.(int64) < 0 {
			return curated.Errorf("preferences: number of workers cannot be negative")
		}
		return nil
	})
	p.BankSize.SetHookPre(func(v prefs.Value) error {
		n := v.(int64)
		if n <= 0 || n&(n-1) != 0 || n > 0xffffffff {
			return curated.Errorf("preferences: bank size must be a power of two")
		}
		return nil
	})

	base := func(v prefs.Value) error {
		n := v.(int64)
		if n < 0 || n > 0xffffffff {
			return curated.Errorf("preferences: base address must be a 32 bit value")
		}
		return nil
	}
	p.ProgramBase.SetHookPre(base)
	p.GraphicsBase.SetHookPre(base)
	p.AudioBase.SetHookPre(base)
	p.DataBase.SetHookPre(base)
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	lc := romloader.DefaultConfig()
	p.ValidateChecksums.Set(lc.ValidateChecksums)
	p.AllowBadChecksums.Set(lc.AllowBadChecksums)
	p.MaxCacheSize.Set(lc.MaxCacheSize)
	p.Workers.Set(lc.Workers)
	p.SearchPaths.Set("roms")

	mc := memorymap.DefaultConfig()
	p.BankSize.Set(mc.BankSize)
	p.ProgramBase.Set(mc.ProgramBase)
	p.GraphicsBase.Set(mc.GraphicsBase)
	p.AudioBase.Set(mc.AudioBase)
	p.DataBase.Set(mc.DataBase)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// String returns the current preferences, one per line.
func (p *Preferences) String() string {
	return p.dsk.String()
}

// LoadConfig returns the loader configuration described by the preferences.
func (p *Preferences) LoadConfig() romloader.Config {
	return romloader.Config{
		ValidateChecksums: p.ValidateChecksums.Get().(bool),
		AllowBadChecksums: p.AllowBadChecksums.Get().(bool),
		MaxCacheSize:      p.MaxCacheSize.Int64(),
		Workers:           int(p.Workers.Int64()),
	}
}

// MemoryConfig returns the memory map configuration described by the
// preferences.
func (p *Preferences) MemoryConfig() memorymap.Config {
	bank := uint32(p.BankSize.Int64())
	return memorymap.Config{
		ProgramBase:  uint32(p.ProgramBase.Int64()),
		GraphicsBase: uint32(p.GraphicsBase.Int64()),
		AudioBase:    uint32(p.AudioBase.Int64()),
		DataBase:     uint32(p.DataBase.Int64()),
		BankSize:     bank,
		BankMask:     bank - 1,
	}
}

// Paths returns the search paths in order. Empty elements are removed.
func (p *Preferences) Paths() []string {
	var paths []string
	for _, s := range filepath.SplitList(p.SearchPaths.String()) {
		s = strings.TrimSpace(s)
		if s != "" {
			paths = append(paths, s)
		}
	}
	return paths
}

// SetPaths replaces the search paths.
func (p *Preferences) SetPaths(paths ...string) error {
	return p.SearchPaths.Set(strings.Join(paths, string(os.PathListSeparator)))
}
