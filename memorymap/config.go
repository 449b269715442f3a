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

	"github.com/model2emu/model2rom/curated"
)

// Config describes the layout of the address space.
type Config struct {
	ProgramBase  uint32
	GraphicsBase uint32
	AudioBase    uint32
	DataBase     uint32

	// BankSize must be a power of two and BankMask must equal BankSize-1
	BankSize uint32
	BankMask uint32
}

// DefaultConfig returns the standard Model 2 layout with 1MB banks.
func DefaultConfig() Config {
	return Config{
		ProgramBase:  0x00000000,
		GraphicsBase: 0x08000000,
		AudioBase:    0x10000000,
		DataBase:     0x18000000,
		BankSize:     0x00100000,
		BankMask:     0x000fffff,
	}
}

// Base returns the base address of the area.
func (cfg Config) Base(area Area) uint32 {
	switch area {
	case Program:
		return cfg.ProgramBase
	case Graphics:
		return cfg.GraphicsBase
	case Audio:
		return cfg.AudioBase
	}
	return cfg.DataBase
}

// Validate the configuration. Returns an InvalidMemoryConfig error if the
// configuration can not be used.
func (cfg Config) Validate() error {
	if cfg.BankSize == 0 || cfg.BankSize&(cfg.BankSize-1) != 0 {
		return curated.Errorf(InvalidMemoryConfig, fmt.Sprintf("bank size (%#x) is not a power of two", cfg.BankSize))
	}
	if cfg.BankMask != cfg.BankSize-1 {
		return curated.Errorf(InvalidMemoryConfig, fmt.Sprintf("bank mask (%#x) does not match bank size (%#x)", cfg.BankMask, cfg.BankSize))
	}

	for i, a := range Areas {
		if cfg.Base(a)&cfg.BankMask != 0 {
			return curated.Errorf(InvalidMemoryConfig, fmt.Sprintf("%s base (%#08x) is not bank aligned", a, cfg.Base(a)))
		}
		for _, b := range Areas[i+1:] {
			if cfg.Base(a) == cfg.Base(b) {
				return curated.Errorf(InvalidMemoryConfig, fmt.Sprintf("%s and %s share base address %#08x", a, b, cfg.Base(a)))
			}
		}
	}

	return nil
}
