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

package romloader

import (
	"github.com/model2emu/model2rom/curated"
	"github.com/model2emu/model2rom/validation"
)

// DefaultCacheSize is the cache budget used by DefaultConfig().
const DefaultCacheSize = 256 * 1024 * 1024

// Config controls how titles are loaded.
type Config struct {
	// compute and compare checksums. if false, checksums are not computed
	ValidateChecksums bool

	// a checksum mismatch produces a warning instead of failing the load
	AllowBadChecksums bool

	// cache budget in bytes. must be greater than zero
	MaxCacheSize int64

	// number of entries extracted or validated at the same time. zero means
	// GOMAXPROCS
	Workers int
}

// DefaultConfig returns the configuration used by NewLoader().
func DefaultConfig() Config {
	return Config{
		ValidateChecksums: true,
		AllowBadChecksums: false,
		MaxCacheSize:      DefaultCacheSize,
	}
}

// Validate the configuration.
func (cfg Config) Validate() error {
	if cfg.MaxCacheSize <= 0 {
		return curated.Errorf("romloader: cache size must be greater than zero (%d)", cfg.MaxCacheSize)
	}
	if cfg.Workers < 0 {
		return curated.Errorf("romloader: number of workers cannot be negative (%d)", cfg.Workers)
	}
	return nil
}

func (cfg Config) policy() validation.Policy {
	return validation.Policy{
		ValidateChecksums: cfg.ValidateChecksums,
		AllowBadChecksums: cfg.AllowBadChecksums,
	}
}
