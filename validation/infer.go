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

package validation

import (
	"bytes"
	"encoding/binary"

	"github.com/model2emu/model2rom/catalog"
)

const (
	kilobyte = 1024
	megabyte = 1024 * kilobyte
)

// thresholds used by InferType()
const (
	configMaxSize     = 64 * kilobyte
	configMaxEntropy  = 4.0
	graphicsEntropy   = 7.0
	graphicsEntropyAt = megabyte
	graphicsSize      = 2 * megabyte
)

// the 68000 vector table occupies the first 1024 bytes of the address space
const vectorTableSize = 0x400

// the 68000 has a 24 bit address bus
const addressBusMask = 0x00ffffff

func fingerprintExecutable(data []byte) bool {
	return bytes.HasPrefix(data, []byte("\x7fELF")) || bytes.HasPrefix(data, []byte("NECV"))
}

func fingerprint68k(data []byte) bool {
	if len(data) <= vectorTableSize {
		return false
	}

	ssp := binary.BigEndian.Uint32(data[0:])
	if ssp == 0 || ssp&1 != 0 || ssp > addressBusMask {
		return false
	}

	pc := binary.BigEndian.Uint32(data[4:])
	if pc&1 != 0 || pc < vectorTableSize || pc >= uint32(len(data)) {
		return false
	}

	// bus error, address error, illegal instruction, zero divide, CHK,
	// TRAPV, privilege violation, trace, line 1010 and line 1111
	for v := 2; v < 12; v++ {
		a := binary.BigEndian.Uint32(data[v*4:])
		if a&1 != 0 || a > addressBusMask {
			return false
		}
	}

	return true
}

func fingerprintTexture(data []byte) bool {
	return bytes.HasPrefix(data, []byte("TEXT"))
}

// InferType guesses the type of a ROM image from its content. The rules are
// tried in a fixed order and the first matching rule decides the type.
func InferType(data []byte) catalog.RomType {
	if fingerprintExecutable(data) {
		return catalog.Program
	}

	if fingerprint68k(data) {
		return catalog.Program
	}

	if fingerprintWAV(data) || fingerprintMP3(data) {
		return catalog.Sound
	}

	if fingerprintTexture(data) {
		return catalog.Texture
	}

	// entropy is only calculated if it is needed
	size := len(data)
	if size <= configMaxSize && EntropyScore(data) < configMaxEntropy {
		return catalog.Config
	}

	if size >= graphicsEntropyAt && EntropyScore(data) >= graphicsEntropy {
		return catalog.Graphics
	}

	if size > graphicsSize {
		return catalog.Graphics
	}

	return catalog.Data
}

// family groups types that cannot reliably be told apart by content.
func family(t catalog.RomType) int {
	switch t {
	case catalog.Program:
		return 0
	case catalog.Graphics, catalog.Geometry, catalog.Texture:
		return 1
	case catalog.Sound, catalog.Samples:
		return 2
	}
	return 3
}
