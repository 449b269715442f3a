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
	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/curated"
)

// Sentinal error patterns.
const (
	ChecksumMismatch = "validation: checksum mismatch (%s): %s expected %s, got %s"
)

// thresholds for content warnings
const lowGraphicsEntropy = 1.0

// Policy controls how strict Validate() is.
type Policy struct {
	// if false no checksums are computed and every checksum result is
	// NotChecked
	ValidateChecksums bool

	// if true a checksum mismatch is recorded as a warning and Validate()
	// does not fail
	AllowBadChecksums bool
}

// DefaultPolicy computes checksums and fails on a mismatch.
func DefaultPolicy() Policy {
	return Policy{
		ValidateChecksums: true,
	}
}

// Validate data against the catalog entry. The returned Report is always
// complete, even when an error is returned. The only error returned is
// ChecksumMismatch and only when the policy does not allow bad checksums.
func Validate(name string, data []byte, entry catalog.RomEntry, policy Policy) (Report, error) {
	if name == "" {
		name = entry.Name
	}

	r := Report{
		Name:         name,
		Size:         len(data),
		ExpectedSize: entry.Size,
		Declared:     entry.Type,
		Detected:     InferType(data),
		Entropy:      EntropyScore(data),
	}
	for _, alg := range Algorithms {
		r.Checksums[alg].Algorithm = alg
	}

	if entry.Size > 0 && len(data) != entry.Size {
		r.warn("length mismatch: expected %d bytes, got %d", entry.Size, len(data))
	}

	var mismatch error
	if policy.ValidateChecksums {
		r.Computed = ChecksumAll(data)
		for _, alg := range Algorithms {
			c := &r.Checksums[alg]
			c.Actual = expected(r.Computed, alg)
			c.Expected = expected(entry.Checksums, alg)
			switch {
			case c.Expected == "":
				c.Result = NoReference
			case c.Expected == c.Actual:
				c.Result = Match
			default:
				c.Result = Mismatch
				r.warn("%s mismatch: expected %s, got %s", alg, c.Expected, c.Actual)
				if !policy.AllowBadChecksums {
					r.fail("%s mismatch", alg)
					if mismatch == nil {
						mismatch = curated.Errorf(ChecksumMismatch, name, alg, c.Expected, c.Actual)
					}
				}
			}
		}
	}

	if family(r.Declared) != family(r.Detected) {
		r.warn("declared as %s but content looks like %s", r.Declared, r.Detected)
	}

	switch r.Declared {
	case catalog.Program:
		if len(data) == 0 || (silent(data) && (data[0] == 0x00 || data[0] == 0xff)) {
			r.warn("program rom appears to be empty")
		}
	case catalog.Graphics, catalog.Texture:
		if r.Entropy < lowGraphicsEntropy {
			r.warn("low entropy (%.2f) for a graphics rom", r.Entropy)
		}
	case catalog.Sound, catalog.Samples:
		if info, ok := SoundProfile(data); ok {
			if info.Peak == 0 {
				r.warn("sound rom is silent")
			}
		} else if len(data) == 0 || silent(data) {
			r.warn("sound rom is silent")
		}
	}

	r.settle()

	return r, mismatch
}
