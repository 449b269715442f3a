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
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"strings"

	"github.com/model2emu/model2rom/catalog"
)

// Algorithm identifies a checksum algorithm.
type Algorithm int

// List of valid Algorithm values.
const (
	CRC32 Algorithm = iota
	MD5
	SHA256
	numAlgorithms
)

// Algorithms lists every Algorithm.
var Algorithms = [...]Algorithm{CRC32, MD5, SHA256}

func (a Algorithm) String() string {
	switch a {
	case CRC32:
		return "crc32"
	case MD5:
		return "md5"
	case SHA256:
		return "sha256"
	}
	return "undefined"
}

func (a Algorithm) hash() hash.Hash {
	switch a {
	case CRC32:
		return crc32.NewIEEE()
	case MD5:
		return md5.New()
	case SHA256:
		return sha256.New()
	}
	panic(fmt.Sprintf("validation: unknown algorithm (%d)", a))
}

// Checksum returns the lowercase hex digest of data. A CRC32 is always eight
// digits long.
func Checksum(data []byte, alg Algorithm) string {
	h := alg.hash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ChecksumAll computes every checksum in a single pass over the data.
func ChecksumAll(data []byte) catalog.Checksums {
	c := crc32.NewIEEE()
	m := md5.New()
	s := sha256.New()

	w := io.MultiWriter(c, m, s)
	_, _ = w.Write(data)

	return catalog.Checksums{
		CRC32:  c.Sum32(),
		MD5:    hex.EncodeToString(m.Sum(nil)),
		SHA256: hex.EncodeToString(s.Sum(nil)),
	}
}

// expected returns the reference digest for the algorithm in the same form
// as Checksum(). Empty if there is no reference.
func expected(c catalog.Checksums, alg Algorithm) string {
	switch alg {
	case CRC32:
		if c.CRC32 == 0 {
			return ""
		}
		return fmt.Sprintf("%08x", c.CRC32)
	case MD5:
		return normalise(c.MD5)
	case SHA256:
		return normalise(c.SHA256)
	}
	return ""
}

// reference digests may be written in either case.
func normalise(digest string) string {
	return strings.ToLower(strings.TrimSpace(digest))
}
