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

package archivefs

import (
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// board position markers. the last match in a name is used.
var positionRegex = regexp.MustCompile(`(?i)(?:^|[^a-z])(?:ic|rom|prg|gfx|snd)(\d+)`)

// position returns the board position encoded in the name. For example,
// "mpr-17572.ic10" has position 10.
func position(name string) (int, bool) {
	m := positionRegex.FindAllStringSubmatch(name, -1)
	if len(m) == 0 {
		return 0, false
	}
	d := strings.TrimLeft(m[len(m)-1][1], "0")
	if len(d) > 9 {
		return 0, false
	}
	n := 0
	for _, c := range d {
		n = n*10 + int(c-'0')
	}
	return n, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// chunk returns the leading run of digits or non-digits in s.
func chunk(s string) string {
	if s == "" {
		return s
	}
	d := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == d {
		i++
	}
	return s[:i]
}

// NaturalLess compares two strings so that runs of digits are compared by
// their numeric value. Non-digit runs are compared without regard to case.
func NaturalLess(a, b string) bool {
	x, y := a, b
	for x != "" && y != "" {
		cx := chunk(x)
		cy := chunk(y)
		x = x[len(cx):]
		y = y[len(cy):]

		if isDigit(cx[0]) && isDigit(cy[0]) {
			tx := strings.TrimLeft(cx, "0")
			ty := strings.TrimLeft(cy, "0")
			if len(tx) != len(ty) {
				return len(tx) < len(ty)
			}
			if tx != ty {
				return tx < ty
			}
			continue
		}

		lx := strings.ToLower(cx)
		ly := strings.ToLower(cy)
		if lx != ly {
			return lx < ly
		}
	}

	if len(x) != len(y) {
		return len(x) < len(y)
	}

	// fully equivalent. fall back to a plain comparison so that the order is
	// total
	return a < b
}

// Sort entries by board position. Entries with a position come first, in
// numerical order of position, and are followed by the remaining entries in
// natural order.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i int, j int) bool {
		a := entries[i].BaseName()
		b := entries[j].BaseName()
		pa, oka := position(a)
		pb, okb := position(b)
		if oka != okb {
			return oka
		}
		if oka && pa != pb {
			return pa < pb
		}
		return NaturalLess(a, b)
	})
}

// file extensions that always indicate a ROM image.
var romExtensions = []string{".bin", ".rom", ".prg", ".gfx", ".snd", ".dat", ".chr", ".spr"}

var icExtension = regexp.MustCompile(`(?i)^\.(ic|u)\d+$`)

// names that never indicate a ROM image. matched against the lowercase path.
var denyContains = []string{"readme", "license", "licence", "changelog", ".ds_store", "thumbs.db"}

var denyExtensions = []string{".txt", ".nfo", ".md", ".doc", ".pdf", ".url", ".lnk", ".diz", ".htm", ".html", ".jpg", ".png"}

// IsRomMember returns true if the archive member called name is likely to be
// a ROM image.
func IsRomMember(name string) bool {
	name = filepath.ToSlash(name)
	if name == "" || strings.HasSuffix(name, "/") {
		return false
	}

	lower := strings.ToLower(name)
	if strings.Contains(lower, "__macosx/") {
		return false
	}

	base := path.Base(name)
	if strings.HasPrefix(base, "._") {
		return false
	}

	ext := strings.ToLower(path.Ext(base))
	if icExtension.MatchString(ext) {
		return true
	}
	for _, e := range romExtensions {
		if ext == e {
			return true
		}
	}

	for _, d := range denyContains {
		if strings.Contains(lower, d) {
			return false
		}
	}
	for _, e := range denyExtensions {
		if ext == e {
			return false
		}
	}

	return true
}
