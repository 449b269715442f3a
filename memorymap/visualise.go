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
	"io"

	"github.com/bradleyjkemp/memviz"
)

type visualEntry struct {
	Name   string
	Area   string
	Start  string
	End    string
	Length int
	Banks  int
}

type visualMap struct {
	BankSize string
	Entries  []visualEntry
}

// Visualise writes a graphviz description of the map to output. ROM data is
// not included.
func (m *Map) Visualise(output io.Writer) {
	v := &visualMap{
		BankSize: fmt.Sprintf("%#x", m.Config.BankSize),
	}
	for _, e := range m.Entries {
		v.Entries = append(v.Entries, visualEntry{
			Name:   e.Name(),
			Area:   e.Area.String(),
			Start:  fmt.Sprintf("%08x", e.Base),
			End:    fmt.Sprintf("%08x", e.End()),
			Length: e.Length,
			Banks:  e.Banks,
		})
	}
	memviz.Map(output, v)
}
