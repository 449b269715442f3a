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

package catalog

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/model2emu/model2rom/curated"
)

// Sentinal error patterns.
const (
	UnknownTitle   = "catalog: unknown title (%s)"
	InvalidRecord  = "catalog: invalid record (%s): %s"
	UnknownRomType = "catalog: unrecognised rom type (%s)"
)

// Catalog is a collection of TitleRecords indexed by short name and alias.
type Catalog struct {
	titles map[string]TitleRecord

	// alias to short name
	aliases map[string]string
}

// New creates a catalog from the supplied records. Every record is checked and
// the first malformed record causes an InvalidRecord error.
func New(records ...TitleRecord) (*Catalog, error) {
	cat := &Catalog{
		titles:  make(map[string]TitleRecord),
		aliases: make(map[string]string),
	}

	for _, r := range records {
		if err := check(r); err != nil {
			return nil, err
		}

		if cat.known(r.ShortName) {
			return nil, curated.Errorf(InvalidRecord, r.ShortName, "duplicate short name")
		}
		for _, a := range r.Aliases {
			if cat.known(a) || a == r.ShortName {
				return nil, curated.Errorf(InvalidRecord, r.ShortName, fmt.Sprintf("duplicate alias %s", a))
			}
		}

		cat.titles[r.ShortName] = r.clone()
		for _, a := range r.Aliases {
			cat.aliases[a] = r.ShortName
		}
	}

	return cat, nil
}

func (cat *Catalog) known(name string) bool {
	if _, ok := cat.titles[name]; ok {
		return true
	}
	_, ok := cat.aliases[name]
	return ok
}

// check a single record for consistency.
func check(r TitleRecord) error {
	if r.ShortName == "" {
		return curated.Errorf(InvalidRecord, r.Name, "no short name")
	}

	if len(r.Required)+len(r.Optional) == 0 {
		return curated.Errorf(InvalidRecord, r.ShortName, "no rom entries")
	}

	names := make(map[string]bool)
	for _, e := range r.Entries() {
		if e.Name == "" {
			return curated.Errorf(InvalidRecord, r.ShortName, "rom entry without a name")
		}
		if names[e.Name] {
			return curated.Errorf(InvalidRecord, r.ShortName, fmt.Sprintf("duplicate rom entry %s", e.Name))
		}
		names[e.Name] = true

		if e.Size <= 0 {
			return curated.Errorf(InvalidRecord, r.ShortName, fmt.Sprintf("%s has no expected size", e.Name))
		}
		if !e.Checksums.HasAny() {
			return curated.Errorf(InvalidRecord, r.ShortName, fmt.Sprintf("%s has no checksum", e.Name))
		}
	}

	return nil
}

// Lookup returns the record for the named title. The name can be the short
// name or an alias. An exact match is preferred but a case insensitive match
// is accepted.
func (cat *Catalog) Lookup(name string) (TitleRecord, error) {
	name = strings.TrimSpace(name)

	if r, ok := cat.titles[name]; ok {
		return r.clone(), nil
	}
	if s, ok := cat.aliases[name]; ok {
		return cat.titles[s].clone(), nil
	}

	for s, r := range cat.titles {
		if strings.EqualFold(s, name) {
			return r.clone(), nil
		}
	}
	for a, s := range cat.aliases {
		if strings.EqualFold(a, name) {
			return cat.titles[s].clone(), nil
		}
	}

	return TitleRecord{}, curated.Errorf(UnknownTitle, name)
}

// Names returns the short names of every title in the catalog, sorted.
func (cat *Catalog) Names() []string {
	n := make([]string, 0, len(cat.titles))
	for s := range cat.titles {
		n = append(n, s)
	}
	sort.Strings(n)
	return n
}

// Titles returns every record in the catalog, sorted by short name.
func (cat *Catalog) Titles() []TitleRecord {
	t := make([]TitleRecord, 0, len(cat.titles))
	for _, s := range cat.Names() {
		t = append(t, cat.titles[s].clone())
	}
	return t
}

// Len returns the number of titles in the catalog.
func (cat *Catalog) Len() int {
	return len(cat.titles)
}

// List the titles in short name order.
func (cat *Catalog) List(output io.Writer) error {
	if cat.Len() == 0 {
		_, err := io.WriteString(output, "catalog is empty\n")
		return err
	}

	for _, r := range cat.Titles() {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%-18s %s", r.ShortName, r.Name))
		if len(r.Aliases) > 0 {
			s.WriteString(fmt.Sprintf(" [%s]", strings.Join(r.Aliases, ", ")))
		}
		s.WriteString(fmt.Sprintf(" %d required, %d optional, %d bytes\n",
			len(r.Required), len(r.Optional), r.TotalSize()))
		if _, err := io.WriteString(output, s.String()); err != nil {
			return err
		}
	}

	_, err := io.WriteString(output, fmt.Sprintf("Total: %d\n", cat.Len()))
	return err
}
