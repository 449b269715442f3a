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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/model2emu/model2rom/archivefs"
	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/validation"
)

// EntryStatus is the availability of a single entry.
type EntryStatus struct {
	Entry    catalog.RomEntry
	Required bool

	Found  bool
	Source string

	// zero if the entry was not found or could not be extracted
	Report validation.Report

	// reason the entry can not be used. empty if the entry is usable
	Problem string
}

// Usable returns true if the entry was found and passed validation.
func (es EntryStatus) Usable() bool {
	return es.Found && es.Problem == ""
}

func (es EntryStatus) String() string {
	var status string
	switch {
	case !es.Found:
		status = "missing"
	case es.Problem != "":
		status = "failed"
	case es.Report.Status == validation.Warn:
		status = "warn"
	default:
		status = "ok"
	}

	s := fmt.Sprintf("[%s]\t%s", status, es.Entry.Name)
	if !es.Required {
		s = fmt.Sprintf("%s (optional)", s)
	}
	if es.Source != "" {
		s = fmt.Sprintf("%s\t%s", s, es.Source)
	}
	if es.Problem != "" {
		s = fmt.Sprintf("%s\t%s", s, es.Problem)
	}
	return s
}

// Availability describes which entries of a title can be loaded.
type Availability struct {
	Title   catalog.TitleRecord
	Entries []EntryStatus
}

// Ready returns true if every required entry is usable.
func (a *Availability) Ready() bool {
	return len(a.Missing()) == 0
}

// Missing returns the names of the required entries that are not usable.
func (a *Availability) Missing() []string {
	var m []string
	for _, e := range a.Entries {
		if e.Required && !e.Usable() {
			m = append(m, e.Entry.Name)
		}
	}
	return m
}

func (a *Availability) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%s)\n", a.Title.Name, a.Title.ShortName))
	for _, e := range a.Entries {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	if a.Ready() {
		s.WriteString("ready: yes\n")
	} else {
		s.WriteString(fmt.Sprintf("ready: no (%d required roms unusable)\n", len(a.Missing())))
	}
	return s.String()
}

// AvailabilityReport checks every entry of the named title against the
// search paths and the current validation settings. The cache is not
// changed.
func (l *Loader) AvailabilityReport(name string) (*Availability, error) {
	rec, err := l.cat.Lookup(name)
	if err != nil {
		return nil, err
	}

	cfg, paths := l.snapshot()

	s := newSearch(rec, paths)
	defer s.close()

	all := jobs(rec)
	var found []*job
	for _, j := range all {
		src, ok, err := s.locate(j.entry.Name)
		if !ok {
			if err != nil {
				j.err = err
			}
			continue
		}
		j.src = src
		found = append(found, j)
	}

	// errors are recorded in the jobs
	_ = run(cfg.Workers, found, extract)
	_ = run(cfg.Workers, found, validate(cfg.policy()))

	a := &Availability{Title: rec}
	for _, j := range all {
		es := EntryStatus{
			Entry:    j.entry,
			Required: j.required,
			Found:    j.src.archive != nil,
			Report:   j.report,
		}
		if es.Found {
			es.Source = j.src.String()
		}
		if j.err != nil {
			es.Problem = j.err.Error()
		} else if !es.Found {
			es.Problem = "not found"
		}
		a.Entries = append(a.Entries, es)
	}

	return a, nil
}

// ScanAvailable lists the files in the search paths that might contain ROM
// images. Subdirectories are not searched. Search paths that do not exist
// are ignored.
func (l *Loader) ScanAvailable() ([]string, error) {
	_, paths := l.snapshot()

	var files []string
	for _, p := range paths {
		de, err := os.ReadDir(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}

		var names []string
		for _, d := range de {
			if d.IsDir() || !archivefs.IsRomMember(d.Name()) {
				continue
			}
			names = append(names, d.Name())
		}
		sort.Slice(names, func(i, j int) bool {
			return archivefs.NaturalLess(names[i], names[j])
		})

		for _, n := range names {
			files = append(files, filepath.Join(p, n))
		}
	}

	return files, nil
}
