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

	"github.com/model2emu/model2rom/archivefs"
	"github.com/model2emu/model2rom/catalog"
)

// extensions of archives that are named after a title rather than an entry.
var titleArchiveExtensions = []string{".zip", ".gz", ".7z", ".rar"}

// source is the location of an entry.
type source struct {
	filename string
	archive  *archivefs.Archive
	member   archivefs.Entry
}

func (src source) String() string {
	if src.archive == nil || src.archive.Format == archivefs.None {
		return src.filename
	}
	return fmt.Sprintf("%s (%s)", src.filename, src.member.Name)
}

// search locates the entries of a single title. Archives are opened at most
// once per search and remain open until close() is called.
type search struct {
	rec   catalog.TitleRecord
	paths []string

	opened map[string]*archivefs.Archive
	failed map[string]error
}

func newSearch(rec catalog.TitleRecord, paths []string) *search {
	return &search{
		rec:    rec,
		paths:  paths,
		opened: make(map[string]*archivefs.Archive),
		failed: make(map[string]error),
	}
}

// candidates returns the files that might contain the entry, in order of
// preference.
func (s *search) candidates(dir string, name string) []string {
	c := []string{
		filepath.Join(dir, name),
		filepath.Join(dir, name+".gz"),
		filepath.Join(dir, name+".zip"),
		filepath.Join(dir, s.rec.ShortName, name),
	}

	titles := append([]string{s.rec.ShortName}, s.rec.Aliases...)
	for _, t := range titles {
		for _, ext := range titleArchiveExtensions {
			c = append(c, filepath.Join(dir, t+ext))
		}
	}

	return c
}

// open returns a nil archive and a nil error if the file does not exist.
func (s *search) open(filename string) (*archivefs.Archive, error) {
	if arc, ok := s.opened[filename]; ok {
		return arc, nil
	}
	if err, ok := s.failed[filename]; ok {
		return nil, err
	}

	st, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		s.failed[filename] = err
		return nil, err
	}
	if st.IsDir() {
		return nil, nil
	}

	arc, err := archivefs.Open(filename)
	if err != nil {
		s.failed[filename] = err
		return nil, err
	}
	s.opened[filename] = arc

	return arc, nil
}

// locate the entry. If the entry is not found then the error is the first
// error encountered when opening a candidate file, if any.
func (s *search) locate(name string) (source, bool, error) {
	var first error

	for _, dir := range s.paths {
		for _, f := range s.candidates(dir, name) {
			arc, err := s.open(f)
			if err != nil {
				if first == nil {
					first = err
				}
				continue
			}
			if arc == nil {
				continue
			}

			m, err := arc.Find(name)
			if err != nil {
				continue
			}

			return source{filename: f, archive: arc, member: m}, true, nil
		}
	}

	return source{}, false, first
}

func (s *search) close() {
	for _, arc := range s.opened {
		_ = arc.Close()
	}
	s.opened = make(map[string]*archivefs.Archive)
}
