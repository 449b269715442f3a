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
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/model2emu/model2rom/curated"
)

// Sentinal error patterns.
const (
	CorruptArchive    = "archivefs: corrupt archive (%s): %v"
	UnsupportedFormat = "archivefs: unsupported format (%s): %s"
	EntryNotFound     = "archivefs: entry not found (%s) in %s"
)

// Entry is a single member of an archive. For Gzip and None formats there is
// always exactly one entry.
type Entry struct {
	// name of the member including any directory component inside the archive
	Name string

	// uncompressed size. -1 if the size is not known until decoding
	Size int64

	IsDir bool

	archive string
	decode  func() ([]byte, error)
}

// Bytes decodes the member and returns its data. The data is decoded every
// time the function is called.
func (e Entry) Bytes() ([]byte, error) {
	if e.IsDir {
		return nil, curated.Errorf("archivefs: %s is a directory", e.Name)
	}
	if e.decode == nil {
		return nil, curated.Errorf(EntryNotFound, e.Name, e.archive)
	}
	return e.decode()
}

// BaseName returns the member name without any directory component.
func (e Entry) BaseName() string {
	return path.Base(filepath.ToSlash(e.Name))
}

// Extracted is the result of decoding an Entry.
type Extracted struct {
	Name string
	Data []byte
}

// Archive is an opened file. Use Entries() to list the ROM members and Find()
// to locate a specific member.
type Archive struct {
	Filename string
	Format   Format

	members []Entry
	closer  io.Closer
}

// Open the file at filename. Only the directory of the archive is read.
func Open(filename string) (*Archive, error) {
	header, err := readHeader(filename)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	format, label := detect(filename, header)

	arc := &Archive{
		Filename: filename,
		Format:   format,
	}

	switch format {
	case Zip:
		zr, err := zip.OpenReader(filename)
		if err != nil {
			return nil, corrupt(filename, err)
		}
		arc.closer = zr
		arc.members = zipMembers(filename, &zr.Reader)

	case Gzip:
		f, err := os.Open(filename)
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}
		name, err := gzipName(filename, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		arc.members = []Entry{{
			Name:    name,
			Size:    -1,
			archive: filename,
			decode: func() ([]byte, error) {
				f, err := os.Open(filename)
				if err != nil {
					return nil, curated.Errorf("archivefs: %v", err)
				}
				defer f.Close()
				return gunzip(filename, f)
			},
		}}

	case None:
		st, err := os.Stat(filename)
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}
		if st.IsDir() {
			return nil, curated.Errorf("archivefs: %s is a directory", filename)
		}
		arc.members = []Entry{{
			Name:    filepath.Base(filename),
			Size:    st.Size(),
			archive: filename,
			decode: func() ([]byte, error) {
				d, err := os.ReadFile(filename)
				if err != nil {
					return nil, curated.Errorf("archivefs: %v", err)
				}
				return d, nil
			},
		}}

	default:
		return nil, curated.Errorf(UnsupportedFormat, filepath.Base(filename), label)
	}

	return arc, nil
}

// OpenBytes treats data as if it were the content of a file called name.
func OpenBytes(name string, data []byte) (*Archive, error) {
	n := signatureLen
	if len(data) < n {
		n = len(data)
	}
	format, label := detect(name, data[:n])

	arc := &Archive{
		Filename: name,
		Format:   format,
	}

	switch format {
	case Zip:
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, corrupt(name, err)
		}
		arc.members = zipMembers(name, zr)

	case Gzip:
		member, err := gzipName(name, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		arc.members = []Entry{{
			Name:    member,
			Size:    -1,
			archive: name,
			decode: func() ([]byte, error) {
				return gunzip(name, bytes.NewReader(data))
			},
		}}

	case None:
		arc.members = []Entry{{
			Name:    path.Base(filepath.ToSlash(name)),
			Size:    int64(len(data)),
			archive: name,
			decode: func() ([]byte, error) {
				d := make([]byte, len(data))
				copy(d, data)
				return d, nil
			},
		}}

	default:
		return nil, curated.Errorf(UnsupportedFormat, path.Base(filepath.ToSlash(name)), label)
	}

	return arc, nil
}

func corrupt(name string, err error) error {
	return curated.Errorf(CorruptArchive, filepath.Base(name), err)
}

func zipMembers(archive string, zr *zip.Reader) []Entry {
	members := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		f := f
		members = append(members, Entry{
			Name:    f.Name,
			Size:    int64(f.UncompressedSize64),
			IsDir:   f.FileInfo().IsDir(),
			archive: archive,
			decode: func() ([]byte, error) {
				rc, err := f.Open()
				if err != nil {
					return nil, corrupt(archive, err)
				}
				defer rc.Close()
				d, err := io.ReadAll(rc)
				if err != nil {
					return nil, corrupt(archive, err)
				}
				return d, nil
			},
		})
	}
	return members
}

// gzipName reads the gzip header and returns the name of the member. If the
// header carries no name the archive name without its extension is used.
func gzipName(archive string, r io.Reader) (string, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return "", corrupt(archive, err)
	}
	defer zr.Close()

	if zr.Name != "" {
		return path.Base(filepath.ToSlash(zr.Name)), nil
	}
	return TrimArchiveExt(path.Base(filepath.ToSlash(archive))), nil
}

func gunzip(archive string, r io.Reader) ([]byte, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, corrupt(archive, err)
	}
	defer zr.Close()

	d, err := io.ReadAll(zr)
	if err != nil {
		return nil, corrupt(archive, err)
	}
	return d, nil
}

// Close releases the underlying file. Entries obtained from a closed zip
// archive can no longer be decoded.
func (arc *Archive) Close() error {
	if arc.closer == nil {
		return nil
	}
	err := arc.closer.Close()
	arc.closer = nil
	if err != nil {
		return curated.Errorf("archivefs: %v", err)
	}
	return nil
}

// Members returns every member of the archive, in the order they are stored.
func (arc *Archive) Members() []Entry {
	m := make([]Entry, len(arc.members))
	copy(m, arc.members)
	return m
}

// Entries returns the members that look like ROM images, sorted by board
// position.
func (arc *Archive) Entries() []Entry {
	var e []Entry
	for _, m := range arc.members {
		if !m.IsDir && IsRomMember(m.Name) {
			e = append(e, m)
		}
	}
	Sort(e)
	return e
}

func stem(s string) string {
	return strings.TrimSuffix(s, path.Ext(s))
}

// Find the ROM member called name. The search tries, in order: the exact
// member name; a case-insensitive match; a match on the base name of the
// member; a match on the name without extension. If none of those match and
// the archive is a single ROM image named after the requested entry, that
// image is returned.
func (arc *Archive) Find(name string) (Entry, error) {
	entries := arc.Entries()

	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.BaseName(), name) {
			return e, nil
		}
	}

	s := stem(name)
	if s != "" {
		for _, e := range entries {
			if strings.EqualFold(stem(e.BaseName()), s) {
				return e, nil
			}
		}
	}

	if len(entries) == 1 {
		base := TrimArchiveExt(path.Base(filepath.ToSlash(arc.Filename)))
		if strings.EqualFold(base, name) {
			return entries[0], nil
		}
	}

	return Entry{}, curated.Errorf(EntryNotFound, name, path.Base(filepath.ToSlash(arc.Filename)))
}

// Extract decodes every ROM member in the order returned by Entries().
func (arc *Archive) Extract() ([]Extracted, error) {
	var ext []Extracted
	for _, e := range arc.Entries() {
		d, err := e.Bytes()
		if err != nil {
			return nil, err
		}
		ext = append(ext, Extracted{Name: e.Name, Data: d})
	}
	return ext, nil
}

// IsCorrupt is a convenience function that returns true if err was caused by
// corrupt archive data, either directly or somewhere in the error chain.
func IsCorrupt(err error) bool {
	return curated.Has(err, CorruptArchive) || errors.Is(err, zip.ErrChecksum) || errors.Is(err, gzip.ErrChecksum)
}
