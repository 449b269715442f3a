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

package romtest

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/test"
)

// Member is a named piece of data to be written to disk or to an archive.
type Member struct {
	Name string
	Data []byte
}

// ZipBytes returns a zip archive containing the members.
func ZipBytes(t *testing.T, members ...Member) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, m := range members {
		w, err := zw.Create(m.Name)
		test.DemandSuccess(t, err)
		_, err = w.Write(m.Data)
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	return buf.Bytes()
}

// GzipBytes returns data compressed with gzip. The name is stored in the
// gzip header unless it is empty.
func GzipBytes(t *testing.T, name string, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Name = name
	_, err := zw.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())

	return buf.Bytes()
}

// WriteFile writes data to dir/name and returns the full path.
func WriteFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()

	p := filepath.Join(dir, name)
	test.DemandSuccess(t, os.MkdirAll(filepath.Dir(p), 0o755))
	test.DemandSuccess(t, os.WriteFile(p, data, 0o644))
	return p
}

// WriteZip writes a zip archive containing the members to dir/name and
// returns the full path.
func WriteZip(t *testing.T, dir string, name string, members ...Member) string {
	t.Helper()
	return WriteFile(t, dir, name, ZipBytes(t, members...))
}

// WriteGzip writes a gzip file containing data to dir/name and returns the
// full path.
func WriteGzip(t *testing.T, dir string, name string, member string, data []byte) string {
	t.Helper()
	return WriteFile(t, dir, name, GzipBytes(t, member, data))
}

// WriteLoose writes every entry of the fixture as a loose file in dir.
// Entries named in skip are not written.
func (fx Fixture) WriteLoose(t *testing.T, dir string, skip ...string) {
	t.Helper()
	for _, m := range fx.Members(skip...) {
		WriteFile(t, dir, m.Name, m.Data)
	}
}

// WriteTitleZip writes every entry of the fixture into a zip archive named
// after the title's short name. Entries named in skip are not written.
func (fx Fixture) WriteTitleZip(t *testing.T, dir string, skip ...string) string {
	t.Helper()
	return WriteZip(t, dir, fx.Record.ShortName+".zip", fx.Members(skip...)...)
}

// Catalog returns a catalog containing the fixture records.
func Catalog(t *testing.T, fixtures ...Fixture) *catalog.Catalog {
	t.Helper()

	var recs []catalog.TitleRecord
	for _, fx := range fixtures {
		recs = append(recs, fx.Record)
	}
	cat, err := catalog.New(recs...)
	test.DemandSuccess(t, err)
	return cat
}

// VirtuaFighter2 returns a fixture for the built-in Virtua Fighter 2 record
// at the specified scale.
func VirtuaFighter2(t *testing.T, scale int) Fixture {
	t.Helper()
	rec, err := catalog.Builtin().Lookup(catalog.VirtuaFighter2)
	test.DemandSuccess(t, err)
	return NewFixture(rec, scale)
}
