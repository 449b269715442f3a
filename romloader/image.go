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
	"io"

	"github.com/model2emu/model2rom/archivefs"
	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/curated"
	"github.com/model2emu/model2rom/validation"
)

// Image is a loaded and validated ROM image. The data is read-only and is
// never exposed directly.
type Image struct {
	title  string
	entry  catalog.RomEntry
	data   []byte
	report validation.Report
	source string
	format archivefs.Format
}

func newImage(title string, entry catalog.RomEntry, data []byte, report validation.Report, src source) *Image {
	return &Image{
		title:  title,
		entry:  entry,
		data:   data,
		report: report,
		source: src.String(),
		format: src.archive.Format,
	}
}

// Key returns the cache key for the image.
func (img *Image) Key() Key {
	return Key{Title: img.title, Name: img.entry.Name}
}

// Name of the ROM entry. Implements the memorymap.ROM interface.
func (img *Image) Name() string {
	return img.entry.Name
}

// Type declared for the ROM entry. Implements the memorymap.ROM interface.
func (img *Image) Type() catalog.RomType {
	return img.entry.Type
}

// Entry returns the catalog entry for the image.
func (img *Image) Entry() catalog.RomEntry {
	return img.entry
}

// Title returns the short name of the title the image belongs to.
func (img *Image) Title() string {
	return img.title
}

// Len returns the number of bytes in the image.
func (img *Image) Len() int {
	return len(img.data)
}

// ReadAt implements the io.ReaderAt interface.
func (img *Image) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, curated.Errorf("romloader: %s: negative offset (%d)", img.entry.Name, off)
	}
	if off >= int64(len(img.data)) {
		return 0, io.EOF
	}
	n := copy(p, img.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Byte returns the byte at the offset.
func (img *Image) Byte(offset int) (uint8, error) {
	if offset < 0 || offset >= len(img.data) {
		return 0, curated.Errorf("romloader: %s: offset out of range (%d)", img.entry.Name, offset)
	}
	return img.data[offset], nil
}

// Copy returns a copy of the image data.
func (img *Image) Copy() []byte {
	c := make([]byte, len(img.data))
	copy(c, img.data)
	return c
}

// Report returns the validation report for the image.
func (img *Image) Report() validation.Report {
	return img.report
}

// Checksums returns the checksums computed while validating. Zero if the
// loader was not configured to validate checksums.
func (img *Image) Checksums() catalog.Checksums {
	return img.report.Computed
}

// Source describes where the image was loaded from.
func (img *Image) Source() string {
	return img.source
}

// Format of the file the image was loaded from.
func (img *Image) Format() archivefs.Format {
	return img.format
}
