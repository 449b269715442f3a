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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/model2emu/model2rom/curated"
)

// Format is the compression/archive format of a file.
type Format int

// List of valid Format values. Adding a new format means adding a value here
// and a decoder in open().
const (
	None Format = iota
	Zip
	Gzip
	Unsupported
)

func (f Format) String() string {
	switch f {
	case None:
		return "none"
	case Zip:
		return "zip"
	case Gzip:
		return "gzip"
	case Unsupported:
		return "unsupported"
	}
	return "undefined"
}

// the number of bytes required to recognise every signature.
const signatureLen = 8

type signature struct {
	magic  []byte
	format Format
	label  string
}

// signatures are checked in order.
var signatures = []signature{
	{magic: []byte("PK\x03\x04"), format: Zip, label: "zip"},
	{magic: []byte("PK\x05\x06"), format: Zip, label: "zip"},
	{magic: []byte{0x1f, 0x8b}, format: Gzip, label: "gzip"},
	{magic: []byte{'7', 'z', 0xbc, 0xaf, 0x27, 0x1c}, format: Unsupported, label: "7-Zip"},
	{magic: []byte("Rar!\x1a\x07"), format: Unsupported, label: "RAR"},
}

type extension struct {
	ext    string
	format Format
	label  string
}

var extensions = []extension{
	{ext: ".zip", format: Zip, label: "zip"},
	{ext: ".gz", format: Gzip, label: "gzip"},
	{ext: ".gzip", format: Gzip, label: "gzip"},
	{ext: ".7z", format: Unsupported, label: "7-Zip"},
	{ext: ".rar", format: Unsupported, label: "RAR"},
}

// detect returns the format and a human readable label for the format.
func detect(name string, header []byte) (Format, string) {
	for _, s := range signatures {
		if bytes.HasPrefix(header, s.magic) {
			return s.format, s.label
		}
	}

	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e.ext {
			return e.format, e.label
		}
	}

	return None, "raw"
}

// DetectFormat returns the format of data, using the signature at the start
// of header and falling back to the extension of name.
func DetectFormat(name string, header []byte) Format {
	f, _ := detect(name, header)
	return f
}

// Detect the format of a file on disk.
func Detect(filename string) (Format, error) {
	header, err := readHeader(filename)
	if err != nil {
		return None, curated.Errorf("archivefs: %v", err)
	}
	return DetectFormat(filename, header), nil
}

func readHeader(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, signatureLen)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return header[:n], nil
}

// list of file extensions for the archive types that are recognised, whether
// they are supported or not.
var ArchiveExtensions = [...]string{".ZIP", ".GZ", ".GZIP", ".7Z", ".RAR"}

// TrimArchiveExt removes the file extension of any recognised archive type
// from the end of the string.
func TrimArchiveExt(s string) string {
	sext := strings.ToUpper(filepath.Ext(s))
	for _, ext := range ArchiveExtensions {
		if sext == ext {
			return strings.TrimSuffix(s, filepath.Ext(s))
		}
	}
	return s
}
