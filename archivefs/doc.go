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

// Package archivefs gives uniform access to ROM images that are stored as
// loose files, inside zip archives or gzip compressed.
//
// The format of a file is detected by its signature first and by its file
// extension second. Formats that are recognised but for which no decoder is
// available (7-Zip and RAR) are reported as Unsupported and are never treated
// as raw data.
//
// Opening an archive reads only its directory. Member data is decoded when
// Entry.Bytes() is called, so peak memory use is bounded by the members that
// are actually requested and not by the size of the archive.
//
// Entries() filters out members that are not ROM images (directories, readme
// files, OS metadata) and sorts the remainder by board position, so that
// ic1, ic2 and ic3 come before ic10.
package archivefs
