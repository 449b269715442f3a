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

// Package romloader finds, extracts, validates and caches the ROM images for
// a title.
//
// A Loader searches an ordered list of directories for every entry of the
// title record. For each directory the following files are tried in order,
// and the first file that contains the entry is used:
//
//	<dir>/<entry>
//	<dir>/<entry>.gz
//	<dir>/<entry>.zip
//	<dir>/<short name>/<entry>
//	<dir>/<short name or alias>.zip (.gz, .7z, .rar)
//
// Extraction and validation of the entries run in parallel. Images are only
// added to the cache once every required entry has been loaded and validated
// so that a failed load leaves the cache unchanged.
//
// Loading progresses through the states Searching, Extracting and
// Validating before arriving at Cached. Any failure puts the title in the
// Failed state.
package romloader
